package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/timebank-lab/backend/pkg/xcontext"
	"github.com/timebank-lab/backend/pkg/xredis"
)

// recordCache keeps JSON copies of records by id. A nil client disables it.
type recordCache[T any] struct {
	client xredis.Client
	prefix string
}

func newRecordCache[T any](client xredis.Client, prefix string) recordCache[T] {
	return recordCache[T]{client: client, prefix: prefix}
}

func (c recordCache[T]) key(id string) string {
	return fmt.Sprintf("cache:%s:%s", c.prefix, id)
}

// get returns the cached records by id and the ids not found in cache.
func (c recordCache[T]) get(ctx context.Context, ids ...string) (map[string]T, []string) {
	if c.client == nil || len(ids) == 0 {
		return map[string]T{}, ids
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, c.key(id))
	}

	values, err := c.client.MGet(ctx, keys...)
	if err != nil || len(values) != len(keys) {
		xcontext.Logger(ctx).Warnf("Cannot multiple get %s from redis: %v", c.prefix, err)
		return map[string]T{}, ids
	}

	found := map[string]T{}
	missing := []string{}
	for i, id := range ids {
		s, ok := values[i].(string)
		if !ok {
			missing = append(missing, id)
			continue
		}

		var record T
		if err := json.Unmarshal([]byte(s), &record); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot unmarshal %s object: %v", c.prefix, err)
			missing = append(missing, id)
			continue
		}

		found[id] = record
	}

	return found, missing
}

func (c recordCache[T]) set(ctx context.Context, records map[string]T) {
	if c.client == nil || len(records) == 0 {
		return
	}

	kv := map[string]string{}
	for id, record := range records {
		b, err := json.Marshal(record)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot marshal %s object: %v", c.prefix, err)
			continue
		}
		kv[c.key(id)] = string(b)
	}

	if err := c.client.MSet(ctx, kv, xcontext.Configs(ctx).Redis.CacheTTL); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot multiple set %s to redis: %v", c.prefix, err)
	}
}

func (c recordCache[T]) invalidate(ctx context.Context, ids ...string) {
	if c.client == nil || len(ids) == 0 {
		return
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, c.key(id))
	}

	if err := c.client.Del(ctx, keys...); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate %s redis key: %v", c.prefix, err)
	}
}
