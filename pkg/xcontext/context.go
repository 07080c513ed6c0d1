package xcontext

import (
	"context"
	"net/http"
	"time"

	"github.com/timebank-lab/backend/config"
	"github.com/timebank-lab/backend/pkg/logger"
	"gorm.io/gorm"
)

type (
	dbKey            struct{}
	loggerKey        struct{}
	configsKey       struct{}
	requestUserIDKey struct{}
	httpRequestKey   struct{}
	errorKey         struct{}
	startTimeKey     struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the database handle bound to ctx, scoped to ctx for cancellation.
func DB(ctx context.Context) *gorm.DB {
	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		return nil
	}

	return db.WithContext(ctx)
}

func WithLogger(ctx context.Context, logger logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func Logger(ctx context.Context) logger.Logger {
	l, ok := ctx.Value(loggerKey{}).(logger.Logger)
	if !ok {
		return logger.NewLogger("silence", false)
	}

	return l
}

func WithConfigs(ctx context.Context, cfg config.Configs) context.Context {
	return context.WithValue(ctx, configsKey{}, cfg)
}

func Configs(ctx context.Context) config.Configs {
	cfg, ok := ctx.Value(configsKey{}).(config.Configs)
	if !ok {
		return config.Default()
	}

	return cfg
}

// WithRequestUserID binds the external identity of the caller, as issued by the
// identity provider.
func WithRequestUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestUserIDKey{}, id)
}

func RequestUserID(ctx context.Context) string {
	id, _ := ctx.Value(requestUserIDKey{}).(string)
	return id
}

func WithHTTPRequest(ctx context.Context, r *http.Request) context.Context {
	return context.WithValue(ctx, httpRequestKey{}, r)
}

func HTTPRequest(ctx context.Context) *http.Request {
	r, _ := ctx.Value(httpRequestKey{}).(*http.Request)
	return r
}

func WithError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, errorKey{}, err)
}

func Error(ctx context.Context) error {
	err, _ := ctx.Value(errorKey{}).(error)
	return err
}

func WithStartTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, startTimeKey{}, t)
}

func StartTime(ctx context.Context) time.Time {
	t, _ := ctx.Value(startTimeKey{}).(time.Time)
	return t
}

// Inherit copies the process scoped values (database, logger, configs) of
// parent into ctx.
func Inherit(ctx, parent context.Context) context.Context {
	if db, ok := parent.Value(dbKey{}).(*gorm.DB); ok {
		ctx = WithDB(ctx, db)
	}

	if l, ok := parent.Value(loggerKey{}).(logger.Logger); ok {
		ctx = WithLogger(ctx, l)
	}

	if cfg, ok := parent.Value(configsKey{}).(config.Configs); ok {
		ctx = WithConfigs(ctx, cfg)
	}

	return ctx
}
