package domain

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/timebank-lab/backend/internal/common"
	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/internal/model"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/pkg/errorx"
	"github.com/timebank-lab/backend/pkg/pubsub"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

// activityGenerator records the notification of a lifecycle transition and
// announces it on the activity topic. A nil publisher only records.
type activityGenerator struct {
	activityRepo repository.ActivityRepository
	publisher    pubsub.Publisher
}

func newActivityGenerator(
	activityRepo repository.ActivityRepository,
	publisher pubsub.Publisher,
) *activityGenerator {
	return &activityGenerator{
		activityRepo: activityRepo,
		publisher:    publisher,
	}
}

func (g *activityGenerator) generate(
	ctx context.Context,
	activityType entity.ActivityType,
	status entity.ActivityStatus,
	senderID, receiverID, threadID string,
) (*entity.Activity, error) {
	activity := &entity.Activity{
		Base:       entity.Base{ID: uuid.NewString()},
		Type:       activityType,
		SenderID:   senderID,
		ReceiverID: receiverID,
		ThreadID:   threadID,
		Status:     status,
	}

	if err := g.activityRepo.Create(ctx, activity); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create activity: %v", err)
		return nil, errorx.Unknown
	}

	common.PromCounters[common.ActivityCreatedTotal].WithLabelValues(string(activityType)).Inc()
	g.publish(ctx, activity)

	return activity, nil
}

func (g *activityGenerator) publish(ctx context.Context, activity *entity.Activity) {
	if g.publisher == nil {
		return
	}

	b, err := json.Marshal(model.ConvertActivityCreatedEvent(activity))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal activity event: %v", err)
		return
	}

	err = g.publisher.Publish(ctx, model.ActivityCreatedTopic, &pubsub.Pack{
		Key: []byte(activity.ReceiverID),
		Msg: b,
	})
	if err != nil {
		common.PromCounters[common.ActivityPublishFailedTotal].WithLabelValues(model.ActivityCreatedTopic).Inc()
		xcontext.Logger(ctx).Warnf("Cannot publish activity %s: %v", activity.ID, err)
	}
}
