package migration

import (
	"context"

	"github.com/timebank-lab/backend/internal/entity"
	"github.com/timebank-lab/backend/pkg/xcontext"
)

// AutoMigrate creates or upgrades every table of the application.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Community{},
		&entity.Thread{},
		&entity.Activity{},
	)
}
