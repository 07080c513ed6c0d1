package testutil

import (
	"context"
	"time"

	"github.com/timebank-lab/backend/config"
	"github.com/timebank-lab/backend/migration"
	"github.com/timebank-lab/backend/pkg/logger"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewMockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}

	// Every connection to :memory: opens a distinct database.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	cfg := config.Configs{
		Env:      "test",
		LogLevel: "silence",
		ApiServer: config.APIServerConfigs{
			DefaultLimit: 20,
			MaxLimit:     50,
		},
		Auth: config.AuthConfigs{
			TokenSecret:     "secret",
			Issuer:          "timebank",
			TokenExpiration: time.Minute,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(cfg.LogLevel, false))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.AutoMigrate(ctx); err != nil {
		panic(err)
	}

	return ctx
}

// NewMockContextWithUserID binds externalID as the request identity.
func NewMockContextWithUserID(ctx context.Context, externalID string) context.Context {
	if ctx == nil {
		ctx = NewMockContext()
	}

	return xcontext.WithRequestUserID(ctx, externalID)
}
