package main

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/timebank-lab/backend/config"
	"github.com/timebank-lab/backend/internal/domain"
	"github.com/timebank-lab/backend/internal/repository"
	"github.com/timebank-lab/backend/migration"
	"github.com/timebank-lab/backend/pkg/kafka"
	"github.com/timebank-lab/backend/pkg/logger"
	"github.com/timebank-lab/backend/pkg/pubsub"
	"github.com/timebank-lab/backend/pkg/router"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"github.com/timebank-lab/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	redisClient xredis.Client
	publisher   pubsub.Publisher
	closers     []func() error

	userRepo      repository.UserRepository
	threadRepo    repository.ThreadRepository
	activityRepo  repository.ActivityRepository
	communityRepo repository.CommunityRepository

	threadDomain     domain.ThreadDomain
	assistanceDomain domain.AssistanceDomain
	activityDomain   domain.ActivityDomain
	userDomain       domain.UserDomain
	communityDomain  domain.CommunityDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	if env := cctx.String("env"); env != "" {
		cfg.Env = env
	}

	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.loadLogger()
	return nil
}

func (s *srv) loadLogger() {
	cfg := xcontext.Configs(s.ctx)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger(cfg.LogLevel, cfg.Env == "local"))
}

func (s *srv) newDatabase() (*gorm.DB, error) {
	cfg := xcontext.Configs(s.ctx).Database

	var dialector gorm.Dialector
	switch strings.ToLower(cfg.Driver) {
	case "mysql":
		dialector = mysql.New(mysql.Config{
			DSN:                     cfg.ConnectionString(), // data source name
			DefaultStringSize:       256,                    // default size for string fields
			DontSupportRenameIndex:  true,                   // drop & create when rename index, rename index not supported before MySQL 5.7, MariaDB
			DontSupportRenameColumn: true,                   // `change` when rename column, rename column not supported before MySQL 8, MariaDB
		})
	case "sqlite", "":
		dialector = sqlite.Open(cfg.File)
	default:
		return nil, fmt.Errorf("unsupported database driver %s", cfg.Driver)
	}

	logLevel := gormlogger.Silent
	if xcontext.Configs(s.ctx).LogLevel == "debug" {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(logLevel),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	xcontext.Logger(s.ctx).Infof("Connected to %s database", dialector.Name())
	return db, nil
}

func (s *srv) loadDatabase() error {
	db, err := s.newDatabase()
	if err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
	return nil
}

func (s *srv) migrateDB() error {
	if err := migration.AutoMigrate(s.ctx); err != nil {
		return fmt.Errorf("cannot migrate database: %w", err)
	}

	return nil
}

func (s *srv) loadRedisClient() error {
	cfg := xcontext.Configs(s.ctx).Redis
	if !cfg.Enable {
		return nil
	}

	client, err := xredis.NewClient(s.ctx)
	if err != nil {
		return fmt.Errorf("cannot connect to redis at %s: %w", cfg.Addr, err)
	}

	s.redisClient = client
	s.closers = append(s.closers, client.Close)
	xcontext.Logger(s.ctx).Infof("Connected to redis at %s", cfg.Addr)
	return nil
}

func (s *srv) loadPublisher() error {
	cfg := xcontext.Configs(s.ctx).Kafka
	if !cfg.Enable {
		return nil
	}

	publisher, err := kafka.NewPublisher(cfg.ClientID, []string{cfg.Addr})
	if err != nil {
		return fmt.Errorf("cannot connect to kafka at %s: %w", cfg.Addr, err)
	}

	s.publisher = publisher
	s.closers = append(s.closers, func() error { return publisher.Stop(s.ctx) })
	xcontext.Logger(s.ctx).Infof("Publishing activities to kafka at %s", cfg.Addr)
	return nil
}

func (s *srv) loadRepos() {
	userRepo := repository.NewUserRepository()
	communityRepo := repository.NewCommunityRepository()
	if s.redisClient != nil {
		userRepo.WithCache(s.redisClient)
		communityRepo.WithCache(s.redisClient)
	}

	s.userRepo = userRepo
	s.communityRepo = communityRepo
	s.threadRepo = repository.NewThreadRepository()
	s.activityRepo = repository.NewActivityRepository()
}

func (s *srv) loadDomains() {
	s.threadDomain = domain.NewThreadDomain(s.threadRepo, s.userRepo, s.communityRepo, s.activityRepo, s.publisher)
	s.assistanceDomain = domain.NewAssistanceDomain(s.threadRepo, s.userRepo, s.activityRepo, s.publisher)
	s.activityDomain = domain.NewActivityDomain(s.activityRepo, s.userRepo, s.threadRepo)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.threadRepo, s.communityRepo)
	s.communityDomain = domain.NewCommunityDomain(s.communityRepo, s.userRepo)
}

func (s *srv) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			xcontext.Logger(s.ctx).Warnf("Cannot close resource: %v", err)
		}
	}
}
