package main

import (
	"github.com/timebank-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startMigrate(*cli.Context) error {
	if err := s.loadDatabase(); err != nil {
		return err
	}

	if err := s.migrateDB(); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Migrate database successfully")
	return nil
}
