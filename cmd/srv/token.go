package main

import (
	"errors"
	"fmt"

	"github.com/timebank-lab/backend/pkg/authenticator"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startToken(cctx *cli.Context) error {
	externalID := cctx.Args().First()
	if externalID == "" {
		return errors.New("missing external id")
	}

	engine := authenticator.NewTokenEngine(xcontext.Configs(s.ctx).Auth)
	token, err := engine.Generate(externalID)
	if err != nil {
		return err
	}

	fmt.Fprintln(cctx.App.Writer, token)
	return nil
}
