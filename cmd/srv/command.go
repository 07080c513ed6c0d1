package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "Timebank"
	s.app.Usage = "Time banking backend"
	s.app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path of the toml config file",
			EnvVars: []string{"TIMEBANK_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "env",
			Usage:   "Running environment, local enables the console log format",
			EnvVars: []string{"TIMEBANK_ENV"},
		},
	}
	s.app.Before = s.loadConfig
	s.app.Commands = []*cli.Command{
		{
			Action:   s.startApi,
			Name:     "api",
			Usage:    "Start service api",
			Category: "Api",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "port",
					Usage:   "Port of the api server",
					EnvVars: []string{"API_PORT"},
				},
			},
			Description: `Used for start service api, it main service included all apis.`,
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Create or upgrade the database tables",
			Category:    "Database",
			Description: `Used to migrate the tables of users, threads, activities and communities.`,
		},
		{
			Action:    s.startToken,
			Name:      "token",
			Usage:     "Issue an access token",
			ArgsUsage: "<externalID>",
			Category:  "Auth",
			Description: `Used to issue an access token whose subject is the given external id,
it is intended for local development and testing.`,
		},
	}
}
