package main

import (
	"fmt"
	"net/http"

	"github.com/timebank-lab/backend/internal/middleware"
	"github.com/timebank-lab/backend/pkg/authenticator"
	"github.com/timebank-lab/backend/pkg/prometheus"
	"github.com/timebank-lab/backend/pkg/router"
	"github.com/timebank-lab/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	if port := cctx.String("port"); port != "" {
		cfg := xcontext.Configs(s.ctx)
		cfg.ApiServer.Port = port
		s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	}

	if err := s.loadDatabase(); err != nil {
		return err
	}

	if err := s.migrateDB(); err != nil {
		return err
	}

	if err := s.loadRedisClient(); err != nil {
		return err
	}

	if err := s.loadPublisher(); err != nil {
		return err
	}
	defer s.close()

	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx)
	s.server = &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

func (s *srv) loadRouter() {
	cfg := xcontext.Configs(s.ctx)

	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())

	// These following APIs need authentication with an access token.
	authRouter := s.router.Branch()
	authVerifier := middleware.NewAuthVerifier(authenticator.NewTokenEngine(cfg.Auth))
	authRouter.Before(authVerifier.Middleware())
	{
		// Assistance API
		router.PATCH(authRouter, "/assistance/respond", s.assistanceDomain.Respond)
		router.PATCH(authRouter, "/thread/assist", s.assistanceDomain.Request)

		// Thread API
		router.POST(authRouter, "/createThread", s.threadDomain.Create)
		router.POST(authRouter, "/addComment", s.threadDomain.AddComment)
		router.POST(authRouter, "/deleteThread", s.threadDomain.Delete)
		router.POST(authRouter, "/acceptThread", s.threadDomain.Accept)

		// Activity API
		router.GET(authRouter, "/getActivity", s.activityDomain.GetUserActivity)

		// User API
		router.POST(authRouter, "/updateUser", s.userDomain.Update)
		router.GET(authRouter, "/getSuggestedUsers", s.userDomain.GetSuggested)
	}

	// Public API.
	router.GET(s.router, "/getPosts", s.threadDomain.GetPosts)
	router.GET(s.router, "/getThread", s.threadDomain.GetByID)
	router.GET(s.router, "/getUser", s.userDomain.Get)
	router.GET(s.router, "/getUserProfiles", s.userDomain.GetProfiles)
	router.GET(s.router, "/getPopularCommunities", s.communityDomain.GetPopular)

	if cfg.Metrics.Enable {
		s.router.Handle(http.MethodGet, cfg.Metrics.Path, prometheus.NewHandler())
	}
}
