package router

import (
	app "github.com/anujyadav2244/cricriser/internal/application"
	"github.com/anujyadav2244/cricriser/internal/container"
	pginfra "github.com/anujyadav2244/cricriser/internal/infrastructure/postgres"
	handlers "github.com/anujyadav2244/cricriser/internal/interface/http"
	"github.com/anujyadav2244/cricriser/internal/router/modules"
)

// InitModules builds services from container singletons and registers every
// feature module with the router registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	logger := container.GetLogger()

	adminRepo := pginfra.NewAdminRepository(pool)
	leagueRepo := pginfra.NewLeagueRepository(pool)
	teamRepo := pginfra.NewTeamRepository(pool)
	playerRepo := pginfra.NewPlayerRepository(pool)
	matchRepo := pginfra.NewMatchRepository(pool)
	pointsRepo := pginfra.NewPointsRepository(pool)

	otpStore := app.NewOTPStore(container.GetRedis(), cfg.OTPTTL)

	adminSvc := app.NewAdminService(
		adminRepo,
		otpStore,
		container.GetSessions(),
		container.GetJWT(),
		container.GetRabbitPub(),
		cfg.AppName,
		logger,
	)
	leagueSvc := app.NewLeagueService(
		leagueRepo,
		teamRepo,
		matchRepo,
		pointsRepo,
		playerRepo,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetES(),
		cfg.ESLeaguesIndex,
		logger,
	)
	teamSvc := app.NewTeamService(teamRepo, leagueRepo, playerRepo, container.GetGCS(), cfg.GCSBucket, logger)
	playerSvc := app.NewPlayerService(playerRepo, container.GetGCS(), cfg.GCSBucket, logger)

	jwt := container.GetJWT()
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, logger), jwt))
	r.Add(modules.NewLeagueModule(handlers.NewLeagueHandler(leagueSvc, logger), jwt))
	r.Add(modules.NewTeamModule(handlers.NewTeamHandler(teamSvc, logger), jwt))
	r.Add(modules.NewPlayerModule(handlers.NewPlayerHandler(playerSvc, logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
