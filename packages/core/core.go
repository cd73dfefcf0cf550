package core

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"courtiq-api/packages/core/cron"
	"courtiq-api/packages/core/fetch"
	"courtiq-api/packages/core/handlers"
	"courtiq-api/packages/core/services"
)

// Options carries the process-wide clients the module is built from.
type Options struct {
	// Pages fetches tennisrecruiting pages (profiles, lists, activity).
	Pages fetch.Fetcher
	// RankingsAPI fetches the ITF ranking JSON.
	RankingsAPI fetch.Fetcher
	// ITFPages fetches ITF activity pages; nil when no browser is configured.
	ITFPages fetch.Fetcher
	Sync     services.SyncOptions

	// Guards for coach and cron routes.
	Coach gin.HandlerFunc
	Cron  gin.HandlerFunc

	RankingsSchedule string
	ITFSchedule      string
}

type Module struct {
	RecruitHandler        *handlers.RecruitHandler
	HistoryHandler        *handlers.HistoryHandler
	InteractionHandler    *handlers.InteractionHandler
	ProspectHandler       *handlers.ProspectHandler
	SyncHandler           *handlers.SyncHandler
	MatchResultHandler    *handlers.MatchResultHandler
	DiscoveryHandler      *handlers.DiscoveryHandler
	ProgramProfileHandler *handlers.ProgramProfileHandler
	RankingSyncService    *services.RankingSyncService
	ITFSyncService        *services.ITFSyncService
	Scheduler             *cron.Scheduler
	coach                 gin.HandlerFunc
	cron                  gin.HandlerFunc
}

func NewModule(db *gorm.DB, opts Options) *Module {
	recruitService := services.NewRecruitService(db)
	historyService := services.NewHistoryService(db)
	interactionService := services.NewInteractionService(db)
	exportService := services.NewExportService(db)
	prospectService := services.NewProspectService(db)
	profileService := services.NewProgramProfileService(db)
	discoveryService := services.NewDiscoveryService(db)

	rankingSyncService := services.NewRankingSyncService(db, opts.Pages, opts.Sync)
	itfSyncService := services.NewITFSyncService(db, opts.RankingsAPI, opts.Sync)
	matchResultService := services.NewMatchResultService(db, services.MatchFetchers{
		TennisRecruiting: opts.Pages,
		ITF:              opts.ITFPages,
	}, opts.Sync)

	scheduler := cron.NewScheduler(
		cron.Job{
			Name: services.JobSyncRankings,
			Spec: opts.RankingsSchedule,
			Run: func(ctx context.Context) error {
				resp, err := rankingSyncService.Run(ctx)
				if err != nil {
					return err
				}
				slog.Info("ranking sync summary", "processed", resp.Summary.Processed, "updated", resp.Summary.Updated, "failed", resp.Summary.Failed, "upserted", resp.Scan.Upserted)
				return nil
			},
		},
		cron.Job{
			Name: services.JobSyncITF,
			Spec: opts.ITFSchedule,
			Run: func(ctx context.Context) error {
				resp, err := itfSyncService.Run(ctx)
				if err != nil {
					return err
				}
				slog.Info("itf sync summary", "fetched", resp.TotalFetched, "after_filter", resp.AfterFilter, "upserted", resp.Upserted)
				return nil
			},
		},
	)

	return &Module{
		RecruitHandler:        handlers.NewRecruitHandler(recruitService),
		HistoryHandler:        handlers.NewHistoryHandler(historyService),
		InteractionHandler:    handlers.NewInteractionHandler(interactionService, exportService),
		ProspectHandler:       handlers.NewProspectHandler(prospectService, itfSyncService),
		SyncHandler:           handlers.NewSyncHandler(rankingSyncService, itfSyncService),
		MatchResultHandler:    handlers.NewMatchResultHandler(matchResultService),
		DiscoveryHandler:      handlers.NewDiscoveryHandler(discoveryService),
		ProgramProfileHandler: handlers.NewProgramProfileHandler(profileService),
		RankingSyncService:    rankingSyncService,
		ITFSyncService:        itfSyncService,
		Scheduler:             scheduler,
		coach:                 opts.Coach,
		cron:                  opts.Cron,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	cronRoutes := api.Group("/cron", m.cron)
	{
		cronRoutes.GET("/sync-rankings", m.SyncHandler.SyncRankings)
		cronRoutes.GET("/sync-itf", m.SyncHandler.SyncITF)
	}

	coach := api.Group("", m.coach)

	recruits := coach.Group("/recruits")
	{
		recruits.GET("", m.RecruitHandler.GetRecruits)
		recruits.POST("", m.RecruitHandler.CreateRecruit)
		recruits.GET("/:id", m.RecruitHandler.GetRecruit)
		recruits.PATCH("/:id", m.RecruitHandler.UpdateRecruit)
		recruits.DELETE("/:id", m.RecruitHandler.DeleteRecruit)
	}

	prospects := coach.Group("/prospects")
	{
		prospects.GET("", m.ProspectHandler.GetProspects)
		prospects.POST("/import", m.ProspectHandler.ImportProspects)
		prospects.DELETE("/:id", m.ProspectHandler.DeleteProspect)
		prospects.POST("/:id/promote", m.ProspectHandler.PromoteProspect)
	}

	coach.GET("/interactions", m.InteractionHandler.GetInteractions)
	coach.POST("/interactions", m.InteractionHandler.LogInteraction)
	coach.GET("/exports/arms", m.InteractionHandler.ExportARMS)

	coach.POST("/utr-history", m.HistoryHandler.AddUTR)
	coach.DELETE("/utr-history/:id", m.HistoryHandler.DeleteUTR)
	coach.POST("/ranking-history", m.HistoryHandler.AddRanking)
	coach.DELETE("/ranking-history/:id", m.HistoryHandler.DeleteRanking)

	coach.GET("/match-results", m.MatchResultHandler.GetMatchResults)
	coach.POST("/match-results", m.MatchResultHandler.IngestMatchResults)

	coach.GET("/discovery", m.DiscoveryHandler.GetDiscovery)

	coach.GET("/program-profile", m.ProgramProfileHandler.GetProfile)
	coach.PATCH("/program-profile", m.ProgramProfileHandler.UpdateProfile)
	coach.POST("/calculate-fit", m.ProgramProfileHandler.CalculateFit)
}

// StartScheduler starts the in-process sync schedules, if any are configured
func (m *Module) StartScheduler() error {
	slog.Info("starting core module scheduler")
	return m.Scheduler.Start()
}

// RunJob runs one sync job by name outside its schedule.
func (m *Module) RunJob(name string) error {
	return m.Scheduler.RunNow(name)
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	m.Scheduler.Stop()
}
