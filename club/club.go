package club

import (
	"log"

	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/cron"
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/handlers"
	"github.com/Damouche-Billel/4FSC0WE004-Live-Api/club/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	PlayerHandler     *handlers.PlayerHandler
	PlayerService     *services.PlayerService
	TeamHandler       *handlers.TeamHandler
	TeamService       *services.TeamService
	TournamentHandler *handlers.TournamentHandler
	TournamentService *services.TournamentService
	StatsHandler      *handlers.StatsHandler
	StatsService      *services.StatsService
	IntegrityService  *services.IntegrityService
	Scheduler         *cron.Scheduler
	db                *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	playerService := services.NewPlayerService(db)
	playerHandler := handlers.NewPlayerHandler(playerService)

	teamService := services.NewTeamService(db)
	teamHandler := handlers.NewTeamHandler(teamService)

	tournamentService := services.NewTournamentService(db, teamService)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)

	statsService := services.NewStatsService(db)
	statsHandler := handlers.NewStatsHandler(statsService)

	integrityService := services.NewIntegrityService(db)
	scheduler := cron.NewScheduler(integrityService)

	return &Module{
		PlayerHandler:     playerHandler,
		PlayerService:     playerService,
		TeamHandler:       teamHandler,
		TeamService:       teamService,
		TournamentHandler: tournamentHandler,
		TournamentService: tournamentService,
		StatsHandler:      statsHandler,
		StatsService:      statsService,
		IntegrityService:  integrityService,
		Scheduler:         scheduler,
		db:                db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	players := api.Group("/players")
	{
		players.GET("", m.PlayerHandler.GetAllPlayers)
		players.GET("/:id", m.PlayerHandler.GetPlayer)
		players.POST("", m.PlayerHandler.CreatePlayer)
		players.PUT("/:id", m.PlayerHandler.UpdatePlayer)
		players.DELETE("/:id", m.PlayerHandler.DeletePlayer)
	}

	teams := api.Group("/teams")
	{
		teams.GET("", m.TeamHandler.GetAllTeams)
		teams.GET("/:id", m.TeamHandler.GetTeam)
		teams.POST("", m.TeamHandler.CreateTeam)
		teams.PUT("/:id", m.TeamHandler.UpdateTeam)
		teams.DELETE("/:id", m.TeamHandler.DeleteTeam)
	}

	tournaments := api.Group("/tournaments")
	{
		tournaments.GET("", m.TournamentHandler.GetAllTournaments)
		tournaments.GET("/:id", m.TournamentHandler.GetTournament)
		tournaments.POST("", m.TournamentHandler.CreateTournament)
		tournaments.PUT("/:id", m.TournamentHandler.UpdateTournament)
		tournaments.DELETE("/:id", m.TournamentHandler.DeleteTournament)
	}

	api.GET("/stats", m.StatsHandler.GetStats)
}

// StartScheduler starts the cron scheduler for the integrity report job
func (m *Module) StartScheduler() error {
	log.Println("Starting club module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler
func (m *Module) StopScheduler() {
	log.Println("Stopping club module scheduler...")
	m.Scheduler.Stop()
}
