package event

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pwiech/footliga/config"
	"github.com/pwiech/footliga/internal/lineup"
	"github.com/pwiech/footliga/internal/match"
	mw "github.com/pwiech/footliga/internal/middleware"
	"github.com/pwiech/footliga/internal/player"
	"github.com/pwiech/footliga/pkg/rmiddleware"
)

// EventRoutes sets up all event-related routes
func EventRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	eventRepo := NewEventRepository(db)
	lineupRepo := lineup.NewLineupRepository(db)
	matchRepo := match.NewMatchRepository(db)
	playerRepo := player.NewPlayerRepository(db)
	service := NewRecorderService(eventRepo, lineupRepo, matchRepo, playerRepo)
	controller := NewEventController(service)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.GET("/matches/:match_id/events", controller.GetMatchEvents)
		authRoutes.GET("/matches/:match_id/timeline", controller.GetMatchTimeline)
		authRoutes.GET("/matches/:match_id/bench-pool/:team_id", controller.GetBenchPool)
	}

	editorRoutes := router.Group("/")
	editorRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	editorRoutes.Use(rmiddleware.EditorMiddleware())
	{
		editorRoutes.POST("/matches/:match_id/events", controller.CreateEvent)
		editorRoutes.PUT("/events/:event_id/player", controller.AssignPlayer)
	}
}
