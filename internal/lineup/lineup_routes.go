package lineup

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pwiech/footliga/config"
	mw "github.com/pwiech/footliga/internal/middleware"
	"github.com/pwiech/footliga/internal/match"
	"github.com/pwiech/footliga/internal/player"
	"github.com/pwiech/footliga/pkg/rmiddleware"
)

// LineupRoutes sets up all roster-related routes
func LineupRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	lineupRepo := NewLineupRepository(db)
	matchRepo := match.NewMatchRepository(db)
	playerRepo := player.NewPlayerRepository(db)
	service := NewRosterService(lineupRepo, matchRepo, playerRepo)
	controller := NewLineupController(service)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.GET("/matches/:match_id/lineups/:side", controller.GetRoster)
	}

	editorRoutes := router.Group("/")
	editorRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	editorRoutes.Use(rmiddleware.EditorMiddleware())
	{
		editorRoutes.POST("/matches/:match_id/lineups/:side", controller.CreateRoster)
		editorRoutes.PUT("/matches/:match_id/lineups/:side", controller.UpdateRoster)
	}
}
