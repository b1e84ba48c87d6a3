package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pwiech/footliga/config"
	mw "github.com/pwiech/footliga/internal/middleware"
	"github.com/pwiech/footliga/internal/team"
	"github.com/pwiech/footliga/pkg/rmiddleware"
)

// PlayerRoutes sets up all player-related routes
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	playerRepo := NewPlayerRepository(db)
	teamRepo := team.NewTeamRepository(db)
	playerController := NewPlayerController(playerRepo, teamRepo)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.GET("/players", playerController.GetAllPlayers)
		authRoutes.GET("/players/:player_id", playerController.GetPlayerByID)
		authRoutes.GET("/teams/:team_id/players", playerController.GetTeamRoster)
	}

	editorRoutes := router.Group("/")
	editorRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	editorRoutes.Use(rmiddleware.EditorMiddleware())
	{
		editorRoutes.POST("/players", playerController.CreatePlayer)
		editorRoutes.PUT("/players/:player_id", playerController.UpdatePlayer)
		editorRoutes.DELETE("/players/:player_id", playerController.DeletePlayer)
	}
}
