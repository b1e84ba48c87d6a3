package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pwiech/footliga/config"
	mw "github.com/pwiech/footliga/internal/middleware"
	"github.com/pwiech/footliga/pkg/rmiddleware"
)

// TeamRoutes sets up all team-related routes
func TeamRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	// The team list is the public index page of the league.
	router.GET("/teams", teamController.GetAllTeams)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.GET("/teams/:team_id", teamController.GetTeamByID)
	}

	editorRoutes := router.Group("/")
	editorRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	editorRoutes.Use(rmiddleware.EditorMiddleware())
	{
		editorRoutes.POST("/teams", teamController.CreateTeam)
		editorRoutes.PUT("/teams/:team_id", teamController.UpdateTeam)
		editorRoutes.DELETE("/teams/:team_id", teamController.DeleteTeam)
	}
}
