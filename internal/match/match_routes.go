package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pwiech/footliga/config"
	mw "github.com/pwiech/footliga/internal/middleware"
	"github.com/pwiech/footliga/internal/team"
	"github.com/pwiech/footliga/pkg/rmiddleware"
)

// MatchRoutes sets up all match-related routes
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	matchRepo := NewMatchRepository(db)
	teamRepo := team.NewTeamRepository(db)
	matchController := NewMatchController(matchRepo, teamRepo)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.GET("/matches/:match_id", matchController.GetMatchByID)
		authRoutes.GET("/laps", matchController.GetLaps)
		authRoutes.GET("/laps/:lap/matches", matchController.GetMatchesByLap)
		authRoutes.GET("/teams/:team_id/matches", matchController.GetTeamMatches)
	}

	editorRoutes := router.Group("/")
	editorRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	editorRoutes.Use(rmiddleware.EditorMiddleware())
	{
		editorRoutes.POST("/matches", matchController.CreateMatch)
		editorRoutes.PUT("/matches/:match_id", matchController.UpdateMatch)
		editorRoutes.DELETE("/matches/:match_id", matchController.DeleteMatch)
	}
}
