package standings

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pwiech/footliga/config"
	"github.com/pwiech/footliga/internal/match"
	mw "github.com/pwiech/footliga/internal/middleware"
	"github.com/pwiech/footliga/internal/team"
)

// StandingsRoutes sets up the league-table route
func StandingsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config) {
	teamRepo := team.NewTeamRepository(db)
	matchRepo := match.NewMatchRepository(db)
	service := NewTableService(teamRepo, matchRepo)
	controller := NewStandingsController(service)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(appConfig.JWT.AccessTokenSecret, db))
	{
		authRoutes.GET("/standings", controller.GetTable)
	}
}
