package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pwiech/footliga/config"
	"github.com/pwiech/footliga/internal/auth"
	"github.com/pwiech/footliga/internal/event"
	"github.com/pwiech/footliga/internal/lineup"
	"github.com/pwiech/footliga/internal/match"
	"github.com/pwiech/footliga/internal/player"
	"github.com/pwiech/footliga/internal/standings"
	"github.com/pwiech/footliga/internal/team"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	db := config.DB
	appConfig := config.GetConfig()

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>FootLiga</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>FootLiga ⚽</h1>
					<p><a href="/swagger/index.html">API documentation</a></p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := r.Group("/api")

	// Role middleware resolves roles through the auth repository.
	authRepo := auth.NewAuthRepository(db)
	api.Use(func(c *gin.Context) {
		c.Set("auth_repo", authRepo)
		c.Next()
	})

	auth.RegisterAuthRoutes(api, db, appConfig)
	team.TeamRoutes(api, db, appConfig)
	player.PlayerRoutes(api, db, appConfig)
	match.MatchRoutes(api, db, appConfig)
	lineup.LineupRoutes(api, db, appConfig)
	event.EventRoutes(api, db, appConfig)
	standings.StandingsRoutes(api, db, appConfig)

	return r
}
