package main

import (
	"log"

	"github.com/pwiech/footliga/config"
	_ "github.com/pwiech/footliga/docs"
	"github.com/pwiech/footliga/internal/event"
	"github.com/pwiech/footliga/internal/lineup"
	"github.com/pwiech/footliga/internal/match"
	"github.com/pwiech/footliga/internal/player"
	"github.com/pwiech/footliga/internal/team"
	"github.com/pwiech/footliga/internal/user"
	"github.com/pwiech/footliga/routes"
)

// @title FootLiga REST API
// @version 1.0
// @description League administration server: teams, players, matches, lineups, events, standings.
// @host localhost:8090
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{}, &user.Role{}, &user.RefreshToken{},
		&team.Team{}, &player.Player{},
		&match.Match{}, &lineup.Lineup{},
		&event.Event{}, &event.Substitution{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes()

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
