package main

import (
	"log"

	"github.com/sanchitsave/cricket-app/config"
	_ "github.com/sanchitsave/cricket-app/docs"
	"github.com/sanchitsave/cricket-app/internal/match"
	"github.com/sanchitsave/cricket-app/internal/player"
	"github.com/sanchitsave/cricket-app/internal/scoring"
	"github.com/sanchitsave/cricket-app/internal/team"
	"github.com/sanchitsave/cricket-app/routes"
)

// @title Cricket Scoring REST API
// @version 1.0
// @description Live cricket match scoring server: teams, players, matches and ball-by-ball scoring with undo.
// @host localhost:5000
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&team.Team{},
		&player.Player{},
		&match.Match{},
		&scoring.BallRecord{},
		&scoring.PlayerStat{},
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
