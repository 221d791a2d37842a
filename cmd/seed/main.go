package main

import (
	"fmt"
	"log"

	"github.com/sanchitsave/cricket-app/config"
	"github.com/sanchitsave/cricket-app/internal/match"
	"github.com/sanchitsave/cricket-app/internal/player"
	"github.com/sanchitsave/cricket-app/internal/scoring"
	"github.com/sanchitsave/cricket-app/internal/team"
)

// Seeds two teams with players and an ongoing match so the scoring panel
// has something to work with. Run from the repo root:
// go run ./cmd/seed
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	db := config.DB

	err := db.AutoMigrate(
		&team.Team{},
		&player.Player{},
		&match.Match{},
		&scoring.BallRecord{},
		&scoring.PlayerStat{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	fmt.Println("Seeding mock data...")

	squads := map[string][]string{
		"Mumbai Mavericks": {"R Sharma", "S Yadav", "T Varma", "J Bumrah", "H Pandya", "P Chawla"},
		"Delhi Dynamos":    {"D Warner", "P Shaw", "R Pant", "A Nortje", "K Yadav", "A Patel"},
	}

	teams := make(map[string]team.Team)
	for name, playerNames := range squads {
		var t team.Team
		if err := db.Where("name = ?", name).First(&t).Error; err != nil {
			t = team.Team{Name: name}
			db.Create(&t)
			fmt.Printf("Created team: %s\n", t.Name)
		}
		teams[name] = t

		for i, pn := range playerNames {
			var existing player.Player
			if err := db.Where("team_id = ? AND name = ?", t.ID, pn).First(&existing).Error; err == nil {
				continue
			}
			role := "batsman"
			if i >= 3 {
				role = "bowler"
			}
			db.Create(&player.Player{TeamID: t.ID, Name: pn, Role: role})
			fmt.Printf("Created player: %s (%s)\n", pn, t.Name)
		}
	}

	m := match.Match{
		Team1ID: teams["Mumbai Mavericks"].ID,
		Team2ID: teams["Delhi Dynamos"].ID,
		Status:  match.StatusOngoing,
	}
	db.Create(&m)
	fmt.Printf("Created ongoing match %d: Mumbai Mavericks vs Delhi Dynamos\n", m.ID)

	fmt.Println("Seeding complete.")
}
