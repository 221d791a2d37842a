package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sanchitsave/cricket-app/internal/team"
)

func RegisterPlayerRoutes(router *gin.RouterGroup, db *gorm.DB) {
	playerRepo := NewPlayerRepository(db)
	teamRepo := team.NewTeamRepository(db)
	playerController := NewPlayerController(playerRepo, teamRepo)

	players := router.Group("/players")
	{
		players.POST("", playerController.CreatePlayer)
		players.GET("/:team_id", playerController.GetPlayersByTeam)
		players.DELETE("/:player_id", playerController.DeletePlayer)
	}
}
