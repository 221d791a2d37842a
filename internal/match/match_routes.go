package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sanchitsave/cricket-app/internal/team"
)

// RegisterMatchRoutes sets up all match-related routes.
func RegisterMatchRoutes(router *gin.RouterGroup, db *gorm.DB) {
	matchRepo := NewMatchRepository(db)
	teamRepo := team.NewTeamRepository(db)
	matchController := NewMatchController(matchRepo, teamRepo)

	matches := router.Group("/matches")
	{
		matches.POST("", matchController.StartMatch)
		matches.GET("", matchController.GetAllMatches)
		matches.GET("/ongoing", matchController.GetOngoingMatches)
		matches.GET("/:match_id", matchController.GetMatchByID)
		matches.PUT("/:match_id", matchController.UpdateMatchStatus)
	}
}
