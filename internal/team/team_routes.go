package team

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB) {
	teamRepo := NewTeamRepository(db)
	teamController := NewTeamController(teamRepo)

	teams := router.Group("/teams")
	{
		teams.POST("", teamController.CreateTeam)
		teams.GET("", teamController.GetAllTeams)
		teams.GET("/:team_id", teamController.GetTeamByID)
		teams.DELETE("/:team_id", teamController.DeleteTeam)
	}
}
