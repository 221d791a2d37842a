package scoring

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sanchitsave/cricket-app/internal/match"
	"github.com/sanchitsave/cricket-app/internal/player"
)

// RegisterScoringRoutes sets up the ball-by-ball scoring routes.
func RegisterScoringRoutes(router *gin.RouterGroup, db *gorm.DB) {
	ballRepo := NewBallRepository(db)
	matchRepo := match.NewMatchRepository(db)
	playerRepo := player.NewPlayerRepository(db)
	scoringController := NewScoringController(ballRepo, matchRepo, playerRepo)

	router.POST("/score-ball", scoringController.ScoreBall)

	ballRecords := router.Group("/ball-records")
	{
		ballRecords.GET("/:match_id", scoringController.GetBallRecords)
		ballRecords.DELETE("/:match_id/last", scoringController.UndoLastBall)
	}

	matches := router.Group("/matches/:match_id")
	{
		matches.GET("/scorecard", scoringController.GetScorecard)
		matches.GET("/summary", scoringController.GetSummary)
		matches.GET("/next-delivery", scoringController.GetNextDelivery)
		matches.GET("/stats", scoringController.GetMatchStats)
		matches.POST("/stats/rebuild", scoringController.RebuildMatchStats)
	}
}
