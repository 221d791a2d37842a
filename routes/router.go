package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sanchitsave/cricket-app/config"
	"github.com/sanchitsave/cricket-app/internal/match"
	"github.com/sanchitsave/cricket-app/internal/player"
	"github.com/sanchitsave/cricket-app/internal/scoring"
	"github.com/sanchitsave/cricket-app/internal/team"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Cricket Scoring</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Cricket Scoring API 🏏</h1>
					<div><a href="/swagger/index.html">swagger</a></div>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	db := config.DB
	api := r.Group("/api")
	team.RegisterTeamRoutes(api, db)
	player.RegisterPlayerRoutes(api, db)
	match.RegisterMatchRoutes(api, db)
	scoring.RegisterScoringRoutes(api, db)

	return r
}
