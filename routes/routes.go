package routes

import (
	"github.com/gin-gonic/gin"

	"mil-briefing/cronjobs"
	"mil-briefing/handlers"
	"mil-briefing/publish"
)

func SetupRouter(sink *publish.Sink, pipeline *cronjobs.Pipeline) *gin.Engine {
	r := gin.Default()

	r.GET("/health", handlers.Health)

	api := r.Group("/api")
	{
		api.GET("/briefing", func(c *gin.Context) {
			handlers.GetBriefing(c, sink)
		})
		api.POST("/cycle", func(c *gin.Context) {
			handlers.TriggerCycle(c, pipeline)
		})
	}

	return r
}
