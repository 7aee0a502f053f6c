package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mil-briefing/cronjobs"
	"mil-briefing/publish"
)

// GetBriefing serves the most recently published document.
func GetBriefing(c *gin.Context, sink *publish.Sink) {
	doc := sink.Latest()
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no briefing published yet"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// TriggerCycle runs one pipeline pass on demand and returns the resulting
// document. Errors here mean the publish step failed; the analysis itself
// cannot fail.
func TriggerCycle(c *gin.Context, pipeline *cronjobs.Pipeline) {
	doc, err := pipeline.RunCycle(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
