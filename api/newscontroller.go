package api

import (
	"net/http"

	"vaultfeed/config"
	"vaultfeed/rssfeeds"

	"github.com/gin-gonic/gin"
)

// RegisterNewsRoutes registers the feed endpoints.
func RegisterNewsRoutes(r *gin.Engine) {
	r.GET("/api/news", handleGetNews)
}

// handleGetNews returns a normalized item list for an RSS/Atom feed.
// Query params: url (feed URL or preset name, optional), limit (optional,
// default 20, capped at 50).
func handleGetNews(c *gin.Context) {
	feedURL := c.Query("url")
	if feedURL == "" {
		feedURL = config.DefaultFeedURL()
	} else {
		feedURL = config.ResolveFeedURL(feedURL)
	}
	limit := config.ClampLimit(c.Query("limit"))

	result, err := rssfeeds.FetchFeed(c.Request.Context(), feedURL, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Feed error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
