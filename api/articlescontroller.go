package api

import (
	"net/http"
	"strings"

	"vaultfeed/extract"

	"github.com/gin-gonic/gin"
)

// RegisterArticleRoutes registers the article extraction endpoint.
func RegisterArticleRoutes(r *gin.Engine) {
	r.GET("/api/article", handleGetArticle)
}

// handleGetArticle extracts readable article content from a page URL.
// Extraction failures are absorbed into an empty-field result; only a
// missing url parameter is an error.
func handleGetArticle(c *gin.Context) {
	pageURL := strings.TrimSpace(c.Query("url"))
	if pageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url parameter is required"})
		return
	}

	c.JSON(http.StatusOK, extract.ExtractArticle(c.Request.Context(), pageURL))
}
