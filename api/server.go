package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter constructs a Gin engine with registered API routes.
func NewRouter() *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	// Register resource routers
	RegisterNewsRoutes(r)
	RegisterArticleRoutes(r)
	RegisterHealthRoutes(r)
	return r
}

// RegisterWebRoutes wires the bundled browser reader: index template,
// static assets, and favicon. Kept out of NewRouter so API consumers and
// tests can run without the asset directories.
func RegisterWebRoutes(r *gin.Engine) {
	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")
	r.StaticFile("/favicon.ico", "./static/favicon.ico")
	r.GET("/", handleIndex)
}

func handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}
