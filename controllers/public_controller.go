package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes mounts the unauthenticated liveness endpoints on rg.
func RegisterPublicRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/public")
	{
		public.GET("/health", health)
		public.GET("/info", info)
	}
}

// @Summary Health check
// @Tags Public
// @Produce plain
// @Success 200 {string} string "Service is healthy"
// @Router /public/health [get]
func health(c *gin.Context) {
	c.String(http.StatusOK, "Service is healthy")
}

// @Summary Service info
// @Tags Public
// @Produce plain
// @Success 200 {string} string "Review Cycle Group Service v1.0"
// @Router /public/info [get]
func info(c *gin.Context) {
	c.String(http.StatusOK, "Review Cycle Group Service v1.0")
}
