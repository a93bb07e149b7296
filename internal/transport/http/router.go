package http

import "github.com/gin-gonic/gin"

// NewRouter wires the consumption surface. Middlewares apply to the /v1
// group only; /healthz stays open for probes.
func NewRouter(h *Handler, middlewares ...gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.Use(middlewares...)
	{
		v1.GET("/dashboard", h.Dashboard)
		v1.DELETE("/tickets/:id", h.Delete)
		v1.GET("/tickets/:id/route", h.Route)
	}
	return r
}
