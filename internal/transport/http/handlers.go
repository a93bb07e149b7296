package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ptxer/Ticket/internal/domain"
	"github.com/Ptxer/Ticket/internal/service"
)

type Handler struct {
	dash *service.Dashboard
}

func NewHandler(d *service.Dashboard) *Handler {
	return &Handler{dash: d}
}

// GET /v1/dashboard?bucket=active|finished&page=1
func (h *Handler) Dashboard(c *gin.Context) {
	bucket, err := service.ParseBucket(c.DefaultQuery("bucket", string(service.BucketActive)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	h.dash.SetPage(bucket, page)

	tickets, total := h.dash.Page(bucket, page)
	if tickets == nil {
		// a page past the end renders as "no records", not an error
		tickets = []domain.Ticket{}
	}

	var banner any
	if err := h.dash.Err(); err != nil {
		banner = err.Error()
	}
	c.JSON(http.StatusOK, gin.H{
		"bucket":      bucket,
		"page":        page,
		"total_pages": total,
		"tickets":     tickets,
		"error":       banner,
	})
}

// DELETE /v1/tickets/:id
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.dash.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrMissingID) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /v1/tickets/:id/route — navigation target for the follow-up screen
func (h *Handler) Route(c *gin.Context) {
	id := c.Param("id")
	t, ok := h.dash.Find(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
		return
	}
	url, err := h.dash.NavigationURL(t)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
