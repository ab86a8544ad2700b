package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PagesHandler serves the static HTML documents. All dynamic content
// on them is fetched client-side from the /api routes, with hard-coded
// defaults baked into the page script as the fail-soft fallback.
type PagesHandler struct{}

func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

func (h *PagesHandler) Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, nil)
	}
}
