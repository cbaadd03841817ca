package webui

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the form page and processes form submissions.
type Handler struct {
	controller *Controller
}

// NewHandler builds the handler around a controller.
func NewHandler(controller *Controller) *Handler {
	return &Handler{controller: controller}
}

// Index handles GET / with the idle form page.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "page", PageData{State: StateIdle})
}

// Submit handles POST /submit: runs the controller lifecycle and renders
// the settled state. Superseded submissions get no content.
func (h *Handler) Submit(c *gin.Context) {
	view, err := h.controller.Submit(
		c.Request.Context(),
		c.PostForm("budget"),
		c.PostForm("distance"),
	)
	if err != nil {
		if errors.Is(err, ErrSuperseded) {
			c.Status(http.StatusNoContent)
			return
		}
		c.HTML(http.StatusOK, "page", PageData{State: StateError, Error: err.Error()})
		return
	}

	c.HTML(http.StatusOK, "page", PageData{
		State:   view.State,
		Results: view.Results,
		Error:   view.Error,
	})
}
