package handler

import (
	"net/http"
	"time"

	"hangout_backend/internal/gps/service"
	"hangout_backend/internal/gps/transport"
	"hangout_backend/platform/httpkit"
	"hangout_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ProcessGPS handles POST /api/process-gps.
func (h *Handler) ProcessGPS(c *gin.Context) {
	var req transport.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	response, err := h.svc.Process(c.Request.Context(), req)
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "failed to process GPS data", nil)
		return
	}

	httpkit.OK(c, response)
}

// GetData handles GET /api/data.
func (h *Handler) GetData(c *gin.Context) {
	var query transport.DataQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(query); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	response, err := h.svc.Data(c.Request.Context(), query)
	if err != nil {
		httpkit.Error(c, http.StatusInternalServerError, "failed to retrieve data", nil)
		return
	}

	httpkit.OK(c, response)
}

// TestConnection handles POST /api/test-connection.
func (h *Handler) TestConnection(c *gin.Context) {
	var payload interface{}
	_ = c.ShouldBindJSON(&payload)

	httpkit.OK(c, transport.TestConnectionResponse{
		Message:      "Connection successful!",
		ReceivedData: payload,
		Timestamp:    time.Now().UTC(),
		Method:       c.Request.Method,
		ContentType:  c.ContentType(),
	})
}

// Health handles GET /api/health.
func (h *Handler) Health(c *gin.Context) {
	count, err := h.svc.StoredCount(c.Request.Context())
	if err != nil {
		httpkit.Error(c, http.StatusServiceUnavailable, "storage unavailable", nil)
		return
	}

	httpkit.OK(c, transport.HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		StoredRecords: count,
	})
}
