package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"steady-compass/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type recordCheckInRequest struct {
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// RecordCheckIn godoc
// @Summary      Record a check-in event
// @Description  Stores the event with the stress and emotion analysis attached at record time
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body  recordCheckInRequest  true  "Check-in"
// @Success      201  {object}  domain.CheckIn
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/events [post]
func (h *Handler) RecordCheckIn(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.record-check-in")
	defer span.End()

	var req recordCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.UserID) == "" || strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and description are required"})
		return
	}
	span.SetAttributes(attribute.String("user_id", req.UserID))

	checkIn, err := h.wellness.RecordCheckIn(ctx, req.UserID, req.Description, req.OccurredAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, checkIn)
}

type importCheckInsRequest struct {
	UserID string               `json:"user_id"`
	Events []domain.EventRecord `json:"events"`
}

// ImportCheckIns godoc
// @Summary      Import check-in events in bulk
// @Description  Analyzes every event and stores the batch in one write
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body  importCheckInsRequest  true  "Check-ins to import"
// @Success      201  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/events/import [post]
func (h *Handler) ImportCheckIns(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.import-check-ins")
	defer span.End()

	var req importCheckInsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.UserID) == "" || len(req.Events) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and at least one event are required"})
		return
	}
	span.SetAttributes(attribute.String("user_id", req.UserID), attribute.Int("events", len(req.Events)))

	imported, err := h.wellness.ImportCheckIns(ctx, req.UserID, req.Events)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"imported": imported})
}

// ListCheckIns godoc
// @Summary      List check-in events
// @Tags         events
// @Produce      json
// @Param        user_id  query  string  false  "User ID"
// @Param        since    query  string  false  "RFC3339 lower bound"
// @Param        limit    query  int     false  "Number of entries (default 50, max 200)"  default(50)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/events [get]
func (h *Handler) ListCheckIns(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.list-check-ins")
	defer span.End()

	filter := domain.CheckInFilter{
		UserID: strings.TrimSpace(c.Query("user_id")),
	}

	if rawSince := strings.TrimSpace(c.Query("since")); rawSince != "" {
		since, err := time.Parse(time.RFC3339, rawSince)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be an RFC3339 timestamp"})
			return
		}
		filter.Since = since
	}

	limit := 50
	if rawLimit := strings.TrimSpace(c.Query("limit")); rawLimit != "" {
		n, err := strconv.Atoi(rawLimit)
		if err != nil || n <= 0 || n > 200 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 200"})
			return
		}
		limit = n
	}
	filter.Limit = limit

	checkIns, err := h.wellness.ListCheckIns(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"check_ins": checkIns})
}
