package handler

import (
	"net/http"
	"strings"

	"steady-compass/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

const maxBatchTexts = 100

type analyzeRequest struct {
	Text string `json:"text"`
}

type batchAnalyzeRequest struct {
	Texts []string `json:"texts"`
}

type eventsRequest struct {
	Events []domain.EventRecord `json:"events"`
}

type curveResponse struct {
	Curve   domain.PressureCurve `json:"curve"`
	Summary domain.CurveSummary  `json:"summary"`
}

type suggestionsRequest struct {
	StressLevel string `json:"stress_level"`
	Dimension   string `json:"dimension"`
	EmotionType string `json:"emotion_type"`
	Description string `json:"description"`
}

// AnalyzeEmotion godoc
// @Summary      Analyze emotion in free text
// @Description  Keyword-based emotion classification with intensity and confidence
// @Tags         resilience
// @Accept       json
// @Produce      json
// @Param        request  body  analyzeRequest  true  "Text to analyze"
// @Success      200  {object}  domain.EmotionAnalysis
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/resilience/analyze [post]
func (h *Handler) AnalyzeEmotion(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.analyze-emotion")
	defer span.End()

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.wellness.AnalyzeEmotion(ctx, req.Text))
}

// BatchAnalyzeEmotions godoc
// @Summary      Analyze emotion for multiple texts
// @Tags         resilience
// @Accept       json
// @Produce      json
// @Param        request  body  batchAnalyzeRequest  true  "Texts to analyze (max 100)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/resilience/analyze/batch [post]
func (h *Handler) BatchAnalyzeEmotions(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.batch-analyze-emotions")
	defer span.End()

	var req batchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Texts) > maxBatchTexts {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many texts, max 100"})
		return
	}
	span.SetAttributes(attribute.Int("texts", len(req.Texts)))

	c.JSON(http.StatusOK, gin.H{"results": h.wellness.BatchAnalyzeEmotions(ctx, req.Texts)})
}

// AnalyzeEvent godoc
// @Summary      Analyze event stress sentiment
// @Description  Classifies event text into a stress tier with score, factors, and suggestions
// @Tags         resilience
// @Accept       json
// @Produce      json
// @Param        request  body  analyzeRequest  true  "Event text"
// @Success      200  {object}  domain.EventSentiment
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/resilience/analyze-event [post]
func (h *Handler) AnalyzeEvent(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.analyze-event")
	defer span.End()

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.wellness.AnalyzeEvent(ctx, req.Text))
}

// GenerateCurve godoc
// @Summary      Generate a pressure curve from events
// @Description  The response bundles the curve with its summary statistics
// @Tags         resilience
// @Accept       json
// @Produce      json
// @Param        request  body  eventsRequest  true  "Events"
// @Success      200  {object}  curveResponse
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/resilience/curve/generate [post]
func (h *Handler) GenerateCurve(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.generate-curve")
	defer span.End()

	var req eventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	span.SetAttributes(attribute.Int("events", len(req.Events)))

	curve, summary := h.wellness.GenerateCurveReport(ctx, req.Events)
	c.JSON(http.StatusOK, curveResponse{Curve: curve, Summary: summary})
}

// CurveSummary godoc
// @Summary      Summarize a pressure curve
// @Description  Curve statistics with extremum counts and a qualitative status line
// @Tags         resilience
// @Accept       json
// @Produce      json
// @Param        request  body  eventsRequest  true  "Events"
// @Success      200  {object}  domain.CurveSummary
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/resilience/curve/summary [post]
func (h *Handler) CurveSummary(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.curve-summary")
	defer span.End()

	var req eventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.wellness.CurveSummary(ctx, req.Events))
}

// CalculateScore godoc
// @Summary      Calculate a resilience score from events
// @Tags         resilience
// @Accept       json
// @Produce      json
// @Param        request  body  eventsRequest  true  "Events"
// @Success      200  {object}  domain.ResilienceScore
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/resilience/score/calculate [post]
func (h *Handler) CalculateScore(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.calculate-score")
	defer span.End()

	var req eventsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.wellness.CalculateScore(ctx, req.Events))
}

// GetSuggestions godoc
// @Summary      Get stress-management suggestions
// @Description  Looks up suggestions by stress level, dimension, and emotion. When only an event description is given, the stress level is classified from it first.
// @Tags         resilience
// @Accept       json
// @Produce      json
// @Param        request  body  suggestionsRequest  true  "Lookup inputs"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/resilience/suggestions [post]
func (h *Handler) GetSuggestions(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-suggestions")
	defer span.End()

	var req suggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.StressLevel) == "" && strings.TrimSpace(req.Description) != "" {
		c.JSON(http.StatusOK, gin.H{"suggestions": h.wellness.SuggestForEvent(ctx, req.Description)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": h.wellness.GetSuggestions(ctx, req.StressLevel, req.Dimension, req.EmotionType),
	})
}

// GetActionPlan godoc
// @Summary      Get a phased action plan
// @Tags         resilience
// @Accept       json
// @Produce      json
// @Param        request  body  suggestionsRequest  true  "Lookup inputs"
// @Success      200  {object}  domain.ActionPlan
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/resilience/action-plan [post]
func (h *Handler) GetActionPlan(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-action-plan")
	defer span.End()

	var req suggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusOK, h.wellness.GetActionPlan(ctx, req.StressLevel, req.Dimension, req.EmotionType))
}

// RecentCurve godoc
// @Summary      Pressure curve over the recent journal window
// @Tags         resilience
// @Produce      json
// @Param        user_id  query  string  true  "User ID"
// @Success      200  {object}  domain.PressureCurve
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/resilience/curve/recent [get]
func (h *Handler) RecentCurve(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.recent-curve")
	defer span.End()

	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	span.SetAttributes(attribute.String("user_id", userID))

	curve, err := h.wellness.RecentCurve(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, curve)
}

// RecentScore godoc
// @Summary      Resilience score over the recent journal window
// @Tags         resilience
// @Produce      json
// @Param        user_id  query  string  true  "User ID"
// @Success      200  {object}  domain.ResilienceScore
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/resilience/score/recent [get]
func (h *Handler) RecentScore(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.recent-score")
	defer span.End()

	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	span.SetAttributes(attribute.String("user_id", userID))

	score, err := h.wellness.RecentScore(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, score)
}
