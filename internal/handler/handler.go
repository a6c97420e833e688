package handler

import (
	"net/http"

	"steady-compass/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer   trace.Tracer
	wellness *service.WellnessService
}

func New(tracer trace.Tracer, wellness *service.WellnessService) *Handler {
	return &Handler{
		tracer:   tracer,
		wellness: wellness,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/resilience/analyze", h.AnalyzeEmotion)
		api.POST("/resilience/analyze/batch", h.BatchAnalyzeEmotions)
		api.POST("/resilience/analyze-event", h.AnalyzeEvent)
		api.POST("/resilience/curve/generate", h.GenerateCurve)
		api.POST("/resilience/curve/summary", h.CurveSummary)
		api.POST("/resilience/score/calculate", h.CalculateScore)
		api.POST("/resilience/suggestions", h.GetSuggestions)
		api.POST("/resilience/action-plan", h.GetActionPlan)
		api.GET("/resilience/curve/recent", h.RecentCurve)
		api.GET("/resilience/score/recent", h.RecentScore)

		api.POST("/events", h.RecordCheckIn)
		api.POST("/events/import", h.ImportCheckIns)
		api.GET("/events", h.ListCheckIns)
	}
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
