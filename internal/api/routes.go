package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/serenoapp/server/usecase"
)

// defaultVoiceID is used when a one-tap request omits the voice. Rachel.
const defaultVoiceID = "21m00Tcm4TlvDq8ikWAM"

// Handler bundles the usecase services behind the HTTP surface.
type Handler struct {
	meditation    *usecase.MeditationService
	visualization *usecase.VisualizationService
	oneTap        *usecase.OneTapService
	audio         *usecase.AudioService
	logger        *zap.Logger
}

// NewHandler creates the API handler.
func NewHandler(
	meditation *usecase.MeditationService,
	visualization *usecase.VisualizationService,
	oneTap *usecase.OneTapService,
	audio *usecase.AudioService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		meditation:    meditation,
		visualization: visualization,
		oneTap:        oneTap,
		audio:         audio,
		logger:        logger,
	}
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, h *Handler) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "sereno-server",
		})
	})

	meditate := e.Group("/api/meditate")
	meditate.POST("/questions", h.meditationQuestion)
	meditate.GET("/voices", h.meditationVoices)
	meditate.POST("/start", h.meditationStart)
	meditate.POST("/session/:id/complete", h.meditationComplete)

	visualize := e.Group("/api/visualize")
	visualize.POST("/goal-analysis", h.goalAnalysis)
	visualize.POST("/questions", h.visualizationQuestion)
	visualize.POST("/challenges", h.identifyChallenges)
	visualize.POST("/start", h.visualizationStart)
	visualize.POST("/session/:id/complete", h.visualizationComplete)
	visualize.GET("/voices", h.visualizationVoices)

	audio := e.Group("/api/audio")
	audio.GET("/voices", h.audioVoices)
	audio.POST("/generate", h.audioGenerate)

	e.POST("/one-tap/start", h.oneTapStart)
	e.POST("/one-tap/step-audio", h.oneTapStepAudio)
	e.GET("/one-tap/step-timing/:sessionType/:stepIndex", h.oneTapStepTiming)
}

func (h *Handler) bindError(c echo.Context, err error) error {
	h.logger.Error("Failed to bind request", zap.Error(err))
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_request",
		Message: "Invalid request format",
	})
}
