package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *Handler) audioGenerate(c echo.Context) error {
	var req AudioGenerationRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Text is required",
		})
	}
	if req.VoiceID == "" {
		req.VoiceID = defaultVoiceID
	}

	generated, err := h.audio.Generate(c.Request().Context(), req.Text, req.VoiceID)
	if err != nil {
		h.logger.Error("Audio generation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "synthesis_failed",
			Message: "Unable to generate audio",
		})
	}

	return c.JSON(http.StatusOK, AudioGenerationResponse{
		AudioURL:  generated.AudioURL,
		Duration:  generated.Duration,
		VoiceID:   generated.VoiceID,
		SessionID: generated.SessionID,
	})
}

func (h *Handler) audioVoices(c echo.Context) error {
	return c.JSON(http.StatusOK, h.audio.Voices())
}
