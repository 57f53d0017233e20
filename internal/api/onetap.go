package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/serenoapp/server/usecase"
)

func (h *Handler) oneTapStart(c echo.Context) error {
	var req OneTapRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}
	if req.VoiceID == "" {
		req.VoiceID = defaultVoiceID
	}

	session, err := h.oneTap.Start(c.Request().Context(), req.SessionType, req.VoiceID)
	if err != nil {
		return h.oneTapError(c, err, req.SessionType)
	}

	return c.JSON(http.StatusOK, OneTapResponse{
		AudioURL: session.AudioURL,
		Script:   session.Script,
		Steps:    session.Steps,
	})
}

func (h *Handler) oneTapStepAudio(c echo.Context) error {
	var req OneTapRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}
	if req.VoiceID == "" {
		req.VoiceID = defaultVoiceID
	}

	stepIndex, err := strconv.Atoi(c.QueryParam("stepIndex"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid stepIndex",
		})
	}

	step, err := h.oneTap.StepAudio(c.Request().Context(), req.SessionType, stepIndex, req.VoiceID)
	if err != nil {
		return h.oneTapError(c, err, req.SessionType)
	}

	return c.JSON(http.StatusOK, OneTapStepAudioResponse{
		AudioURL:   step.AudioURL,
		ScriptStep: step.ScriptStep,
	})
}

func (h *Handler) oneTapStepTiming(c echo.Context) error {
	sessionType := c.Param("sessionType")
	stepIndex, err := strconv.Atoi(c.Param("stepIndex"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid stepIndex",
		})
	}

	timing, err := h.oneTap.StepTiming(sessionType, stepIndex)
	if err != nil {
		return h.oneTapError(c, err, sessionType)
	}

	return c.JSON(http.StatusOK, StepTimingResponse{
		StepIndex:       timing.StepIndex,
		StartsAtSeconds: timing.StartsAt.Seconds(),
		DurationSeconds: timing.Duration.Seconds(),
	})
}

func (h *Handler) oneTapError(c echo.Context, err error, sessionType string) error {
	switch {
	case errors.Is(err, usecase.ErrUnknownSessionType):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid sessionType",
		})
	case errors.Is(err, usecase.ErrInvalidStepIndex):
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid stepIndex",
		})
	default:
		h.logger.Error("One-tap request failed",
			zap.String("sessionType", sessionType),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "synthesis_failed",
			Message: "Unable to produce session audio",
		})
	}
}
