package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/serenoapp/server/usecase"
)

func (h *Handler) meditationQuestion(c echo.Context) error {
	var req MeditationQuestionRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}

	question := h.meditation.NextQuestion(c.Request().Context(), usecase.MeditationQuestionInput{
		Mood:                 req.Mood,
		PreviousAnswers:      req.PreviousAnswers,
		CurrentQuestionIndex: req.CurrentQuestionIndex,
	})

	return c.JSON(http.StatusOK, DynamicQuestionResponse{
		NextQuestion:   question.Text,
		QuestionType:   string(question.Type),
		IsLastQuestion: question.IsLast,
		TotalQuestions: question.TotalQuestions,
		QuestionID:     question.ID,
	})
}

func (h *Handler) meditationStart(c echo.Context) error {
	var req MeditationStartRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}
	if req.Duration <= 0 {
		req.Duration = 600
	}

	session := h.meditation.Start(c.Request().Context(), usecase.MeditationStartInput{
		Mood:       req.Mood,
		VoiceID:    req.VoiceID,
		Duration:   req.Duration,
		AllAnswers: req.AllAnswers,
	})

	return c.JSON(http.StatusOK, MeditationResponse{
		SessionID:       session.SessionID,
		AudioURL:        session.AudioURL,
		Script:          session.Script,
		Duration:        session.Duration,
		BackgroundMusic: "",
		Mood:            session.Mood,
		CreatedAt:       session.CreatedAt.Format(time.RFC3339),
		VoiceID:         session.VoiceID,
	})
}

func (h *Handler) meditationVoices(c echo.Context) error {
	voices := h.meditation.Voices(c.Request().Context())

	options := make([]VoiceOption, 0, len(voices))
	for _, v := range voices {
		options = append(options, VoiceOption{
			VoiceID:     v.ID,
			Name:        v.Name,
			Description: v.Description,
			Category:    v.Category,
		})
	}
	return c.JSON(http.StatusOK, options)
}

func (h *Handler) meditationComplete(c echo.Context) error {
	var req SessionCompleteRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}

	completion := h.meditation.Complete(c.Param("id"), req.Rating, req.Notes)

	return c.JSON(http.StatusOK, SessionCompleteResponse{
		Success: true,
		Message: "Session completed successfully",
		Data: map[string]any{
			"sessionId":   completion.SessionID,
			"completedAt": completion.CompletedAt.Format(time.RFC3339),
			"rating":      completion.Rating,
			"notes":       completion.Notes,
			"status":      completion.Status,
		},
	})
}
