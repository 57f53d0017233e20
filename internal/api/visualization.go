package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/serenoapp/server/usecase"
)

func (h *Handler) goalAnalysis(c echo.Context) error {
	var req GoalAnalysisRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}

	analysis := h.visualization.AnalyzeGoal(c.Request().Context(), usecase.GoalAnalysisInput{
		Goal:                  req.Goal,
		Category:              req.Category,
		Timeline:              req.Timeline,
		CurrentEmotionalState: req.CurrentEmotionalState,
		DesiredEmotionalState: req.DesiredEmotionalState,
	})

	return c.JSON(http.StatusOK, GoalAnalysisResponse{
		GoalComplexity:      analysis.GoalComplexity,
		PotentialChallenges: analysis.PotentialChallenges,
		RecommendedApproach: analysis.RecommendedApproach,
		SuccessFactors:      analysis.SuccessFactors,
		EstimatedTimeline:   analysis.EstimatedTimeline,
	})
}

func (h *Handler) visualizationQuestion(c echo.Context) error {
	var req VisualizationQuestionRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}
	if req.UserExperienceLevel == "" {
		req.UserExperienceLevel = "beginner"
	}

	result := h.visualization.NextQuestion(c.Request().Context(), usecase.VisualizationQuestionInput{
		Goal:                 req.Goal,
		GoalCategory:         req.GoalCategory,
		GoalComplexity:       req.GoalComplexity,
		PreviousAnswers:      req.PreviousAnswers,
		CurrentQuestionIndex: req.CurrentQuestionIndex,
		UserExperienceLevel:  req.UserExperienceLevel,
	})

	return c.JSON(http.StatusOK, DynamicQuestionResponse{
		NextQuestion:   result.Question.Text,
		QuestionType:   string(result.Question.Type),
		IsLastQuestion: result.Question.IsLast,
		TotalQuestions: result.Question.TotalQuestions,
		QuestionID:     result.Question.ID,
		Context:        result.Context,
	})
}

func (h *Handler) identifyChallenges(c echo.Context) error {
	var req ChallengeIdentificationRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}

	report := h.visualization.IdentifyChallenges(c.Request().Context(), usecase.ChallengeInput{
		Goal:         req.Goal,
		GoalCategory: req.GoalCategory,
		AllAnswers:   req.AllAnswers,
		UserProfile:  req.UserProfile,
	})

	return c.JSON(http.StatusOK, ChallengeResponse{
		PrimaryChallenges:   report.PrimaryChallenges,
		SecondaryChallenges: report.SecondaryChallenges,
		Solutions:           report.Solutions,
		Resources:           report.Resources,
		MindsetShifts:       report.MindsetShifts,
	})
}

func (h *Handler) visualizationStart(c echo.Context) error {
	var req VisualizationStartRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}
	if req.UserExperienceLevel == "" {
		req.UserExperienceLevel = "beginner"
	}
	if req.SessionType == "" {
		req.SessionType = "goal_achievement"
	}

	session := h.visualization.Start(c.Request().Context(), usecase.VisualizationStartInput{
		Goal:                 req.Goal,
		GoalCategory:         req.GoalCategory,
		GoalComplexity:       req.GoalComplexity,
		VoiceID:              req.VoiceID,
		AllAnswers:           req.AllAnswers,
		IdentifiedChallenges: req.IdentifiedChallenges,
		UserExperienceLevel:  req.UserExperienceLevel,
		SessionType:          req.SessionType,
	})

	var audioURL *string
	if session.AudioURL != "" {
		audioURL = &session.AudioURL
	}

	return c.JSON(http.StatusOK, VisualizationResponse{
		SessionID:    session.SessionID,
		Script:       session.Script,
		AudioURL:     audioURL,
		Goal:         session.Goal,
		GoalCategory: session.GoalCategory,
		Challenges:   session.Challenges,
		Solutions:    session.Solutions,
		ActionPlan:   session.ActionPlan,
		CreatedAt:    session.CreatedAt.Format(time.RFC3339),
		VoiceID:      session.VoiceID,
		SessionType:  session.SessionType,
	})
}

func (h *Handler) visualizationVoices(c echo.Context) error {
	voices := h.visualization.Voices(c.Request().Context())

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

func (h *Handler) visualizationComplete(c echo.Context) error {
	var req SessionCompleteRequest
	if err := c.Bind(&req); err != nil {
		return h.bindError(c, err)
	}

	completion := h.visualization.Complete(c.Param("id"), req.Rating, req.Notes, req.ClarityScore, req.ConfidenceScore)

	return c.JSON(http.StatusOK, SessionCompleteResponse{
		Success: true,
		Message: "Visualization session completed successfully",
		Data: map[string]any{
			"sessionId":       completion.SessionID,
			"completedAt":     completion.CompletedAt.Format(time.RFC3339),
			"rating":          completion.Rating,
			"notes":           completion.Notes,
			"clarityScore":    completion.ClarityScore,
			"confidenceScore": completion.ConfidenceScore,
			"status":          completion.Status,
		},
	})
}
