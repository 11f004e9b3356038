package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

type generateQuestionsRequest struct {
	OriginalPrompt string                    `json:"originalPrompt"`
	Options        domain.EnhancementOptions `json:"enhancementOptions"`
}

type generateQuestionsResponse struct {
	QuestionnaireID string            `json:"questionnaireId"`
	Questions       []domain.Question `json:"questions"`
}

// GenerateQuestions opens the workflow: it creates a pending questionnaire
// and returns clarifying questions for the submitted prompt. Free of quota
// checks; only the second phase consumes quota.
func (a *App) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req generateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	out, err := a.Enhance.GenerateQuestions(r.Context(), userID, req.OriginalPrompt, req.Options)
	if err != nil {
		a.logUsage(r, userID, "QUESTIONS_GENERATE", false, started, nil)
		a.workflowError(w, err)
		return
	}

	a.logUsage(r, userID, "QUESTIONS_GENERATE", true, started, map[string]any{
		"provider":  out.Provider,
		"questions": len(out.Questions),
	})
	a.json(w, http.StatusOK, generateQuestionsResponse{
		QuestionnaireID: out.QuestionnaireID,
		Questions:       out.Questions,
	})
}

type enhancePromptRequest struct {
	QuestionnaireID string                    `json:"questionnaireId"`
	Answers         []string                  `json:"answers"`
	Options         domain.EnhancementOptions `json:"enhancementOptions"`
}

type enhancePromptResponse struct {
	EnhancedPrompt string `json:"enhancedPrompt"`
	OriginalPrompt string `json:"originalPrompt"`
}

// EnhancePrompt closes the workflow: it consumes one quota unit, completes
// the questionnaire and returns the enhanced prompt.
func (a *App) EnhancePrompt(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}
	var req enhancePromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.QuestionnaireID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "questionnaireId is required")
		return
	}
	// A malformed id can never name a questionnaire; reject it before the
	// workflow consumes a quota unit looking for it.
	if _, err := uuid.Parse(req.QuestionnaireID); err != nil {
		a.error(w, http.StatusNotFound, "not_found", "questionnaire not found")
		return
	}

	out, err := a.Enhance.EnhancePrompt(r.Context(), userID, req.QuestionnaireID, req.Answers, req.Options)
	if err != nil {
		a.logUsage(r, userID, "PROMPT_ENHANCE", false, started, map[string]any{
			"questionnaire_id": req.QuestionnaireID,
		})
		a.workflowError(w, err)
		return
	}

	a.logUsage(r, userID, "PROMPT_ENHANCE", true, started, map[string]any{
		"questionnaire_id": req.QuestionnaireID,
		"provider":         out.Provider,
	})
	a.json(w, http.StatusOK, enhancePromptResponse{
		EnhancedPrompt: out.EnhancedPrompt,
		OriginalPrompt: out.OriginalPrompt,
	})
}
