package handlers

import (
	"net/http"
	"time"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

type promptDTO struct {
	ID                 string                    `json:"id"`
	OriginalPrompt     string                    `json:"originalPrompt"`
	EnhancedPrompt     string                    `json:"enhancedPrompt"`
	QuestionnaireData  domain.QuestionnaireData  `json:"questionnaireData"`
	EnhancementOptions domain.EnhancementOptions `json:"enhancementOptions"`
	CreatedAt          time.Time                 `json:"createdAt"`
}

// ListPrompts returns the user's most recent enhancement records, newest
// first.
func (a *App) ListPrompts(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	records, err := a.Enhance.ListPrompts(r.Context(), userID, a.HistoryLimit)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list prompts failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to fetch prompts")
		return
	}

	out := make([]promptDTO, 0, len(records))
	for _, p := range records {
		out = append(out, promptDTO{
			ID:                 p.ID,
			OriginalPrompt:     p.OriginalPrompt,
			EnhancedPrompt:     p.EnhancedPrompt,
			QuestionnaireData:  p.QuestionnaireData,
			EnhancementOptions: p.EnhancementOptions,
			CreatedAt:          p.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, out)
}
