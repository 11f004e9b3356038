package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

type userDTO struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName,omitempty"`
	LastName         string    `json:"lastName,omitempty"`
	ProfileImageURL  string    `json:"profileImageUrl,omitempty"`
	CurrentPlan      string    `json:"currentPlan"`
	PromptsUsed      int       `json:"promptsUsed"`
	PromptsLimit     int       `json:"promptsLimit"`
	PromptsRemaining int       `json:"promptsRemaining"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AuthUser returns the authenticated user's profile and quota standing.
func (a *App) AuthUser(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	user, err := a.Users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "user not found")
			return
		}
		a.Logger.Error().Err(err).Msg("fetch user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to fetch user")
		return
	}

	a.json(w, http.StatusOK, userDTO{
		ID:               user.ID,
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		ProfileImageURL:  user.ProfileImageURL,
		CurrentPlan:      string(user.CurrentPlan),
		PromptsUsed:      user.PromptsUsed,
		PromptsLimit:     user.PromptsLimit,
		PromptsRemaining: user.PromptsRemaining(),
		CreatedAt:        user.CreatedAt,
		UpdatedAt:        user.UpdatedAt,
	})
}
