package handler

import (
	"encoding/json"
	"net/http"
	"oft-transacts/common"
	"oft-transacts/model"
)

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me godoc
// @Summary      Current user profile
// @Description  Returns the username and email of the authenticated user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.UserProfile
// @Failure      401  {object}  common.AppError "Unauthorized: Invalid or missing token"
// @Router       /users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, ok := r.Context().Value(UserKey).(*model.User)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user in request context", nil)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(model.UserProfile{
		Username: user.Username,
		Email:    user.Email,
	})

	return nil
}
