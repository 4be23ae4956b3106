package handler

import (
	"net/http"
)

// Logout godoc
// @Summary      Log out
// @Description  There is no server-side session; the response headers tell the browser to clear local state.
// @Tags         auth
// @Success      204
// @Router       /logout [post]
func Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Clear-Site-Data", `"cache", "cookies", "storage", "executionContexts"`)
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.WriteHeader(http.StatusNoContent)
}
