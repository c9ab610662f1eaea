package auth

import (
	"log"
	"net/http"

	"sanchaari/middleware"
	"sanchaari/mq"
	"sanchaari/rdx"
	"sanchaari/utils"
)

// logoutUserHandler drops the cached token so the session can't be reused.
// Runs behind middleware.Authenticate.
func logoutUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := middleware.RequestUserID(r)

	if _, err := rdx.RdxHdel(tokenHash, userID); err != nil {
		log.Printf("Error removing token from Redis: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	mq.Emit(r.Context(), "user-loggedout", "", userID)
	utils.JSON(w, http.StatusOK, utils.M{"message": "Logged out"})
}
