package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/services"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, msgMissingFields)
		return
	}
	if len(req.Password) < services.MinPasswordLength {
		writeError(w, http.StatusBadRequest, msgShortPassword)
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyExists):
			writeError(w, http.StatusBadRequest, msgUserExists)
		case errors.Is(err, common.ErrValidation):
			writeError(w, http.StatusBadRequest, msgMissingFields)
		default:
			s.logger.Error(r.Context(), "registration error", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	s.logger.Info(r.Context(), "user registered", "userId", user.ID)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": msgUserCreated,
		"userId":  user.ID,
	})
}

// Login verifies credentials and establishes a session. The token is set as
// an HttpOnly cookie and also returned in the body for non-browser clients.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, msgLoginFailed)
			return
		}
		s.logger.Error(r.Context(), "login error", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.sessionValidity.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{
		"message": msgLoginSuccessful,
		"token":   token,
	})
}

// Logout clears the session cookie.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, map[string]string{"message": msgLoggedOut})
}
