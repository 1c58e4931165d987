package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/passgen"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxGeneratedLength = 128

type createCredentialRequest struct {
	AppName  string `json:"appName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateCredentialRequest struct {
	AppName  string `json:"appName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// ListCredentials returns all records of the authenticated user with
// decrypted secrets.
func (s *Server) ListCredentials(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	items, err := s.credentials.List(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "list error", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if items == nil {
		items = []*models.Credential{}
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateCredential stores a new record. The response echoes the plaintext
// password the caller sent.
func (s *Server) CreateCredential(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req createCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	if req.AppName == "" || req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	cred, err := s.credentials.Create(r.Context(), userID, req.AppName, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			writeError(w, http.StatusBadRequest, msgMissingFields)
			return
		}
		s.logger.Error(r.Context(), "create error", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, cred)
}

// UpdateCredential applies a partial update to one record of the
// authenticated user. Empty strings count as absent, like the original UI.
func (s *Server) UpdateCredential(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	var req updateCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	upd := &models.CredentialUpdate{}
	if req.AppName != "" {
		upd.AppName = &req.AppName
	}
	if req.Username != "" {
		upd.Username = &req.Username
	}
	if req.Password != "" {
		upd.Secret = &req.Password
	}

	if err := s.credentials.Update(r.Context(), id, userID, upd); err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			writeError(w, http.StatusBadRequest, msgNoFields)
		case errors.Is(err, common.ErrNotFound):
			writeError(w, http.StatusNotFound, msgNotFound)
		default:
			s.logger.Error(r.Context(), "update error", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternal)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": msgUpdated})
}

// DeleteCredential removes one record of the authenticated user.
func (s *Server) DeleteCredential(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusNotFound, msgNotFound)
		return
	}

	if err := s.credentials.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			writeError(w, http.StatusNotFound, msgNotFound)
			return
		}
		s.logger.Error(r.Context(), "delete error", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": msgDeleted})
}

// GeneratePassword returns a random password. Query parameters: length,
// lowercase, uppercase, digits, symbols; omitted options keep the UI
// defaults.
func (s *Server) GeneratePassword(w http.ResponseWriter, r *http.Request) {
	opts := passgen.DefaultOptions()
	q := r.URL.Query()

	if v := q.Get("length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxGeneratedLength {
			writeError(w, http.StatusBadRequest, "Invalid length")
			return
		}
		opts.Length = n
	}

	boolParam := func(name string, dst *bool) bool {
		v := q.Get(name)
		if v == "" {
			return true
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid value for "+name)
			return false
		}
		*dst = b
		return true
	}

	if !boolParam("lowercase", &opts.Lowercase) ||
		!boolParam("uppercase", &opts.Uppercase) ||
		!boolParam("digits", &opts.Digits) ||
		!boolParam("symbols", &opts.Symbols) {
		return
	}

	password, err := passgen.Generate(opts)
	if err != nil {
		if errors.Is(err, passgen.ErrEmptyCharset) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error(r.Context(), "generate error", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"password": password})
}
