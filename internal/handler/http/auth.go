package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/models"
)

// login exchanges {id, password} for a bearer token. The token string is the
// data of the success envelope.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	c, found := requestCtx(w, r)
	if !found {
		return
	}
	c.PushTrace(" -> login")

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Debug().Err(err).Msg("Invalid JSON was passed")
		fail(w, newError(KindInvalidInput, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		fail(w, newError(KindCredentialNotMatch, err))
		return
	}

	log.Debug().Int32("id", token.UserID).Msg("user successfully logged in")
	ok(w, token.SignedString)
}
