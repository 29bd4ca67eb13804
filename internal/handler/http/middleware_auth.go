package http

import (
	"net/http"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/reqctx"
	"github.com/MKhiriev/user-directory/internal/utils"
)

// resolveAuth creates the request Ctx and fills in the caller, if any.
//
// It never rejects a request. A missing or malformed "Authorization" header,
// a token that fails verification, a subject that is not an int32 and an
// unknown user all leave the Ctx anonymous. Guards mounted on the route
// decide what an anonymous caller may do.
func (h *Handler) resolveAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		c := reqctx.New()
		c.PushTrace("auth_resolver")

		if tokenString, found := utils.ParseBearerToken(r.Header.Get("Authorization")); found {
			token, err := h.services.AuthService.ParseToken(ctx, tokenString)
			if err != nil {
				log.Debug().Err(err).Msg("bearer token rejected")
			} else {
				user, err := h.services.UserService.GetUser(ctx, token.UserID)
				if err != nil {
					log.Debug().Err(err).Int32("user_id", token.UserID).Msg("token subject did not resolve to a user")
				} else {
					c.SetUser(&user)
				}
			}
		}

		next.ServeHTTP(w, r.WithContext(reqctx.WithCtx(ctx, c)))
	})
}
