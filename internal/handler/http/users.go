package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/reqctx"
	"github.com/MKhiriev/user-directory/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	c, found := requestCtx(w, r)
	if !found {
		return
	}
	c.PushTrace(" -> get_all_users")

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		fail(w, newError(KindDatabaseError, err))
		return
	}

	ok(w, users)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	c, found := requestCtx(w, r)
	if !found {
		return
	}
	c.PushTrace(" -> get_user_by_id")

	id, err := pathID(r)
	if err != nil {
		fail(w, newError(KindInvalidInput, err))
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), id)
	if err != nil {
		fail(w, errorFromService(err))
		return
	}

	ok(w, user)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	c, found := requestCtx(w, r)
	if !found {
		return
	}
	c.PushTrace(" -> create_user")

	var payload models.UserForCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Debug().Err(err).Msg("Invalid JSON was passed")
		fail(w, newError(KindInvalidInput, err))
		return
	}

	user, err := h.services.UserService.CreateUser(r.Context(), payload)
	if err != nil {
		fail(w, errorFromService(err))
		return
	}

	ok(w, user)
}

// updateUser lets admins update anyone and other callers only themselves.
// The id in the body is replaced with the path id.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	c, found := requestCtx(w, r)
	if !found {
		return
	}
	c.PushTrace(" -> update_user")

	id, err := pathID(r)
	if err != nil {
		fail(w, newError(KindInvalidInput, err))
		return
	}

	caller := c.User()
	if caller == nil {
		fail(w, newError(KindUnauthorized, nil))
		return
	}
	if caller.Role != models.RoleAdmin && caller.ID != id {
		fail(w, newError(KindUnauthorized, fmt.Errorf("user %d may not update user %d", caller.ID, id)))
		return
	}

	var payload models.UserForCreate
	if err = json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Debug().Err(err).Msg("Invalid JSON was passed")
		fail(w, newError(KindInvalidInput, err))
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), id, payload)
	if err != nil {
		fail(w, errorFromService(err))
		return
	}

	ok(w, user)
}

// deleteUser takes the id from the path when mounted on /users/{id} and from
// the {"id": N} body when mounted on /users.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	c, found := requestCtx(w, r)
	if !found {
		return
	}
	c.PushTrace(" -> delete_user")

	var request models.DeleteRequest
	if chi.URLParam(r, "id") != "" {
		id, err := pathID(r)
		if err != nil {
			fail(w, newError(KindInvalidInput, err))
			return
		}
		request.ID = id
	} else if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("Invalid JSON was passed")
		fail(w, newError(KindInvalidInput, err))
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), request.ID); err != nil {
		fail(w, errorFromService(err))
		return
	}

	ok(w, struct{}{})
}

// requestCtx returns the Ctx installed by resolveAuth. A missing Ctx is a
// wiring bug; the request then fails with an internal error.
func requestCtx(w http.ResponseWriter, r *http.Request) (*reqctx.Ctx, bool) {
	c, err := reqctx.FromRequest(r)
	if err != nil {
		fail(w, newError(KindInternal, err))
		return nil, false
	}
	return c, true
}

func pathID(r *http.Request) (int32, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid user id %q: %w", raw, err)
	}
	return int32(id), nil
}
