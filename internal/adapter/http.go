package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/user-directory/internal/config"
	"github.com/MKhiriev/user-directory/internal/logger"
	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The base URL comes from cfg.HTTPAddress ("http://" is assumed when no
// scheme is given) and cfg.Token, if set, is used as the initial token.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login POSTs the credentials to /auth/login. The envelope data is the
// signed token, which is stored for later calls.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}

	token, err := decodeEnvelope[string](resp)
	if err != nil {
		return "", err
	}

	h.SetToken(token)
	h.logger.Debug().Int32("user_id", credentials.ID).Msg("logged in")
	return token, nil
}

func (h *httpServerAdapter) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}

	return decodeEnvelope[[]models.User](resp)
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id int32) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", formatID(id)).
		Get("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}

	return decodeEnvelope[models.User](resp)
}

func (h *httpServerAdapter) CreateUser(ctx context.Context, user models.UserForCreate) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(user).
		Post("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}

	return decodeEnvelope[models.User](resp)
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, id int32, user models.UserForCreate) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", formatID(id)).
		SetBody(user).
		Put("/users/{id}")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}

	return decodeEnvelope[models.User](resp)
}

// DeleteUser sends DELETE /users with the id in the JSON body.
func (h *httpServerAdapter) DeleteUser(ctx context.Context, id int32) error {
	resp, err := h.authedRequest(ctx).
		SetBody(models.DeleteRequest{ID: id}).
		Delete("/users")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	_, err = decodeEnvelope[struct{}](resp)
	return err
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func formatID(id int32) string {
	return strconv.FormatInt(int64(id), 10)
}
