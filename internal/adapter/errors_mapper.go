package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/user-directory/internal/app"
	"github.com/MKhiriev/user-directory/models"
	"github.com/go-resty/resty/v2"
)

// sentinelByMessage maps the server's client-facing messages to sentinels.
var sentinelByMessage = map[string]error{
	app.MsgUnauthorized:        ErrUnauthorized,
	app.MsgCredentialNotMatch:  ErrCredentialNotMatch,
	app.MsgNotFound:            ErrNotFound,
	app.MsgIDAlreadyExist:      ErrIDAlreadyExists,
	app.MsgInvalidInput:        ErrInvalidInput,
	app.MsgInternalServerError: ErrInternalServerError,
}

// sentinelByStatus is the fallback for responses without an envelope.
var sentinelByStatus = map[int]error{
	http.StatusBadRequest:          ErrInvalidInput,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusNotFound:            ErrNotFound,
	http.StatusInternalServerError: ErrInternalServerError,
}

// decodeEnvelope unpacks a response body into its data payload. Error
// envelopes and non-2xx statuses become an *APIError.
func decodeEnvelope[T any](resp *resty.Response) (T, error) {
	var envelope struct {
		Status  string `json:"status"`
		Code    int    `json:"code"`
		Data    T      `json:"data"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(resp.Body(), &envelope); err != nil || envelope.Status == "" {
		var zero T
		if resp.IsSuccess() {
			return zero, fmt.Errorf("%w: %d %s", ErrUnexpectedResponse, resp.StatusCode(), strings.TrimSpace(resp.String()))
		}
		return zero, mapHTTPError(resp.StatusCode(), strings.TrimSpace(resp.String()))
	}

	if envelope.Status != models.StatusSuccess {
		var zero T
		return zero, mapAPIError(envelope.Code, envelope.Message)
	}

	return envelope.Data, nil
}

func mapAPIError(code int, message string) error {
	return &APIError{Code: code, Message: message, kind: sentinelByMessage[message]}
}

func mapHTTPError(status int, body string) error {
	if body == "" {
		body = http.StatusText(status)
	}
	return &APIError{Code: status, Message: body, kind: sentinelByStatus[status]}
}
