package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/user-directory/models"
)

// internalErrorEnvelope is written when an envelope cannot be marshaled, so
// the body stays an envelope even then.
var internalErrorEnvelope = []byte(`{"status":"error","code":500,"message":"Internal server error"}`)

// WriteEnvelope serializes envelope to JSON and writes it with
// envelope.Code as the HTTP status and "application/json" as Content-Type.
//
// If the payload cannot be marshaled (e.g. Data holds a channel), a 500
// error envelope is written instead and the marshaling error is returned.
//
// It returns the number of body bytes written.
func WriteEnvelope(w http.ResponseWriter, envelope models.Envelope) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(envelope)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(internalErrorEnvelope)
		return 0, fmt.Errorf("error writing envelope to JSON: %w", err)
	}

	w.WriteHeader(envelope.Code)
	return w.Write(jsonData)
}
