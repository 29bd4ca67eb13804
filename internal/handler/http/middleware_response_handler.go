// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/user-directory/internal/utils"
	"github.com/MKhiriev/user-directory/models"
)

// responseWriter is a decorator around [http.ResponseWriter] that holds the
// response back until the response mapper has seen it.
//
// Status and body are buffered instead of forwarded. A handler or guard that
// fails attaches an [*Error] with attachError; the mapper later replaces the
// body with the error envelope and writes everything to the wrapped writer.
type responseWriter struct {
	http.ResponseWriter

	// status is the HTTP status code recorded on the first WriteHeader call.
	// It is zero until WriteHeader (or an implicit WriteHeader via Write) is called.
	status int

	// wroteHeader reports whether WriteHeader has already been called.
	wroteHeader bool

	// body accumulates every Write call.
	body bytes.Buffer

	// err is the failure attached by a handler or guard, nil on success.
	err *Error
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w}
}

// WriteHeader records the status code once. Subsequent calls are ignored.
func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
}

// Write buffers b. An implicit 200 is recorded if WriteHeader was not called.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.body.Write(b)
}

// attachError records e as the outcome of the request and sets the
// placeholder status 500. The mapper overwrites both.
func (w *responseWriter) attachError(e *Error) {
	w.err = e
	w.WriteHeader(http.StatusInternalServerError)
}

// statusOrDefault returns the recorded status, 200 if none was written.
func (w *responseWriter) statusOrDefault() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// fail attaches e to w when w is the mapper's writer. Outside the pipeline
// (a handler mounted without the mapper) the envelope is written directly.
func fail(w http.ResponseWriter, e *Error) {
	if rw, ok := w.(*responseWriter); ok {
		rw.attachError(e)
		return
	}

	status, message := e.ToClient()
	_, _ = utils.WriteEnvelope(w, models.ErrorEnvelope(status, message))
}

// ok writes data wrapped into a success envelope.
func ok(w http.ResponseWriter, data any) {
	_, _ = utils.WriteEnvelope(w, models.SuccessEnvelope(data))
}
