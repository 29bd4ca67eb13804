package models

const (
	// StatusSuccess is the envelope status of a handled request.
	StatusSuccess = "success"

	// StatusError is the envelope status of a failed request.
	StatusError = "error"
)

// Envelope is the uniform JSON body of every response.
//
// A success envelope carries Data, an error envelope carries Message;
// the other field is omitted from the wire.
type Envelope struct {
	// Status is either [StatusSuccess] or [StatusError].
	Status string `json:"status"`

	// Code mirrors the HTTP status code of the response.
	Code int `json:"code"`

	// Data is the payload of a success envelope.
	Data any `json:"data,omitempty"`

	// Message is the client-facing text of an error envelope.
	Message string `json:"message,omitempty"`
}

// SuccessEnvelope wraps data into a 200 success envelope.
func SuccessEnvelope(data any) Envelope {
	return Envelope{
		Status: StatusSuccess,
		Code:   200,
		Data:   data,
	}
}

// ErrorEnvelope builds an error envelope with the given code and message.
func ErrorEnvelope(code int, message string) Envelope {
	return Envelope{
		Status:  StatusError,
		Code:    code,
		Message: message,
	}
}
