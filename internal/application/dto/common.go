package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/autogestion/internal/domain"
)

// ErrorResponse cuerpo de error HTTP (entrante del backend y saliente del panel).
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// envelope sobre {message?, data}. Data se guarda cruda para distinguir ausencia de valor vacío.
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// DecodeData decodifica el sobre {data: T}. Un cuerpo que no es JSON, o sin campo data,
// o con data null, es domain.ErrMalformedEnvelope.
func DecodeData[T any](raw []byte) (T, error) {
	var zero T
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("%w: %v", domain.ErrMalformedEnvelope, err)
	}
	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return zero, fmt.Errorf("%w: falta el campo data", domain.ErrMalformedEnvelope)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("%w: %v", domain.ErrMalformedEnvelope, err)
	}
	return out, nil
}

// DecodeMessage extrae {message} si existe; vacío en cualquier otro caso.
func DecodeMessage(raw []byte) string {
	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err != nil {
		return ""
	}
	return e.Message
}

// serverMessager errores que traen el {message} devuelto por el backend.
type serverMessager interface {
	ServerMessage() string
}

// MessageFrom mensaje del servidor contenido en err, o fallback si no hay uno.
func MessageFrom(err error, fallback string) string {
	var sm serverMessager
	if errors.As(err, &sm) && sm.ServerMessage() != "" {
		return sm.ServerMessage()
	}
	return fallback
}
