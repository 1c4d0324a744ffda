// Package httpjson concentra el encode/decode JSON y el sobre de errores
// que comparten los handlers de todos los módulos.
package httpjson

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// maxBodyBytes limita el body de entrada (1MB).
const maxBodyBytes = 1 << 20

var ErrInvalidJSON = errors.New("invalid json")

// ErrorBody es el sobre de error de toda la API.
type ErrorBody struct {
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

// MsgBody acompaña respuestas de create/delete.
type MsgBody struct {
	Msg    string `json:"msg"`
	Result any    `json:"result,omitempty"`
}

// ListBody envuelve listados.
type ListBody[T any] struct {
	Results []T `json:"results"`
}

// ItemBody envuelve un único recurso.
type ItemBody[T any] struct {
	Result T `json:"result"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	body := ErrorBody{Msg: msg}
	if err != nil {
		body.Error = err.Error()
	}
	WriteJSON(w, status, body)
}

func List[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	WriteJSON(w, http.StatusOK, ListBody[T]{Results: items})
}

func Item[T any](w http.ResponseWriter, item T) {
	WriteJSON(w, http.StatusOK, ItemBody[T]{Result: item})
}

func Created(w http.ResponseWriter, result any) {
	WriteJSON(w, http.StatusCreated, MsgBody{Msg: "created", Result: result})
}

// Decode lee un body JSON. Body vacío o malformado => ErrInvalidJSON.
func Decode(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

// IDParam parsea un path param entero positivo.
func IDParam(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}
