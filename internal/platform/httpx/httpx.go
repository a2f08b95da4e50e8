package httpx

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"vet-clinic-records/internal/platform/apperr"
	"vet-clinic-records/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// writeJSON estaba duplicado en cada módulo; con cinco módulos ya conviene tenerlo acá.

// Envelope es la respuesta estándar de los endpoints de entidades.
type Envelope struct {
	OK      bool   `json:"ok"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Total   *int   `json:"total,omitempty"`
}

const internalErrorMessage = "Error interno del servidor"

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK escribe {ok:true, data, message}.
func OK(w http.ResponseWriter, status int, message string, data any) {
	WriteJSON(w, status, Envelope{OK: true, Data: data, Message: message})
}

// List escribe {ok:true, data, total}.
func List[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	n := len(items)
	WriteJSON(w, http.StatusOK, Envelope{OK: true, Data: items, Total: &n})
}

// Error traduce err a status + mensaje. Errores desconocidos se loguean y se
// responden como 500 genérico, sin detalle interno.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		WriteJSON(w, http.StatusBadRequest, Envelope{OK: false, Error: apperr.Message(err)})
	case errors.Is(err, apperr.ErrNotFound):
		WriteJSON(w, http.StatusNotFound, Envelope{OK: false, Error: apperr.Message(err)})
	default:
		if log != nil {
			log.Error("request failed", map[string]any{
				"request_id": chimw.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
				"err":        err,
			})
		}
		WriteJSON(w, http.StatusInternalServerError, Envelope{OK: false, Error: internalErrorMessage})
	}
}

// DecodeJSON decodifica el body; un body inválido es error de validación.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validation("JSON inválido")
	}
	return nil
}

// PositiveInt lee un query param numérico (se trunca a entero).
// Ausente, no numérico o < 1 => def. Valores enormes se acotan a MaxInt32.
func PositiveInt(r *http.Request, name string, def int) int {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		return def
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
