// Package respond renders the {code, msg, data} envelope and decodes
// request bodies for every handler.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/estate/internal/apperr"
	"github.com/MrJamesThe3rd/estate/internal/validate"
)

// maxBody caps JSON request bodies.
const maxBody = 1 << 20

func write(w http.ResponseWriter, status int, env apperr.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// JSON writes a success envelope carrying data.
func JSON(w http.ResponseWriter, status int, data any) {
	write(w, status, apperr.OK(data))
}

// Error writes the failure envelope for err. Errors outside the taxonomy are
// logged here and reach the client as INTERNAL_SERVER_ERROR only.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	env := apperr.FromError(err)

	if env.Code == apperr.CodeInternal {
		slog.Error("request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
		)
	}

	write(w, env.Code.Status(), env)
}

// Decode reads a JSON body into dst and validates it. Unknown fields are
// rejected.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("request body is empty")
		}

		return apperr.Invalid(fmt.Sprintf("malformed request body: %v", err))
	}

	return validate.Struct(dst).Err()
}

// ID parses the named URL parameter as a uuid.
func ID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperr.Invalid(name + " must be a valid uuid")
	}

	return id, nil
}

// QueryID parses an optional uuid query parameter; nil when absent.
func QueryID(r *http.Request, name string) (*uuid.UUID, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return nil, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return nil, apperr.Invalid(name + " must be a valid uuid")
	}

	return &id, nil
}

// Recover turns a panic into an INTERNAL_SERVER_ERROR envelope.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			Error(w, r, fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}

// NotFound and MethodNotAllowed keep unmatched routes inside the envelope.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	write(w, http.StatusNotFound, apperr.FromError(apperr.ErrNotFound))
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	write(w, http.StatusMethodNotAllowed, apperr.Envelope{Code: apperr.CodeNotFound, Msg: "Method not allowed"})
}
