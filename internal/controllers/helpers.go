package controllers

import (
	"errors"
	"io"
	"net/http"
	"respire/internal/models"
	"respire/internal/providers"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
)

const maxRequestBodySize = 1 << 20 // 1 MB

const (
	cacheKeyQuit     = "quit"
	cacheKeySettings = "settings"
	cacheKeyLogs     = "logs"
)

var errBadPayload = errors.New("bad request")

// decodePayload reads a size-limited JSON body and runs the struct's
// validate tags. An empty body decodes as the zero payload.
func decodePayload(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errBadPayload
	}
	v := validate.Struct(dst)
	if !v.Validate() {
		return errors.Join(models.ErrInvalidInput, errors.New(v.Errors.One()))
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	gson, err := json.Marshal(body)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps ledger errors onto status codes. Store failures are
// already logged by the services.
func writeError(w http.ResponseWriter, logger providers.Logger, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadPayload):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, models.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
