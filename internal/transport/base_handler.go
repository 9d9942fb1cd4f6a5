package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/staffdesk/staff-management/internal"
	"github.com/staffdesk/staff-management/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.L()
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteNoContent writes an empty 204 response
func (h *BaseHandler) WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError writes a typed error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, code internal.ErrorCode, message string) {
	h.Logger.Error("http error", "status", status, "code", code, "message", message)
	h.WriteJSON(w, status, internal.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// HandleServiceError maps service-layer errors onto the HTTP error
// contract: not-found responses carry no body, validation and conflict
// responses carry the typed payload, anything unrecognized is a 500.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		if appErr.Type == internal.ErrorTypeNotFound {
			w.WriteHeader(appErr.StatusCode)
			return
		}
		status, body := appErr.ToHTTPResponse()
		h.WriteJSON(w, status, body)
		return
	}

	h.Logger.Error("unhandled service error", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}
