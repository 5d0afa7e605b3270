package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/weeklycontents/backend/internal/domain"
)

// errorResponse is the JSON error envelope. The code is stable across
// releases; clients dispatch on it rather than the message.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []fieldDetail `json:"details,omitempty"`
}

type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// writeError maps a service error onto an HTTP status and a stable code.
// Validation failures carry the full per-field detail list.
func writeError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		details := make([]fieldDetail, 0, len(verr.Errors))
		for _, fe := range verr.Errors {
			details = append(details, fieldDetail{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "validation_error",
			Message: "request validation failed",
			Details: details,
		}})
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    "validation_error",
			Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: errorBody{
			Code:    "not_found",
			Message: "resource not found",
		}})
	case errors.Is(err, domain.ErrUnsupportedMedia):
		writeJSON(w, http.StatusUnsupportedMediaType, errorResponse{Error: errorBody{
			Code:    "unsupported_media",
			Message: "only png and jpeg uploads are accepted",
		}})
	case errors.Is(err, domain.ErrBroadcast):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: errorBody{
			Code:    "broadcast_error",
			Message: "broadcast delivery failed",
		}})
	default:
		logger.ErrorContext(ctx, "internal error", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: errorBody{
			Code:    "internal",
			Message: "internal server error",
		}})
	}
}
