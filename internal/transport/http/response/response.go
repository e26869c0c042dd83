package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/domain"
)

type ErrorBody struct {
	Detail    string            `json:"detail"`
	Code      string            `json:"code"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Fail(w http.ResponseWriter, status int, code, detail string, meta map[string]string, requestID string) {
	JSON(w, status, ErrorBody{
		Detail:    detail,
		Code:      code,
		Meta:      meta,
		RequestID: requestID,
	})
}

func Err(w http.ResponseWriter, r *http.Request, err error) {
	requestID := RequestIDFromRequest(r)

	if err == nil {
		Fail(w, http.StatusInternalServerError, "internal_error", "unknown error", nil, requestID)
		return
	}

	var ae *domain.AppError
	if errors.As(err, &ae) {
		if ae.Code == domain.CodeStoreFailure {
			// keep details in logs only
			zlog.Error().Err(err).Str("request_id", requestID).Msg("store failure")
			Fail(w, http.StatusInternalServerError, string(ae.Code), "internal error", nil, requestID)
			return
		}
		Fail(w, statusFromCode(ae.Code), string(ae.Code), ae.Message, ae.Meta, requestID)
		return
	}

	zlog.Error().Err(err).Str("request_id", requestID).Msg("unhandled error")
	Fail(w, http.StatusInternalServerError, "internal_error", "internal error", nil, requestID)
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusUnprocessableEntity
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
