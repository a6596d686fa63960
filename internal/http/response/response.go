package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"hireboard/internal/common"
)

type ErrorCollector interface {
	IncErrorCode(code string)
}

var errorCollector ErrorCollector

// SetErrorCollector registers the sink counting error codes written by Error.
func SetErrorCollector(collector ErrorCollector) {
	errorCollector = collector
}

type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Error(w http.ResponseWriter, err error) {
	code := common.CodeOf(err)
	body := errorBody{Error: string(code), Message: "internal error"}
	var appErr *common.Error
	if errors.As(err, &appErr) && code != common.CodeInternal {
		body.Message = appErr.Message
		body.Fields = appErr.Fields
	}
	if errorCollector != nil {
		errorCollector.IncErrorCode(string(code))
	}
	JSON(w, StatusFor(code), body)
}

func StatusFor(code common.Code) int {
	switch code {
	case common.CodeValidation:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
