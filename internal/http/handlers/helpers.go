package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"hireboard/internal/common"
)

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return common.NewError(common.CodeValidation, "request body too large", err)
		}
		return common.NewError(common.CodeValidation, "invalid json body", err)
	}
	return nil
}

// readBody returns the raw body for handlers that validate arbitrary JSON themselves.
func readBody(r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, common.NewError(common.CodeValidation, "request body too large", err)
		}
		return nil, common.NewError(common.CodeValidation, "failed to read body", err)
	}
	return raw, nil
}

func idFromPath(r *http.Request, name string) (common.UUID, error) {
	value := strings.TrimSpace(r.PathValue(name))
	parsed, err := common.ParseUUID(value)
	if err != nil {
		return "", common.NewValidationError("invalid "+name, map[string]string{name: "invalid uuid"})
	}
	return parsed, nil
}

func intQuery(r *http.Request, name string, fallback int) int {
	if value := r.URL.Query().Get(name); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "unauthorized", nil)
}
