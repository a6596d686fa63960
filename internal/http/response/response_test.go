package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"hireboard/internal/common"
)

type recordingCollector struct {
	mu    sync.Mutex
	codes []string
}

func (c *recordingCollector) IncErrorCode(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.codes = append(c.codes, code)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestErrorValidationIncludesFields(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, common.NewValidationError("invalid plan", map[string]string{"price": "price must be greater than or equal to 0"}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body.Error != "validation" || body.Message != "invalid plan" || body.Fields["price"] == "" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestErrorHidesInternalDetails(t *testing.T) {
	collector := &recordingCollector{}
	SetErrorCollector(collector)
	defer SetErrorCollector(nil)

	rec := httptest.NewRecorder()
	Error(rec, errors.New("pq: connection refused"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body.Message != "internal error" {
		t.Fatalf("expected generic message, got %q", body.Message)
	}
	if len(collector.codes) != 1 || collector.codes[0] != "internal" {
		t.Fatalf("expected one internal code, got %v", collector.codes)
	}
}

func TestStatusFor(t *testing.T) {
	cases := map[common.Code]int{
		common.CodeNotFound:     http.StatusNotFound,
		common.CodeConflict:     http.StatusConflict,
		common.CodeUnauthorized: http.StatusUnauthorized,
		common.CodeForbidden:    http.StatusForbidden,
		common.CodeRateLimited:  http.StatusTooManyRequests,
		common.Code("weird"):    http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := StatusFor(code); got != want {
			t.Fatalf("expected %d for %s, got %d", want, code, got)
		}
	}
}
