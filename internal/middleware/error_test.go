package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Every error response the API emits carries the same envelope: a code, the
// message, and an RFC3339 timestamp.
func TestProperty_ErrorsHaveConsistentStructure(t *testing.T) {
	properties := gopter.NewProperties(nil)

	statusCodes := []int{
		http.StatusBadRequest,
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusConflict,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable,
	}

	properties.Property("all error responses share the envelope", prop.ForAll(
		func(codeIdx int, message string) bool {
			if codeIdx < 0 {
				codeIdx = -codeIdx
			}
			statusCode := statusCodes[codeIdx%len(statusCodes)]
			if message == "" {
				message = "product not found"
			}

			w := httptest.NewRecorder()
			RespondWithError(w, statusCode, message)

			if w.Code != statusCode {
				return false
			}
			if w.Header().Get("Content-Type") != "application/json" {
				return false
			}

			var response ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
				return false
			}
			if response.Error.Code == "" || response.Error.Message != message {
				return false
			}
			if _, err := time.Parse(time.RFC3339, response.Error.Timestamp); err != nil {
				return false
			}
			return true
		},
		gen.Int(),
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestRespondWithErrorDetails(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithErrorDetails(w, http.StatusNotFound, "wilaya not found", map[string]interface{}{
		"wilaya": "أتلانتس",
	})

	var response ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}
	if response.Error.Details == nil {
		t.Fatal("expected details in the envelope")
	}
	if got := response.Error.Details["wilaya"]; got != "أتلانتس" {
		t.Errorf("expected the detail echoed back, got %v", got)
	}
	if response.Error.Code != http.StatusText(http.StatusNotFound) {
		t.Errorf("unexpected code %q", response.Error.Code)
	}
}

func TestRespondWithValidationErrors(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithValidationErrors(w, []ValidationError{
		{Field: "FullName", Message: "This field is required"},
		{Field: "Quantity", Message: "Value must be greater than or equal to 1"},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("validation failures are 400, got %d", w.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatal(err)
	}
	if response.Error.Message != "validation failed" {
		t.Errorf("unexpected message %q", response.Error.Message)
	}
	raw, ok := response.Error.Details["validation_errors"]
	if !ok {
		t.Fatal("expected validation_errors in details")
	}
	if entries, ok := raw.([]interface{}); !ok || len(entries) != 2 {
		t.Errorf("expected both field errors, got %v", raw)
	}
}

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		payload interface{}
	}{
		{"object", http.StatusOK, map[string]string{"status": "ok"}},
		{"created", http.StatusCreated, map[string]interface{}{"id": "abc", "count": float64(3)}},
		{"accepted ticket", http.StatusAccepted, map[string]string{"order_number": "4F7A2C9B1"}},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		RespondWithJSON(w, tt.code, tt.payload)

		if w.Code != tt.code {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.code, w.Code)
		}
		if w.Header().Get("Content-Type") != "application/json" {
			t.Errorf("%s: missing JSON content type", tt.name)
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Errorf("%s: body is not valid JSON: %v", tt.name, err)
		}
	}
}

func TestErrorHandlingMiddleware_RecoversPanics(t *testing.T) {
	logger := newTestLogger()
	handler := ErrorHandlingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("catalog exploded")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after a panic, got %d", w.Code)
	}
	var response ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("panic responses must still be the JSON envelope: %v", err)
	}
}
