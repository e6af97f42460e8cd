package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestRetrievalError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &RetrievalError{Endpoint: "/studies", StatusCode: 503, Message: "service unavailable"}
		msg := err.Error()
		if !strings.Contains(msg, "/studies") || !strings.Contains(msg, "503") {
			t.Errorf("Error() = %q", msg)
		}
	})

	t.Run("transport failure", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &RetrievalError{Endpoint: "/studies", Message: cause.Error(), Err: cause}
		if !strings.Contains(err.Error(), "failed") {
			t.Errorf("Error() = %q", err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("RetrievalError should unwrap to its cause")
		}
	})
}

func TestNotFoundError(t *testing.T) {
	err := &NotFoundError{NCTID: "NCT01234567"}
	if !strings.Contains(err.Error(), "NCT01234567") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestValidationErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want []string
	}{
		{
			name: "field and value",
			err:  NewValidationError("nct_id", "bogus", "expected format NCT followed by 8 digits"),
			want: []string{"nct_id", "bogus", "expected format"},
		},
		{
			name: "field only",
			err:  NewValidationError("max_studies", "", "cannot be negative"),
			want: []string{"max_studies", "cannot be negative"},
		},
		{
			name: "message only",
			err:  NewValidationError("", "", "at least one search filter is required"),
			want: []string{"at least one search filter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, fragment := range tt.want {
				if !strings.Contains(msg, fragment) {
					t.Errorf("Error() = %q, missing %q", msg, fragment)
				}
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	retrieval := &RetrievalError{Endpoint: "/studies", Message: "boom"}
	notFound := &NotFoundError{NCTID: "NCT00000001"}
	validation := NewValidationError("nct_id", "x", "bad")

	if !IsRetrieval(retrieval) || IsRetrieval(notFound) || IsRetrieval(nil) {
		t.Error("IsRetrieval misclassified")
	}
	if !IsNotFound(notFound) || IsNotFound(validation) {
		t.Error("IsNotFound misclassified")
	}
	if !IsValidation(validation) || IsValidation(retrieval) {
		t.Error("IsValidation misclassified")
	}

	// Predicates see through wrapping.
	wrapped := fmt.Errorf("search_trials_by_condition failed: %w", retrieval)
	if !IsRetrieval(wrapped) {
		t.Error("IsRetrieval should unwrap")
	}
}
