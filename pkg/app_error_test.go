package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
		if e.Error() != "BUDGET_NOT_FOUND: Budget not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "BUDGET_NOT_FOUND" || body.Message != "Budget not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
		if e.Error() != "INTERNAL_ERROR: An internal error occurred: db" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
	})
}
