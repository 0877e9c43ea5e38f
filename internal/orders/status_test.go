package orders

import (
	"errors"
	"testing"

	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

func TestStatusForAction(t *testing.T) {
	tests := []struct {
		action string
		status string
	}{
		{"accept", models.OrderStatusAccepted},
		{"reject", models.OrderStatusRejected},
		{"fulfill", models.OrderStatusFulfilled},
		{"cancel", models.OrderStatusCancelled},
		{"ACCEPT", models.OrderStatusAccepted},
	}

	for _, tt := range tests {
		got, err := StatusForAction(tt.action)
		if err != nil {
			t.Errorf("StatusForAction(%q) returned error: %v", tt.action, err)
			continue
		}
		if got != tt.status {
			t.Errorf("StatusForAction(%q) = %q, want %q", tt.action, got, tt.status)
		}
	}
}

func TestStatusForAction_Unknown(t *testing.T) {
	if _, err := StatusForAction("ship"); !errors.Is(err, ErrInvalidAction) {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}
}

func TestValidateTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{models.OrderStatusPending, models.OrderStatusAccepted},
		{models.OrderStatusPending, models.OrderStatusRejected},
		{models.OrderStatusAccepted, models.OrderStatusFulfilled},
		{models.OrderStatusAccepted, models.OrderStatusCancelled},
	}
	for _, tt := range allowed {
		if err := ValidateTransition(tt.from, tt.to); err != nil {
			t.Errorf("expected %s -> %s to be allowed, got %v", tt.from, tt.to, err)
		}
	}

	denied := []struct{ from, to string }{
		{models.OrderStatusPending, models.OrderStatusFulfilled},
		{models.OrderStatusPending, models.OrderStatusCancelled},
		{models.OrderStatusRejected, models.OrderStatusAccepted},
		{models.OrderStatusFulfilled, models.OrderStatusCancelled},
		{models.OrderStatusCancelled, models.OrderStatusPending},
	}
	for _, tt := range denied {
		if err := ValidateTransition(tt.from, tt.to); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("expected %s -> %s to be denied, got %v", tt.from, tt.to, err)
		}
	}
}
