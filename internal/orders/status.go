// Package orders holds the order status workflow shared by handlers and
// seed tooling.
package orders

import (
	"errors"
	"strings"

	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

var (
	ErrInvalidAction     = errors.New("invalid order action")
	ErrInvalidTransition = errors.New("status transition not allowed")
)

// actionStatus maps a retailer action to its target status.
var actionStatus = map[string]string{
	"accept":  models.OrderStatusAccepted,
	"reject":  models.OrderStatusRejected,
	"fulfill": models.OrderStatusFulfilled,
	"cancel":  models.OrderStatusCancelled,
}

// allowedTransitions is the explicit status machine. Rejected, fulfilled and
// cancelled are terminal.
var allowedTransitions = map[string][]string{
	models.OrderStatusPending:   {models.OrderStatusAccepted, models.OrderStatusRejected},
	models.OrderStatusAccepted:  {models.OrderStatusFulfilled, models.OrderStatusCancelled},
	models.OrderStatusRejected:  {},
	models.OrderStatusFulfilled: {},
	models.OrderStatusCancelled: {},
}

// StatusForAction resolves an action name to its target status.
func StatusForAction(action string) (string, error) {
	target, ok := actionStatus[strings.ToLower(action)]
	if !ok {
		return "", ErrInvalidAction
	}
	return target, nil
}

// ValidateTransition reports whether an order may move from current to
// target status.
func ValidateTransition(current, target string) error {
	for _, allowed := range allowedTransitions[current] {
		if allowed == target {
			return nil
		}
	}
	return ErrInvalidTransition
}

// Actions lists the accepted action names, for error messages.
func Actions() []string {
	return []string{"accept", "reject", "fulfill", "cancel"}
}
