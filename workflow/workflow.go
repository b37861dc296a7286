// Package workflow is the order state machine: which role may move an order
// between which statuses, and which backend endpoint performs each move.
package workflow

import (
	"errors"
	"fmt"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
)

var ErrTransitionNotAllowed = errors.New("transition not allowed")

type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Action is a transition offered to the user.
type Action struct {
	Target models.OrderStatus `json:"target"`
	Label  string             `json:"label"`
}

// Managers are not listed: they may move any status to any other.
var rolePermissions = map[models.UserRole][]Transition{
	models.RoleChef: {
		{From: models.OrderStatusPending, To: models.OrderStatusInProgress},
		{From: models.OrderStatusInProgress, To: models.OrderStatusReady},
	},
	models.RoleWaiter: {
		{From: models.OrderStatusReady, To: models.OrderStatusDelivered},
		{From: models.OrderStatusPending, To: models.OrderStatusCancelled},
		{From: models.OrderStatusInProgress, To: models.OrderStatusCancelled},
	},
}

var actionLabels = map[models.OrderStatus]string{
	models.OrderStatusPending:    "Reset to Pending",
	models.OrderStatusInProgress: "Start Preparing",
	models.OrderStatusReady:      "Mark as Ready",
	models.OrderStatusDelivered:  "Mark as Delivered",
	models.OrderStatusCompleted:  "Mark as Completed",
	models.OrderStatusCancelled:  "Cancel Order",
}

func Label(target models.OrderStatus) string {
	if l, ok := actionLabels[target]; ok {
		return l
	}
	return string(target)
}

var statusLabels = map[models.OrderStatus]string{
	models.OrderStatusPending:    "Pending",
	models.OrderStatusInProgress: "In Progress",
	models.OrderStatusReady:      "Ready",
	models.OrderStatusDelivered:  "Delivered",
	models.OrderStatusCompleted:  "Completed",
	models.OrderStatusCancelled:  "Cancelled",
}

// StatusLabel is the display name of a status.
func StatusLabel(s models.OrderStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func IsTerminal(s models.OrderStatus) bool {
	switch s {
	case models.OrderStatusDelivered, models.OrderStatusCompleted, models.OrderStatusCancelled:
		return true
	}
	return false
}

// IsFinished groups COMPLETED with DELIVERED.
func IsFinished(s models.OrderStatus) bool {
	return s == models.OrderStatusDelivered || s == models.OrderStatusCompleted
}

func CanTransition(role models.UserRole, from, to models.OrderStatus) bool {
	if from == to || !from.Valid() || !to.Valid() {
		return false
	}
	if role == models.RoleManager {
		return true
	}
	for _, t := range rolePermissions[role] {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

func Validate(role models.UserRole, from, to models.OrderStatus) error {
	if !CanTransition(role, from, to) {
		return fmt.Errorf("%w: %s cannot move an order from %s to %s", ErrTransitionNotAllowed, role, from, to)
	}
	return nil
}

// AvailableActions lists the transitions role may apply to order, in status order.
func AvailableActions(order models.Order, role models.UserRole) []Action {
	actions := []Action{}
	for _, target := range models.OrderStatuses {
		if CanTransition(role, order.Status, target) {
			actions = append(actions, Action{Target: target, Label: Label(target)})
		}
	}
	return actions
}
