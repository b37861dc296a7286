package workflow_test

import (
	"testing"

	"github.com/selcanmusayeva/restaurant-ordering-frontend/models"
	"github.com/selcanmusayeva/restaurant-ordering-frontend/workflow"
	"github.com/stretchr/testify/assert"
)

func targets(actions []workflow.Action) []models.OrderStatus {
	out := []models.OrderStatus{}
	for _, a := range actions {
		out = append(out, a.Target)
	}
	return out
}

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		name   string
		role   models.UserRole
		status models.OrderStatus
		want   []models.OrderStatus
	}{
		{"chef pending", models.RoleChef, models.OrderStatusPending, []models.OrderStatus{models.OrderStatusInProgress}},
		{"chef in progress", models.RoleChef, models.OrderStatusInProgress, []models.OrderStatus{models.OrderStatusReady}},
		{"chef ready", models.RoleChef, models.OrderStatusReady, []models.OrderStatus{}},
		{"waiter pending", models.RoleWaiter, models.OrderStatusPending, []models.OrderStatus{models.OrderStatusCancelled}},
		{"waiter in progress", models.RoleWaiter, models.OrderStatusInProgress, []models.OrderStatus{models.OrderStatusCancelled}},
		{"waiter ready", models.RoleWaiter, models.OrderStatusReady, []models.OrderStatus{models.OrderStatusDelivered}},
		{"waiter delivered", models.RoleWaiter, models.OrderStatusDelivered, []models.OrderStatus{}},
		{"customer pending", models.RoleCustomer, models.OrderStatusPending, []models.OrderStatus{}},
		{"manager delivered", models.RoleManager, models.OrderStatusDelivered, []models.OrderStatus{
			models.OrderStatusPending,
			models.OrderStatusInProgress,
			models.OrderStatusReady,
			models.OrderStatusCompleted,
			models.OrderStatusCancelled,
		}},
		{"unknown role", models.UserRole("GUEST"), models.OrderStatusPending, []models.OrderStatus{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := workflow.AvailableActions(models.Order{ID: 1, Status: tt.status}, tt.role)
			assert.Equal(t, tt.want, targets(got))
		})
	}
}

func TestNonManagerGetsNothingOnTerminalStatuses(t *testing.T) {
	for _, role := range []models.UserRole{models.RoleChef, models.RoleWaiter, models.RoleCustomer} {
		for _, s := range models.OrderStatuses {
			if workflow.IsTerminal(s) {
				assert.Empty(t, workflow.AvailableActions(models.Order{Status: s}, role), "%s on %s", role, s)
			}
		}
	}
}

func TestManagerSeesEveryOtherStatus(t *testing.T) {
	for _, s := range models.OrderStatuses {
		got := targets(workflow.AvailableActions(models.Order{Status: s}, models.RoleManager))
		assert.Len(t, got, len(models.OrderStatuses)-1)
		assert.NotContains(t, got, s)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, workflow.Validate(models.RoleChef, models.OrderStatusPending, models.OrderStatusInProgress))

	err := workflow.Validate(models.RoleChef, models.OrderStatusReady, models.OrderStatusDelivered)
	assert.ErrorIs(t, err, workflow.ErrTransitionNotAllowed)

	assert.ErrorIs(t, workflow.Validate(models.RoleManager, models.OrderStatusReady, models.OrderStatusReady), workflow.ErrTransitionNotAllowed)
	assert.ErrorIs(t, workflow.Validate(models.RoleManager, models.OrderStatusReady, "CONFIRMED"), workflow.ErrTransitionNotAllowed)
}

func TestActionsAgreeWithCanTransition(t *testing.T) {
	roles := []models.UserRole{models.RoleChef, models.RoleWaiter, models.RoleManager, models.RoleCustomer}
	for _, role := range roles {
		for _, from := range models.OrderStatuses {
			offered := targets(workflow.AvailableActions(models.Order{Status: from}, role))
			for _, to := range models.OrderStatuses {
				assert.Equal(t, workflow.CanTransition(role, from, to), contains(offered, to), "%s %s->%s", role, from, to)
			}
		}
	}
}

func contains(list []models.OrderStatus, s models.OrderStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestEndpointFor(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		want     workflow.Endpoint
	}{
		{models.OrderStatusPending, models.OrderStatusInProgress, workflow.EndpointStartPreparation},
		{models.OrderStatusInProgress, models.OrderStatusReady, workflow.EndpointMarkReady},
		{models.OrderStatusReady, models.OrderStatusDelivered, workflow.EndpointMarkDelivered},
		{models.OrderStatusPending, models.OrderStatusCancelled, workflow.EndpointStatus},
		{models.OrderStatusDelivered, models.OrderStatusPending, workflow.EndpointStatus},
		{models.OrderStatusDelivered, models.OrderStatusCompleted, workflow.EndpointStatus},
		{models.OrderStatusPending, models.OrderStatusReady, workflow.EndpointStatus},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, workflow.EndpointFor(tt.from, tt.to), "%s->%s", tt.from, tt.to)
	}
}

func TestFilters(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Status: models.OrderStatusPending},
		{ID: 2, Status: models.OrderStatusInProgress},
		{ID: 3, Status: models.OrderStatusReady},
		{ID: 4, Status: models.OrderStatusDelivered},
		{ID: 5, Status: models.OrderStatusCompleted},
		{ID: 6, Status: models.OrderStatusCancelled},
	}

	ids := func(list []models.Order) []uint {
		out := []uint{}
		for _, o := range list {
			out = append(out, o.ID)
		}
		return out
	}

	assert.Equal(t, []uint{1, 2, 3}, ids(workflow.FilterActive(orders)))
	assert.Equal(t, []uint{4, 5, 6}, ids(workflow.FilterCompleted(orders)))
	assert.Equal(t, []uint{1, 2}, ids(workflow.FilterForRole(orders, models.RoleChef)))
	assert.Equal(t, []uint{1, 2, 3}, ids(workflow.FilterForRole(orders, models.RoleWaiter)))
	assert.Len(t, workflow.FilterForRole(orders, models.RoleManager), 6)

	assert.True(t, workflow.IsFinished(models.OrderStatusCompleted))
	assert.True(t, workflow.IsFinished(models.OrderStatusDelivered))
	assert.False(t, workflow.IsFinished(models.OrderStatusCancelled))
}

func TestParseListFilter(t *testing.T) {
	f, err := workflow.ParseListFilter("")
	assert.NoError(t, err)
	assert.Equal(t, workflow.ListAll, f)

	f, err = workflow.ParseListFilter("inProgress")
	assert.NoError(t, err)
	assert.Equal(t, workflow.ListInProgress, f)

	_, err = workflow.ParseListFilter("everything")
	assert.ErrorIs(t, err, workflow.ErrUnknownFilter)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "In Progress", workflow.StatusLabel(models.OrderStatusInProgress))
	assert.Equal(t, "CONFIRMED", workflow.StatusLabel("CONFIRMED"))
}
