package workflow

import "github.com/selcanmusayeva/restaurant-ordering-frontend/models"

// Endpoint names the backend call that performs a transition.
type Endpoint int

const (
	// EndpointStatus is the generic PUT /orders/{id}/status?status=X.
	EndpointStatus Endpoint = iota
	// EndpointStartPreparation is PUT /kitchen/orders/{id}/preparation.
	EndpointStartPreparation
	// EndpointMarkReady is PUT /kitchen/orders/{id}/ready.
	EndpointMarkReady
	// EndpointMarkDelivered is PUT /waiter/orders/{id}/delivered.
	EndpointMarkDelivered
)

func (e Endpoint) String() string {
	switch e {
	case EndpointStartPreparation:
		return "start-preparation"
	case EndpointMarkReady:
		return "mark-ready"
	case EndpointMarkDelivered:
		return "mark-delivered"
	}
	return "status"
}

// EndpointFor picks the dedicated endpoint for the three happy-path edges and
// the generic status endpoint for everything else.
func EndpointFor(from, to models.OrderStatus) Endpoint {
	switch {
	case from == models.OrderStatusPending && to == models.OrderStatusInProgress:
		return EndpointStartPreparation
	case from == models.OrderStatusInProgress && to == models.OrderStatusReady:
		return EndpointMarkReady
	case from == models.OrderStatusReady && to == models.OrderStatusDelivered:
		return EndpointMarkDelivered
	}
	return EndpointStatus
}
