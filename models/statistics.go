package models

type KitchenStatistics struct {
	PendingOrders          int            `json:"pendingOrders"`
	InProgressOrders       int            `json:"inProgressOrders"`
	ReadyOrders            int            `json:"readyOrders"`
	CompletedOrders        int            `json:"completedOrders"`
	AveragePreparationTime float64        `json:"averagePreparationTime"`
	OrdersByMenuItem       map[string]int `json:"ordersByMenuItem"`
}

type SystemStatistics struct {
	TotalOrders         int                 `json:"totalOrders"`
	TotalRevenue        float64             `json:"totalRevenue"`
	TotalActiveUsers    int                 `json:"totalActiveUsers"`
	TotalTablesOccupied int                 `json:"totalTablesOccupied"`
	TotalOrdersToday    int                 `json:"totalOrdersToday"`
	TotalSalesToday     float64             `json:"totalSalesToday"`
	AverageOrderValue   float64             `json:"averageOrderValue"`
	OrdersByStatus      map[OrderStatus]int `json:"ordersByStatus"`
	PopularItems        map[string]int      `json:"popularItems"`
	SalesByCategory     map[string]float64  `json:"salesByCategory"`
}
