package constant

type WarehouseStatus int

const (
	WarehouseStatusInactive WarehouseStatus = 0
	WarehouseStatusActive   WarehouseStatus = 1
)

type OrderStatus int

const (
	OrderStatusPending   OrderStatus = 1
	OrderStatusCompleted OrderStatus = 2
	OrderStatusCanceled  OrderStatus = 3
)
