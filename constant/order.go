package constant

type OrderStatus int

const (
	OrderStatusPendingDelivery OrderStatus = 0
	OrderStatusCompleted       OrderStatus = 1
	OrderStatusCancelled       OrderStatus = 2
)
