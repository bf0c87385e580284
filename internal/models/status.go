package models

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusOnTheWay  OrderStatus = "on-the-way"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusOnTheWay, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// transitions describes the delivery lifecycle. delivered and cancelled
// are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:  {StatusOnTheWay, StatusCancelled},
	StatusOnTheWay: {StatusDelivered, StatusCancelled},
}

// CanTransition reports whether an order may move from one status to
// another. The store does not call this on its own; callers opt in via
// the update validation hook.
func CanTransition(from, to OrderStatus) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
