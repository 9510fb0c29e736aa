package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail of one order, including its item
// designs. Backs the order detail page and the order status tracker.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//	fmt.Printf("Order %s: %d items, %s\n", detail.ID, len(detail.Items), detail.Status)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse represents one order with full detail in the read model.
type GetOrderQueryResponse struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	TailorID         *kernel.UUID
	CourierRequested bool
	ShippingAddress  string
	Status           string
	DueDate          time.Time
	Items            []OrderItemResponse
}

// OrderItemResponse represents one garment within an order in the read model.
// The JSON tags match the jsonb encoding the order repository writes.
type OrderItemResponse struct {
	StyleID          string             `json:"style_id"`
	StyleName        string             `json:"style_name"`
	Notes            string             `json:"notes"`
	ReferenceImages  []string           `json:"reference_images"`
	Measurements     map[string]float64 `json:"measurements"`
	AssignedTailorID *string            `json:"assigned_tailor_id"`
	DueDate          *time.Time         `json:"due_date"`
}
