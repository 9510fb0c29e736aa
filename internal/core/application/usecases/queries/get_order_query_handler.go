package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with full detail from the database.
// Item designs are stored as a jsonb document alongside the order row and
// decoded into the read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns errs.ErrObjectNotFound when no order exists with the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			tailor_id,
			courier_requested,
			shipping_address,
			status,
			due_date,
			items
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var tailorID *uuid.UUID
	var status int
	var dueDate time.Time
	var itemsRaw []byte

	err := row.Scan(
		&id,
		&customerID,
		&tailorID,
		&resp.CourierRequested,
		&resp.ShippingAddress,
		&status,
		&dueDate,
		&itemsRaw,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.ID = orderID

	ordererID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID = ordererID

	if tailorID != nil {
		assignedID, idErr := kernel.UUIDFromBytes((*tailorID)[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.TailorID = &assignedID
	}

	resp.Status = order.Status(status).String()
	resp.DueDate = dueDate

	if len(itemsRaw) > 0 {
		if err = json.Unmarshal(itemsRaw, &resp.Items); err != nil {
			return GetOrderQueryResponse{}, err
		}
	}

	return resp, nil
}
