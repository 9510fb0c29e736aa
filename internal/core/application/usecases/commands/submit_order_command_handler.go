package commands

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/order"
)

// orderLeadTimeDays is the production lead time granted to new orders.
const orderLeadTimeDays = 14

// SubmitOrderCommandHandler handles the business logic for order submission.
// Verifies the ordering customer exists, then either creates a new order in
// awaiting-assignment status or amends the originating order when the
// submission comes from an edit session.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	cmd, _ := NewSubmitOrderCommand(orderID, customerID, true, items, "5 Glover Rd, Ikoyi", nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	// Order is now awaiting tailor assignment
type SubmitOrderCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
// Requires an IntakeUoWFactory for transactional persistence across the
// customer and order repositories.
func NewSubmitOrderCommandHandler(uowFactory IntakeUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command.
// New orders receive a server-assigned due date based on the standard
// production lead time. Amended orders keep their original due date and
// status; only courier preference, items, and shipping address change.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	if originatingOrderID := cmd.OriginatingOrderID(); originatingOrderID != nil {
		aggregate, err := orderRepo.Get(ctx, *originatingOrderID)
		if err != nil {
			return err
		}

		if err = aggregate.Amend(cmd.CourierRequested(), cmd.Items(), cmd.ShippingAddress()); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	} else {
		dueDate := time.Now().AddDate(0, 0, orderLeadTimeDays)
		aggregate, err := order.NewOrder(
			cmd.OrderID(),
			cmd.CustomerID(),
			cmd.CourierRequested(),
			cmd.Items(),
			cmd.ShippingAddress(),
			dueDate,
		)
		if err != nil {
			return err
		}

		if err = orderRepo.Add(ctx, aggregate); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
