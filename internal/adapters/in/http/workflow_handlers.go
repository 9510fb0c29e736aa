package http

import (
	"context"
	"net/http"
	"strconv"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workflow"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateWorkflowSession handles POST /api/v1/workflow - starts a new order workflow.
func (s *Server) CreateWorkflowSession(ctx echo.Context) error {
	id, session := s.sessions.Create()
	return ctx.JSON(http.StatusCreated, sessionView(id, session))
}

// GetWorkflowSession handles GET /api/v1/workflow/:sid - current workflow state.
func (s *Server) GetWorkflowSession(ctx echo.Context) error {
	id, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, sessionView(id, session))
}

// SelectWorkflowCustomer handles PUT /api/v1/workflow/:sid/customer.
// A null customer_id deselects the current customer; switching to a different
// customer discards the in-progress design work.
func (s *Server) SelectWorkflowCustomer(ctx echo.Context) error {
	id, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	var req SelectCustomerRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if req.CustomerID == nil {
		if err = session.SetCustomer(nil); err != nil {
			return domainError(ctx, err, "Failed to deselect customer")
		}
		return ctx.JSON(http.StatusOK, sessionView(id, session))
	}

	customerID, err := kernel.UUIDFromString(*req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	uow := s.uowFactory.Create()
	selected, err := uow.CustomerRepository().Get(ctx.Request().Context(), customerID)
	if err != nil {
		return domainError(ctx, err, "Failed to load customer")
	}

	if err = session.SetCustomer(selected); err != nil {
		return domainError(ctx, err, "Failed to select customer")
	}

	return ctx.JSON(http.StatusOK, sessionView(id, session))
}

// StageWorkflowDesign handles PUT /api/v1/workflow/:sid/design - places a new
// design in the composition slot, replacing whatever was staged before.
func (s *Server) StageWorkflowDesign(ctx echo.Context) error {
	id, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	var req DesignRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	design, err := s.buildDesign(ctx.Request().Context(), req)
	if err != nil {
		return domainError(ctx, err, "Invalid design")
	}

	if err = session.SetActiveDesign(design); err != nil {
		return domainError(ctx, err, "Failed to stage design")
	}

	return ctx.JSON(http.StatusOK, sessionView(id, session))
}

// ClearWorkflowDesign handles DELETE /api/v1/workflow/:sid/design.
func (s *Server) ClearWorkflowDesign(ctx echo.Context) error {
	id, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	if err = session.ClearActiveDesign(); err != nil {
		return domainError(ctx, err, "Failed to clear design")
	}

	return ctx.JSON(http.StatusOK, sessionView(id, session))
}

// CommitWorkflowDesign handles POST /api/v1/workflow/:sid/commit - commits the
// staged design into the item list, replacing the edited item if the slot was
// opened via edit.
func (s *Server) CommitWorkflowDesign(ctx echo.Context) error {
	id, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	var req DesignRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	design, err := s.buildDesign(ctx.Request().Context(), req)
	if err != nil {
		return domainError(ctx, err, "Invalid design")
	}

	if err = session.CommitActiveDesign(design); err != nil {
		return domainError(ctx, err, "Failed to commit design")
	}

	return ctx.JSON(http.StatusOK, sessionView(id, session))
}

// EditWorkflowItem handles POST /api/v1/workflow/:sid/items/:index/edit -
// copies an existing item back into the composition slot for re-editing.
func (s *Server) EditWorkflowItem(ctx echo.Context) error {
	id, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return badRequest(ctx, "Invalid item index")
	}

	if err = session.StartEditingItem(index); err != nil {
		return domainError(ctx, err, "Failed to edit item")
	}

	return ctx.JSON(http.StatusOK, sessionView(id, session))
}

// RemoveWorkflowItem handles DELETE /api/v1/workflow/:sid/items/:index.
func (s *Server) RemoveWorkflowItem(ctx echo.Context) error {
	id, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return badRequest(ctx, "Invalid item index")
	}

	if err = session.RemoveItem(index); err != nil {
		return domainError(ctx, err, "Failed to remove item")
	}

	return ctx.JSON(http.StatusOK, sessionView(id, session))
}

// SetWorkflowCourierPreference handles PUT /api/v1/workflow/:sid/courier.
func (s *Server) SetWorkflowCourierPreference(ctx echo.Context) error {
	id, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	var req CourierPreferenceRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	if err = session.SetCourierPreference(req.CourierRequested); err != nil {
		return domainError(ctx, err, "Failed to set courier preference")
	}

	return ctx.JSON(http.StatusOK, sessionView(id, session))
}

// LoadOrderForEditing handles POST /api/v1/workflow/:sid/load/:orderID -
// replaces the session state with a persisted order so it can be re-edited.
func (s *Server) LoadOrderForEditing(ctx echo.Context) error {
	id, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	reqCtx := ctx.Request().Context()
	uow := s.uowFactory.Create()

	aggregate, err := uow.OrderRepository().Get(reqCtx, orderID)
	if err != nil {
		return domainError(ctx, err, "Failed to load order")
	}

	owner, err := uow.CustomerRepository().Get(reqCtx, aggregate.CustomerID())
	if err != nil {
		return domainError(ctx, err, "Failed to load customer")
	}

	if err = session.LoadForEditing(aggregate, owner); err != nil {
		return domainError(ctx, err, "Failed to load order into workflow")
	}

	return ctx.JSON(http.StatusOK, sessionView(id, session))
}

// SubmitWorkflowOrder handles POST /api/v1/workflow/:sid/submit - turns the
// session's draft into a persisted order and resets the session.
func (s *Server) SubmitWorkflowOrder(ctx echo.Context) error {
	_, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	var req SubmitOrderRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	draft, err := session.Draft()
	if err != nil {
		return domainError(ctx, err, "Workflow is not ready for submission")
	}

	orderID := kernel.NewUUID()
	if draft.OriginatingOrderID != nil {
		orderID = *draft.OriginatingOrderID
	}

	cmd, err := commands.NewSubmitOrderCommand(
		orderID,
		draft.CustomerID,
		draft.CourierRequested,
		draft.Items,
		req.ShippingAddress,
		draft.OriginatingOrderID,
	)
	if err != nil {
		return domainError(ctx, err, "Invalid order")
	}

	if handleErr := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to submit order")
	}

	returnPath := session.ReturnPath()
	if returnPath == "" {
		returnPath = "/orders/" + orderID.String()
	}
	if err = session.Reset(); err != nil {
		return domainError(ctx, err, "Failed to reset workflow")
	}

	return ctx.JSON(http.StatusCreated, SubmitOrderResponse{
		OrderID:    orderID.String(),
		ReturnPath: returnPath,
	})
}

// ResetWorkflowSession handles POST /api/v1/workflow/:sid/reset.
func (s *Server) ResetWorkflowSession(ctx echo.Context) error {
	id, session, err := s.session(ctx)
	if err != nil {
		return err
	}

	if err = session.Reset(); err != nil {
		return domainError(ctx, err, "Failed to reset workflow")
	}

	return ctx.JSON(http.StatusOK, sessionView(id, session))
}

// session resolves the :sid path parameter to a stored workflow session.
func (s *Server) session(ctx echo.Context) (kernel.UUID, *workflow.Session, error) {
	id, err := kernel.UUIDFromString(ctx.Param("sid"))
	if err != nil {
		return kernel.UUID{}, nil, badRequest(ctx, "Invalid session ID")
	}

	session, ok := s.sessions.Get(id)
	if !ok {
		return kernel.UUID{}, nil, ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Workflow session not found",
		})
	}

	return id, session, nil
}

// buildDesign turns a design request into a domain item. The style is looked
// up in the catalog for its canonical name, and every measurement field the
// style requires must be present in the request.
func (s *Server) buildDesign(ctx context.Context, req DesignRequest) (order.ItemDesign, error) {
	styleID, err := kernel.UUIDFromString(req.StyleID)
	if err != nil {
		return order.ItemDesign{}, err
	}

	uow := s.uowFactory.Create()
	st, err := uow.StyleRepository().Get(ctx, styleID)
	if err != nil {
		return order.ItemDesign{}, err
	}

	measurements := make(map[string]kernel.Measurement, len(req.Measurements))
	for fieldID, value := range req.Measurements {
		m, mErr := kernel.NewMeasurement(kernel.Centimeters(value))
		if mErr != nil {
			return order.ItemDesign{}, mErr
		}
		measurements[fieldID] = m
	}

	for _, fieldID := range st.RequiredMeasurementIDs() {
		if _, ok := measurements[fieldID]; !ok {
			return order.ItemDesign{}, errs.NewValueIsRequiredError("measurement " + fieldID)
		}
	}

	return order.NewItemDesign(styleID, st.Name(), req.Notes, req.ReferenceImages, measurements)
}

// sessionView renders a workflow session for API responses.
func sessionView(id kernel.UUID, session *workflow.Session) SessionResponse {
	var customerID *string
	if c := session.Customer(); c != nil {
		s := c.ID().String()
		customerID = &s
	}

	items := make([]ItemResponse, 0, session.ItemCount())
	for _, item := range session.Items() {
		items = append(items, itemView(item))
	}

	var active *ItemResponse
	if design, ok := session.ActiveDesign(); ok {
		view := itemView(design)
		active = &view
	}

	var editingIndex *int
	if index, ok := session.EditingItemIndex(); ok {
		editingIndex = &index
	}

	var originatingOrderID *string
	if orderID, ok := session.OriginatingOrderID(); ok {
		s := orderID.String()
		originatingOrderID = &s
	}

	return SessionResponse{
		SessionID:          id.String(),
		CustomerID:         customerID,
		CourierRequested:   session.CourierRequested(),
		Items:              items,
		ActiveDesign:       active,
		EditingItemIndex:   editingIndex,
		OriginatingOrderID: originatingOrderID,
		ReturnPath:         session.ReturnPath(),
	}
}

// itemView renders one garment design for API responses.
func itemView(item order.ItemDesign) ItemResponse {
	measurements := make(map[string]float64, len(item.Measurements()))
	for fieldID, m := range item.Measurements() {
		measurements[fieldID] = float64(m.Value())
	}

	return ItemResponse{
		StyleID:         item.StyleID().String(),
		StyleName:       item.StyleName(),
		Notes:           item.Notes(),
		ReferenceImages: item.ReferenceImages(),
		Measurements:    measurements,
	}
}
