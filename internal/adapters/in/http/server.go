// Package http exposes the atelier's use cases over an echo HTTP API.
// Reference data and orders follow a plain CRUD shape; the multi-step order
// intake runs through workflow sessions held in an in-memory SessionStore.
package http

import (
	"errors"
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler commands.CreateCustomerCommandHandler
	updateCustomerHandler commands.UpdateCustomerCommandHandler
	createStyleHandler    commands.CreateStyleCommandHandler
	registerTailorHandler commands.RegisterTailorCommandHandler
	submitOrderHandler    commands.SubmitOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler

	// Query handlers
	getAllCustomersHandler      queries.GetAllCustomersQueryHandler
	getAllTailorsHandler        queries.GetAllTailorsQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getOrderHandler             queries.GetOrderQueryHandler

	// The workflow endpoints read aggregates directly (style catalog for the
	// design editor, order + customer for load-for-editing), so the server
	// holds the unit of work factory in addition to the CQRS handlers.
	uowFactory ports.UnitOfWorkFactory
	advisor    ports.StyleAdvisor
	sessions   *SessionStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	createStyleHandler commands.CreateStyleCommandHandler,
	registerTailorHandler commands.RegisterTailorCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
	getAllTailorsHandler queries.GetAllTailorsQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	uowFactory ports.UnitOfWorkFactory,
	advisor ports.StyleAdvisor,
) *Server {
	return &Server{
		createCustomerHandler:       createCustomerHandler,
		updateCustomerHandler:       updateCustomerHandler,
		createStyleHandler:          createStyleHandler,
		registerTailorHandler:       registerTailorHandler,
		submitOrderHandler:          submitOrderHandler,
		completeOrderHandler:        completeOrderHandler,
		getAllCustomersHandler:      getAllCustomersHandler,
		getAllTailorsHandler:        getAllTailorsHandler,
		getUncompletedOrdersHandler: getUncompletedOrdersHandler,
		getOrderHandler:             getOrderHandler,
		uowFactory:                  uowFactory,
		advisor:                     advisor,
		sessions:                    NewSessionStore(),
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)

	api.GET("/styles", s.GetStyles)
	api.POST("/styles", s.CreateStyle)
	api.POST("/styles/recommendation", s.RecommendStyle)

	api.GET("/tailors", s.GetTailors)
	api.POST("/tailors", s.RegisterTailor)

	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)

	api.POST("/workflow", s.CreateWorkflowSession)
	api.GET("/workflow/:sid", s.GetWorkflowSession)
	api.PUT("/workflow/:sid/customer", s.SelectWorkflowCustomer)
	api.PUT("/workflow/:sid/design", s.StageWorkflowDesign)
	api.DELETE("/workflow/:sid/design", s.ClearWorkflowDesign)
	api.POST("/workflow/:sid/commit", s.CommitWorkflowDesign)
	api.POST("/workflow/:sid/items/:index/edit", s.EditWorkflowItem)
	api.DELETE("/workflow/:sid/items/:index", s.RemoveWorkflowItem)
	api.PUT("/workflow/:sid/courier", s.SetWorkflowCourierPreference)
	api.POST("/workflow/:sid/load/:orderID", s.LoadOrderForEditing)
	api.POST("/workflow/:sid/submit", s.SubmitWorkflowOrder)
	api.POST("/workflow/:sid/reset", s.ResetWorkflowSession)
}

// GetCustomers handles GET /api/v1/customers - retrieves all customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve customers",
		})
	}

	response := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		response[i] = CustomerResponse{
			ID:      c.ID.String(),
			Name:    c.Name,
			Email:   c.Email,
			Phone:   c.Phone,
			Address: c.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CreateCustomerRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(
		kernel.NewUUID(), req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer data: " + err.Error(),
		})
	}

	if handleErr := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to create customer",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCustomer handles PUT /api/v1/customers/:id - updates contact details.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	var req UpdateCustomerRequest
	if err = bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, req.Email, req.Phone, req.Address)
	if err != nil {
		return badRequest(ctx, "Invalid customer data: "+err.Error())
	}

	if handleErr := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update customer")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetStyles handles GET /api/v1/styles - retrieves the style catalog.
func (s *Server) GetStyles(ctx echo.Context) error {
	uow := s.uowFactory.Create()

	styles, err := uow.StyleRepository().GetAll(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve styles",
		})
	}

	response := make([]StyleResponse, len(styles))
	for i, st := range styles {
		response[i] = StyleResponse{
			ID:                     st.ID().String(),
			Name:                   st.Name(),
			RequiredMeasurementIDs: st.RequiredMeasurementIDs(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateStyle handles POST /api/v1/styles - adds a style to the catalog.
func (s *Server) CreateStyle(ctx echo.Context) error {
	var req CreateStyleRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateStyleCommand(kernel.NewUUID(), req.Name, req.RequiredMeasurementIDs)
	if err != nil {
		return badRequest(ctx, "Invalid style data: "+err.Error())
	}

	if handleErr := s.createStyleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to create style",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// RecommendStyle handles POST /api/v1/styles/recommendation - AI style pick.
func (s *Server) RecommendStyle(ctx echo.Context) error {
	var req RecommendStyleRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	uow := s.uowFactory.Create()
	catalog, err := uow.StyleRepository().GetAll(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve style catalog",
		})
	}

	rec, err := s.advisor.Recommend(ctx.Request().Context(), req.Prompt, catalog)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: "Style recommendation failed",
		})
	}

	return ctx.JSON(http.StatusOK, RecommendStyleResponse{
		StyleID:   rec.StyleID.String(),
		StyleName: rec.StyleName,
		Rationale: rec.Rationale,
	})
}

// GetTailors handles GET /api/v1/tailors - retrieves the roster.
func (s *Server) GetTailors(ctx echo.Context) error {
	query := queries.NewGetAllTailorsQuery()

	tailors, err := s.getAllTailorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve tailors",
		})
	}

	response := make([]TailorResponse, len(tailors))
	for i, t := range tailors {
		response[i] = TailorResponse{
			ID:           t.ID.String(),
			Name:         t.Name,
			Capacity:     t.Capacity,
			ActiveOrders: t.ActiveOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RegisterTailor handles POST /api/v1/tailors - adds a tailor to the roster.
func (s *Server) RegisterTailor(ctx echo.Context) error {
	var req RegisterTailorRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	specialties := make([]kernel.UUID, 0, len(req.SpecialtyStyleIDs))
	for _, raw := range req.SpecialtyStyleIDs {
		styleID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid specialty style ID: "+raw)
		}
		specialties = append(specialties, styleID)
	}

	cmd, err := commands.NewRegisterTailorCommand(kernel.NewUUID(), req.Name, specialties)
	if err != nil {
		return badRequest(ctx, "Invalid tailor data: "+err.Error())
	}

	if handleErr := s.registerTailorHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: "Failed to register tailor",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetActiveOrders handles GET /api/v1/orders/active - all uncompleted orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, o := range orders {
		var tailorID *string
		if o.TailorID != nil {
			id := o.TailorID.String()
			tailorID = &id
		}

		response[i] = OrderSummaryResponse{
			ID:         o.ID.String(),
			CustomerID: o.CustomerID.String(),
			TailorID:   tailorID,
			Status:     o.Status,
			DueDate:    o.DueDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err, "Failed to retrieve order")
	}

	var tailorID *string
	if o.TailorID != nil {
		id := o.TailorID.String()
		tailorID = &id
	}

	items := make([]ItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = ItemResponse{
			StyleID:         item.StyleID,
			StyleName:       item.StyleName,
			Notes:           item.Notes,
			ReferenceImages: item.ReferenceImages,
			Measurements:    item.Measurements,
		}
	}

	return ctx.JSON(http.StatusOK, OrderDetailResponse{
		ID:               o.ID.String(),
		CustomerID:       o.CustomerID.String(),
		TailorID:         tailorID,
		CourierRequested: o.CourierRequested,
		ShippingAddress:  o.ShippingAddress,
		Status:           o.Status,
		DueDate:          o.DueDate,
		Items:            items,
	})
}

// CompleteOrder handles POST /api/v1/orders/:id/complete - finishes production.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	if handleErr := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to complete order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bindAndValidate binds the JSON body into req and runs struct validation.
// Writes a 400 response itself; a non-nil return short-circuits the handler.
func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := ctx.Validate(req); err != nil {
		var httpErr *echo.HTTPError
		message := "Validation failed"
		if errors.As(err, &httpErr) {
			message = "Validation failed: " + httpErr.Error()
		}
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: message,
		})
	}

	return nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps an application error to a response: not-found becomes 404,
// anything else is treated as a rejected command.
func domainError(ctx echo.Context, err error, fallback string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: fallback + ": " + err.Error(),
	})
}
