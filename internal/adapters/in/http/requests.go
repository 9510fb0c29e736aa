package http

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator adapts go-playground/validator to echo's Validator interface.
// Handlers call ctx.Validate after binding to enforce the struct tags below.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used by the echo server.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateCustomerRequest is the body for POST /api/v1/customers.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

// UpdateCustomerRequest is the body for PUT /api/v1/customers/:id.
type UpdateCustomerRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
}

// CreateStyleRequest is the body for POST /api/v1/styles.
type CreateStyleRequest struct {
	Name                   string   `json:"name" validate:"required"`
	RequiredMeasurementIDs []string `json:"required_measurement_ids" validate:"required,min=1,dive,required"`
}

// RegisterTailorRequest is the body for POST /api/v1/tailors.
// An empty specialty list registers a generalist.
type RegisterTailorRequest struct {
	Name              string   `json:"name" validate:"required"`
	SpecialtyStyleIDs []string `json:"specialty_style_ids" validate:"omitempty,dive,uuid"`
}

// SelectCustomerRequest is the body for PUT workflow customer selection.
// A null customer_id deselects the current customer.
type SelectCustomerRequest struct {
	CustomerID *string `json:"customer_id" validate:"omitempty,uuid"`
}

// DesignRequest carries a garment design for the workflow's composition slot.
// Used both to stage a design and to commit the final edit of one.
type DesignRequest struct {
	StyleID         string             `json:"style_id" validate:"required,uuid"`
	Notes           string             `json:"notes"`
	ReferenceImages []string           `json:"reference_images" validate:"omitempty,dive,url"`
	Measurements    map[string]float64 `json:"measurements" validate:"required,min=1"`
}

// CourierPreferenceRequest is the body for the workflow courier toggle.
type CourierPreferenceRequest struct {
	CourierRequested bool `json:"courier_requested"`
}

// SubmitOrderRequest is the body for workflow submission.
type SubmitOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

// RecommendStyleRequest is the body for POST /api/v1/styles/recommendation.
type RecommendStyleRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// SessionResponse is the JSON view of a workflow session.
type SessionResponse struct {
	SessionID          string         `json:"session_id"`
	CustomerID         *string        `json:"customer_id"`
	CourierRequested   bool           `json:"courier_requested"`
	Items              []ItemResponse `json:"items"`
	ActiveDesign       *ItemResponse  `json:"active_design"`
	EditingItemIndex   *int           `json:"editing_item_index"`
	OriginatingOrderID *string        `json:"originating_order_id"`
	ReturnPath         string         `json:"return_path"`
}

// ItemResponse is the JSON view of one garment design.
type ItemResponse struct {
	StyleID         string             `json:"style_id"`
	StyleName       string             `json:"style_name"`
	Notes           string             `json:"notes"`
	ReferenceImages []string           `json:"reference_images"`
	Measurements    map[string]float64 `json:"measurements"`
}

// SubmitOrderResponse is returned after a successful workflow submission.
type SubmitOrderResponse struct {
	OrderID    string `json:"order_id"`
	ReturnPath string `json:"return_path"`
}

// RecommendStyleResponse is the AI style recommendation body.
type RecommendStyleResponse struct {
	StyleID   string `json:"style_id"`
	StyleName string `json:"style_name"`
	Rationale string `json:"rationale"`
}

// CustomerResponse is the JSON view of a customer in list endpoints.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// StyleResponse is the JSON view of a catalog style.
type StyleResponse struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	RequiredMeasurementIDs []string `json:"required_measurement_ids"`
}

// TailorResponse is the JSON view of a roster member.
type TailorResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Capacity     int    `json:"capacity"`
	ActiveOrders int    `json:"active_orders"`
}

// OrderSummaryResponse is the JSON view of an order in the active list.
type OrderSummaryResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	TailorID   *string   `json:"tailor_id"`
	Status     string    `json:"status"`
	DueDate    time.Time `json:"due_date"`
}

// OrderDetailResponse is the JSON view of a single order with its items.
type OrderDetailResponse struct {
	ID               string         `json:"id"`
	CustomerID       string         `json:"customer_id"`
	TailorID         *string        `json:"tailor_id"`
	CourierRequested bool           `json:"courier_requested"`
	ShippingAddress  string         `json:"shipping_address"`
	Status           string         `json:"status"`
	DueDate          time.Time      `json:"due_date"`
	Items            []ItemResponse `json:"items"`
}
