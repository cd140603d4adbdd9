package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/flowpaylabs/paymethod-service/internal/domain/model"
	"github.com/flowpaylabs/paymethod-service/internal/middleware/auth"
	"github.com/flowpaylabs/paymethod-service/internal/usecase"
)

type PaymentMethodHandler struct {
	service *usecase.PaymentMethodService
	logger  *zap.Logger
}

func NewPaymentMethodHandler(service *usecase.PaymentMethodService, logger *zap.Logger) *PaymentMethodHandler {
	return &PaymentMethodHandler{
		service: service,
		logger:  logger,
	}
}

type paymentMethodRequest struct {
	PaymentType       string `json:"paymentType" validate:"omitempty,oneof=Bank Paytm UPI PayPal USDT"`
	IFSCCode          string `json:"ifscCode"`
	BranchName        string `json:"branchName"`
	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	AccountHolderName string `json:"accountHolderName"`
	PaytmNumber       string `json:"paytmNumber"`
	UPIID             string `json:"upiId"`
	PaypalEmail       string `json:"paypalEmail"`
	USDTAddress       string `json:"usdtAddress"`
}

func (r *paymentMethodRequest) fieldValues() map[string]string {
	return map[string]string{
		model.FieldIFSCCode:          r.IFSCCode,
		model.FieldBranchName:        r.BranchName,
		model.FieldBankName:          r.BankName,
		model.FieldAccountNumber:     r.AccountNumber,
		model.FieldAccountHolderName: r.AccountHolderName,
		model.FieldPaytmNumber:       r.PaytmNumber,
		model.FieldUPIID:             r.UPIID,
		model.FieldPaypalEmail:       r.PaypalEmail,
		model.FieldUSDTAddress:       r.USDTAddress,
	}
}

// Create handles POST /api/v1/payment-methods
func (h *PaymentMethodHandler) Create(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err // RequireAuth already returns the JSON error response
	}

	ownerID, err := uuid.Parse(user.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	var req paymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "validation failed",
			"details": err.Error(),
		})
	}

	method, err := h.service.Create(c.Request().Context(), ownerID, req.PaymentType, req.fieldValues())
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusCreated, method)
}

// List handles GET /api/v1/payment-methods
func (h *PaymentMethodHandler) List(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	ownerID, err := uuid.Parse(user.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	methods, err := h.service.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":          len(methods),
		"paymentMethods": methods,
	})
}

// Get handles GET /api/v1/payment-methods/:id
func (h *PaymentMethodHandler) Get(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	ownerID, err := uuid.Parse(user.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment method ID"})
	}

	method, err := h.service.Get(c.Request().Context(), ownerID, id)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, method)
}

// Update handles PATCH /api/v1/payment-methods/:id
func (h *PaymentMethodHandler) Update(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	ownerID, err := uuid.Parse(user.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment method ID"})
	}

	var req paymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "validation failed",
			"details": err.Error(),
		})
	}

	method, err := h.service.Update(c.Request().Context(), ownerID, id, req.PaymentType, req.fieldValues())
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, method)
}

// Delete handles DELETE /api/v1/payment-methods/:id
func (h *PaymentMethodHandler) Delete(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	ownerID, err := uuid.Parse(user.UserID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user ID"})
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid payment method ID"})
	}

	if err := h.service.Delete(c.Request().Context(), ownerID, id); err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "deleted"})
}

// ListTypes handles GET /api/v1/payment-types
func (h *PaymentMethodHandler) ListTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"paymentTypes": model.AllPaymentTypes(),
	})
}
