package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/flowpaylabs/paymethod-service/internal/domain/dto"
	"github.com/flowpaylabs/paymethod-service/internal/domain/entity"
	"github.com/flowpaylabs/paymethod-service/internal/usecase"
)

type AdminHandler struct {
	search *usecase.SearchService
	logger *zap.Logger
}

func NewAdminHandler(search *usecase.SearchService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		search: search,
		logger: logger,
	}
}

type searchRequest struct {
	Username    string `query:"username"`
	PaymentType string `query:"paymentType"`
	BankName    string `query:"bankName"`
	IFSCCode    string `query:"ifscCode"`
	PaytmNumber string `query:"paytmNumber"`
	UPIID       string `query:"upiId"`
	PaypalEmail string `query:"paypalEmail"`
	USDTAddress string `query:"usdtAddress"`
	Page        int    `query:"page" validate:"omitempty,min=1"`
	Limit       int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (r *searchRequest) criteria() dto.SearchCriteria {
	criteria := dto.SearchCriteria{
		Username:    r.Username,
		PaymentType: r.PaymentType,
		BankName:    r.BankName,
		IFSCCode:    r.IFSCCode,
		PaytmNumber: r.PaytmNumber,
		UPIID:       r.UPIID,
		PaypalEmail: r.PaypalEmail,
		USDTAddress: r.USDTAddress,
	}
	if r.Limit > 0 {
		criteria.Pagination = &entity.PaginationParams{Page: r.Page, Limit: r.Limit}
	}
	return criteria
}

// ListAll handles GET /api/v1/admin/payment-methods. Returns every
// user's payment methods, newest first, annotated with owner
// username/email.
func (h *AdminHandler) ListAll(c echo.Context) error {
	results, total, err := h.search.Search(c.Request().Context(), dto.SearchCriteria{})
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":          total,
		"paymentMethods": results,
	})
}

// Search handles GET /api/v1/admin/payment-methods/search with sparse,
// AND-ed query criteria.
func (h *AdminHandler) Search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid query parameters"})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "validation failed",
			"details": err.Error(),
		})
	}

	criteria := req.criteria()
	results, total, err := h.search.Search(c.Request().Context(), criteria)
	if err != nil {
		return writeDomainError(c, h.logger, err)
	}

	resp := echo.Map{
		"count":          total,
		"paymentMethods": results,
	}
	if p := criteria.Pagination; p != nil {
		resp["pagination"] = entity.NewPaginationMeta(p.Page, p.Limit, total)
	}

	return c.JSON(http.StatusOK, resp)
}
