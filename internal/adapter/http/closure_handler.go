package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pawnledger/internal/interest"
	closureUC "pawnledger/internal/usecase/closure"
)

type ClosureHandler struct{ uc *closureUC.Usecase }

func NewClosureHandler(uc *closureUC.Usecase) *ClosureHandler { return &ClosureHandler{uc: uc} }

type previewClosureReq struct {
	Method          string  `json:"method"           validate:"required,oneof=method1 method2 method3 method4"`
	AsOfDate        string  `json:"as_of_date"       validate:"required,datetime=2006-01-02"`
	ManualReduction float64 `json:"manual_reduction" validate:"gte=0,dec2"`
}

func (h *ClosureHandler) PreviewClosure(c echo.Context) error {
	var req previewClosureReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	q, err := h.uc.Preview(c.Request().Context(), closureUC.PreviewInput{
		LoanID:          c.Param("loan_id"),
		Method:          interest.Method(req.Method),
		AsOf:            parseDate(req.AsOfDate),
		ManualReduction: req.ManualReduction,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, q)
}

type closeLoanReq struct {
	Method          string  `json:"method"            validate:"required,oneof=method1 method2 method3 method4"`
	AsOfDate        string  `json:"as_of_date"        validate:"required,datetime=2006-01-02"`
	ManualReduction float64 `json:"manual_reduction"  validate:"gte=0,dec2"`
	PaymentSourceID uint64  `json:"payment_source_id" validate:"required,gt=0"`
	AmountPaidNow   float64 `json:"amount_paid_now"   validate:"gte=0,dec2"`
	BalanceAmount   float64 `json:"balance_amount"    validate:"gte=0,dec2"`
}

func (h *ClosureHandler) CloseLoan(c echo.Context) error {
	var req closeLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Close(c.Request().Context(), closureUC.CloseInput{
		LoanID:          c.Param("loan_id"),
		Method:          interest.Method(req.Method),
		AsOf:            parseDate(req.AsOfDate),
		ManualReduction: req.ManualReduction,
		MoneySourceID:   req.PaymentSourceID,
		AmountPaidNow:   req.AmountPaidNow,
		BalanceAmount:   req.BalanceAmount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
