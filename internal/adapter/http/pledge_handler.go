package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	pledgeUC "pawnledger/internal/usecase/pledge"
)

type PledgeHandler struct{ uc *pledgeUC.Usecase }

func NewPledgeHandler(uc *pledgeUC.Usecase) *PledgeHandler { return &PledgeHandler{uc: uc} }

type jewelReq struct {
	JewelTypeID uint64  `json:"jewel_type_id" validate:"required,gt=0"`
	Quality     string  `json:"quality"`
	Weight      float64 `json:"weight"        validate:"gte=0"`
	StoneWeight float64 `json:"stone_weight"  validate:"gte=0"`
}

type createPledgeReq struct {
	CustomerID           string     `json:"customer_id"            validate:"required,hex32"`
	BranchID             string     `json:"branch_id"              validate:"omitempty,hex32"`
	Amount               float64    `json:"amount"                 validate:"required,gt=0,dec2"`
	StartDate            string     `json:"start_date"             validate:"omitempty,datetime=2006-01-02"`
	InterestRateID       uint64     `json:"interest_rate_id"`
	ValidityOptionID     uint64     `json:"validity_option_id"`
	InterestTaken        bool       `json:"interest_taken"`
	IncludeProcessingFee bool       `json:"include_processing_fee"`
	Jewels               []jewelReq `json:"jewels"                 validate:"required,min=1,dive"`
}

func (r createPledgeReq) toInput() pledgeUC.CreateInput {
	in := pledgeUC.CreateInput{
		CustomerID:           r.CustomerID,
		BranchID:             r.BranchID,
		Amount:               r.Amount,
		StartDate:            parseDate(r.StartDate),
		InterestRateID:       r.InterestRateID,
		ValidityOptionID:     r.ValidityOptionID,
		InterestTaken:        r.InterestTaken,
		IncludeProcessingFee: r.IncludeProcessingFee,
	}
	for _, j := range r.Jewels {
		in.Jewels = append(in.Jewels, pledgeUC.JewelInput(j))
	}
	return in
}

func (h *PledgeHandler) CreatePledge(c echo.Context) error {
	var req createPledgeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// PreviewFinancials returns the live creation-form figures without
// persisting anything. The customer id is not needed for a preview.
func (h *PledgeHandler) PreviewFinancials(c echo.Context) error {
	var req createPledgeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.PreviewFinancials(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PledgeHandler) GetPledge(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("pledge_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PledgeHandler) ApprovePledge(c echo.Context) error {
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("pledge_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PledgeHandler) RejectPledge(c echo.Context) error {
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("pledge_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type extraReq struct {
	Amount        float64 `json:"amount"          validate:"required,gt=0,dec2"`
	TakenOn       string  `json:"taken_on"        validate:"omitempty,datetime=2006-01-02"`
	MoneySourceID uint64  `json:"money_source_id" validate:"required,gt=0"`
}

func (h *PledgeHandler) AddExtra(c echo.Context) error {
	var req extraReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AddExtra(c.Request().Context(), pledgeUC.ExtraInput{
		PledgeID:      c.Param("pledge_id"),
		Amount:        req.Amount,
		TakenOn:       parseDate(req.TakenOn),
		MoneySourceID: req.MoneySourceID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type paymentReq struct {
	PrincipalPaid float64 `json:"principal_paid"  validate:"gte=0,dec2"`
	InterestPaid  float64 `json:"interest_paid"   validate:"gte=0,dec2"`
	PaidOn        string  `json:"paid_on"         validate:"omitempty,datetime=2006-01-02"`
	MoneySourceID uint64  `json:"money_source_id" validate:"required,gt=0"`
}

func (h *PledgeHandler) AddPayment(c echo.Context) error {
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AddPayment(c.Request().Context(), pledgeUC.PaymentInput{
		PledgeID:      c.Param("pledge_id"),
		PaidOn:        parseDate(req.PaidOn),
		PrincipalPaid: req.PrincipalPaid,
		InterestPaid:  req.InterestPaid,
		MoneySourceID: req.MoneySourceID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
