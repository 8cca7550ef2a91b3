package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"stayboard/internal/app/dto"
	"stayboard/internal/app/handlers/finance"
	"stayboard/internal/app/queries"
	domainfinance "stayboard/internal/domain/finance"
)

type FinanceHandler struct {
	Queries queries.Bus
}

type breakdownRequest struct {
	RoomPrice         float64 `json:"roomPrice"`
	CleaningFee       float64 `json:"cleaningFee"`
	CityTax           float64 `json:"cityTax"`
	Extras            float64 `json:"extras"`
	AppliedDiscount   float64 `json:"appliedDiscount"`
	CommissionPercent float64 `json:"commissionPercent"`
	PaidAmount        float64 `json:"paidAmount"`
}

func (h FinanceHandler) Breakdown(c *gin.Context) {
	if h.Queries == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queries unavailable"})
		return
	}
	var req breakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q := finance.BreakdownQuery{Input: domainfinance.BreakdownInput{
		RoomPrice:         req.RoomPrice,
		CleaningFee:       req.CleaningFee,
		CityTax:           req.CityTax,
		Extras:            req.Extras,
		AppliedDiscount:   req.AppliedDiscount,
		CommissionPercent: req.CommissionPercent,
		PaidAmount:        req.PaidAmount,
	}}
	result, err := queries.Ask[finance.BreakdownQuery, dto.FinancialBreakdown](c.Request.Context(), h.Queries, q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ FinanceHTTP = FinanceHandler{}
