// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/usecase/dashboard"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
	"github.com/business-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/business-ledger/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard endpoints.
type DashboardController struct {
	overviewUseCase       *dashboard.GetOverviewUseCase
	paymentSummaryUseCase *dashboard.PaymentSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	overviewUseCase *dashboard.GetOverviewUseCase,
	paymentSummaryUseCase *dashboard.PaymentSummaryUseCase,
) *DashboardController {
	return &DashboardController{
		overviewUseCase:       overviewUseCase,
		paymentSummaryUseCase: paymentSummaryUseCase,
	}
}

// Overview handles GET /dashboard requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build dashboard overview",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.DashboardOverviewResponse{
		Outstanding: output.Portfolio.Outstanding.StringFixed(2),
		TotalBought: output.Portfolio.TotalBought.StringFixed(2),
		TotalPaid:   output.Portfolio.TotalPaid.StringFixed(2),
		Companies:   dto.ToCompanyListResponse(output.Companies).Companies,
	})
}

// PaymentSummary handles GET /dashboard/payments requests.
func (c *DashboardController) PaymentSummary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := dashboard.PaymentSummaryInput{
		UserID: userID,
	}

	if companyIDStr := ctx.Query("companyId"); companyIDStr != "" {
		companyID, err := uuid.Parse(companyIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid company ID format",
			})
			return
		}
		input.CompanyID = &companyID
	}

	output, err := c.paymentSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to build payment summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentSummaryListResponse(output.Summaries))
}
