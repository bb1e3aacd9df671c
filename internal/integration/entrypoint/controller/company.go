// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/business-ledger/backend/internal/application/usecase/company"
	domainerror "github.com/business-ledger/backend/internal/domain/error"
	"github.com/business-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/business-ledger/backend/internal/integration/entrypoint/middleware"
)

// CompanyController handles company endpoints.
type CompanyController struct {
	createUseCase *company.CreateCompanyUseCase
	updateUseCase *company.UpdateCompanyUseCase
	deleteUseCase *company.DeleteCompanyUseCase
	listUseCase   *company.ListCompaniesUseCase
	getUseCase    *company.GetCompanyUseCase
}

// NewCompanyController creates a new company controller instance.
func NewCompanyController(
	createUseCase *company.CreateCompanyUseCase,
	updateUseCase *company.UpdateCompanyUseCase,
	deleteUseCase *company.DeleteCompanyUseCase,
	listUseCase *company.ListCompaniesUseCase,
	getUseCase *company.GetCompanyUseCase,
) *CompanyController {
	return &CompanyController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
	}
}

// List handles GET /companies requests.
func (c *CompanyController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), company.ListCompaniesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve companies",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyListResponse(output.Companies))
}

// Get handles GET /companies/:id requests. The response includes the
// company's transaction history.
func (c *CompanyController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid company ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), company.GetCompanyInput{
		CompanyID: companyID,
		UserID:    userID,
	})
	if err != nil {
		c.handleCompanyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CompanyDetailResponse{
		Company:      dto.ToCompanyResponse(output.Company),
		Transactions: dto.ToTransactionListResponse(output.Transactions).Transactions,
	})
}

// Create handles POST /companies requests.
func (c *CompanyController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCompanyFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), company.CreateCompanyInput{
		UserID:  userID,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		c.handleCompanyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCompanyResponse(output.Company))
}

// Update handles PUT /companies/:id requests.
func (c *CompanyController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid company ID format",
		})
		return
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingCompanyFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), company.UpdateCompanyInput{
		CompanyID: companyID,
		UserID:    userID,
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		c.handleCompanyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompanyResponse(output.Company))
}

// Delete handles DELETE /companies/:id requests. Deletion cascades to the
// company's transactions.
func (c *CompanyController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	companyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid company ID format",
		})
		return
	}

	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), company.DeleteCompanyInput{
		CompanyID: companyID,
		UserID:    userID,
	})
	if err != nil {
		c.handleCompanyError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCompanyError handles company errors and returns appropriate HTTP responses.
func (c *CompanyController) handleCompanyError(ctx *gin.Context, err error) {
	var companyErr *domainerror.CompanyError
	if errors.As(err, &companyErr) {
		statusCode := c.getStatusCodeForCompanyError(companyErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: companyErr.Message,
			Code:  string(companyErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCompanyError maps company error codes to HTTP status codes.
func (c *CompanyController) getStatusCodeForCompanyError(code domainerror.CompanyErrorCode) int {
	switch code {
	case domainerror.ErrCodeCompanyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedCompany:
		return http.StatusForbidden
	case domainerror.ErrCodeCompanyNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeCompanyNameRequired,
		domainerror.ErrCodeInvalidCompanyPhone,
		domainerror.ErrCodeMissingCompanyFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
