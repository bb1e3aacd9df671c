// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-ledger/backend/internal/domain/entity"
)

// CompanyModel represents the companies table in the database.
type CompanyModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name                string          `gorm:"type:varchar(255);not null"`
	Phone               string          `gorm:"type:varchar(10)"`
	Address             string          `gorm:"type:text"`
	TotalBought         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalPaid           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RemainingAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	LastTransactionDate *time.Time      `gorm:"type:date"`
	CreatedAt           time.Time       `gorm:"not null"`
	UpdatedAt           time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Transactions []*TransactionModel `gorm:"foreignKey:CompanyID;references:ID"`
}

// TableName returns the table name for the CompanyModel.
func (CompanyModel) TableName() string {
	return "companies"
}

// ToEntity converts a CompanyModel to a domain Company entity.
func (m *CompanyModel) ToEntity() *entity.Company {
	return &entity.Company{
		ID:                  m.ID,
		UserID:              m.UserID,
		Name:                m.Name,
		Phone:               m.Phone,
		Address:             m.Address,
		TotalBought:         m.TotalBought,
		TotalPaid:           m.TotalPaid,
		RemainingAmount:     m.RemainingAmount,
		LastTransactionDate: m.LastTransactionDate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// CompanyFromEntity creates a CompanyModel from a domain Company entity.
func CompanyFromEntity(company *entity.Company) *CompanyModel {
	return &CompanyModel{
		ID:                  company.ID,
		UserID:              company.UserID,
		Name:                company.Name,
		Phone:               company.Phone,
		Address:             company.Address,
		TotalBought:         company.TotalBought,
		TotalPaid:           company.TotalPaid,
		RemainingAmount:     company.RemainingAmount,
		LastTransactionDate: company.LastTransactionDate,
		CreatedAt:           company.CreatedAt,
		UpdatedAt:           company.UpdatedAt,
	}
}
