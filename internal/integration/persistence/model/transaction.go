// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyName     string          `gorm:"type:varchar(255);not null"`
	Type            string          `gorm:"type:varchar(10);not null;index"`
	Description     string          `gorm:"type:varchar(255);not null"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date            time.Time       `gorm:"type:date;not null;index"`
	PaymentMethod   string          `gorm:"type:varchar(20)"`
	PaidBy          string          `gorm:"type:varchar(100)"`
	ReferenceNumber string          `gorm:"type:varchar(100)"`
	CreatedAt       time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Company *CompanyModel `gorm:"foreignKey:CompanyID;references:ID"`
	User    *UserModel    `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		CompanyID:       m.CompanyID,
		CompanyName:     m.CompanyName,
		Type:            entity.TransactionType(m.Type),
		Description:     m.Description,
		Amount:          m.Amount,
		Date:            m.Date,
		PaymentMethod:   entity.PaymentMethod(m.PaymentMethod),
		PaidBy:          m.PaidBy,
		ReferenceNumber: m.ReferenceNumber,
		CreatedAt:       m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:              transaction.ID,
		UserID:          transaction.UserID,
		CompanyID:       transaction.CompanyID,
		CompanyName:     transaction.CompanyName,
		Type:            string(transaction.Type),
		Description:     transaction.Description,
		Amount:          transaction.Amount,
		Date:            transaction.Date,
		PaymentMethod:   string(transaction.PaymentMethod),
		PaidBy:          transaction.PaidBy,
		ReferenceNumber: transaction.ReferenceNumber,
		CreatedAt:       transaction.CreatedAt,
	}
}
