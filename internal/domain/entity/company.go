// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Company represents a counterparty the user buys from and pays.
// TotalBought, TotalPaid, RemainingAmount and LastTransactionDate are derived
// from the company's transactions and recomputed on every transaction mutation.
type Company struct {
	ID                  uuid.UUID
	UserID              uuid.UUID // uuid.Nil when backed by the local store
	Name                string
	Phone               string
	Address             string
	TotalBought         decimal.Decimal
	TotalPaid           decimal.Decimal
	RemainingAmount     decimal.Decimal // positive: you owe them, negative: they owe you
	LastTransactionDate *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewCompany creates a new Company entity with zeroed totals.
func NewCompany(userID uuid.UUID, name, phone, address string) *Company {
	now := time.Now().UTC()

	return &Company{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            name,
		Phone:           phone,
		Address:         address,
		TotalBought:     decimal.Zero,
		TotalPaid:       decimal.Zero,
		RemainingAmount: decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsSettled reports whether the company balance is exactly zero.
func (c *Company) IsSettled() bool {
	return c.RemainingAmount.IsZero()
}
