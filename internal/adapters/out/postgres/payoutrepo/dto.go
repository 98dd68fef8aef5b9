// Package payoutrepo persists payouts and their settlement state.
package payoutrepo

import (
	"time"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/payout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayoutDTO is the row of a payout. Seq orders payouts by issuance.
type PayoutDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq           int64           `gorm:"autoIncrement;uniqueIndex"`
	OrderID       string          `gorm:"not null"`
	Payer         string          `gorm:"size:64;not null;index"`
	Recipient     string          `gorm:"size:64;not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(78,0);not null"`
	Status        string          `gorm:"size:16;not null;index"`
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention.
func (PayoutDTO) TableName() string {
	return "payouts"
}

func fromDomain(p *payout.Payout) PayoutDTO {
	return PayoutDTO{
		ID:            p.ID().Bytes(),
		OrderID:       p.OrderID(),
		Payer:         p.Payer().String(),
		Recipient:     p.Recipient().String(),
		Amount:        p.Amount().Decimal(),
		Status:        p.Status().String(),
		FailureReason: p.FailureReason(),
	}
}

func toDomain(dto PayoutDTO) (*payout.Payout, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	payer, err := kernel.NewAccountID(dto.Payer)
	if err != nil {
		return nil, err
	}

	recipient, err := kernel.NewAccountID(dto.Recipient)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.AmountFromDecimal(dto.Amount)
	if err != nil {
		return nil, err
	}

	status, err := payout.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return payout.RestorePayout(id, dto.OrderID, payer, recipient, amount, status, dto.FailureReason)
}
