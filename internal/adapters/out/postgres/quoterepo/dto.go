// Package quoterepo persists quote entities, mapping them to and from their
// relational representation. A unique index on (project_id, company_id)
// enforces one quote per bidder per project at the storage level.
package quoterepo

import (
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/quote"

	"github.com/google/uuid"
)

// QuoteDTO represents the database structure for persisting quotes.
type QuoteDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_quotes_project_company"`
	CompanyID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_quotes_project_company"`
	Amount        int64     `gorm:"type:bigint"`
	Message       string
	EstimatedDays *int
	Status        int `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for quote entities.
func (QuoteDTO) TableName() string {
	return "quotes"
}

func fromDomain(aggregate *quote.Quote) QuoteDTO {
	return QuoteDTO{
		ID:            aggregate.ID().Bytes(),
		ProjectID:     aggregate.ProjectID().Bytes(),
		CompanyID:     aggregate.CompanyID().Bytes(),
		Amount:        aggregate.Amount().Amount(),
		Message:       aggregate.Message(),
		EstimatedDays: aggregate.EstimatedDays(),
		Status:        int(aggregate.Status()),
	}
}

func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	projectID, err := kernel.UUIDFromBytes(dto.ProjectID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return quote.RestoreQuote(
		id,
		projectID,
		companyID,
		amount,
		dto.Message,
		dto.EstimatedDays,
		quote.Status(dto.Status),
	)
}
