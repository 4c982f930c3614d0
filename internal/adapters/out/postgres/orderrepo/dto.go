// Package orderrepo persists order aggregates, mapping them to and from their
// relational representation. A unique index on quote_id guarantees a quote
// spawns at most one order.
package orderrepo

import (
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID              uuid.UUID `gorm:"type:uuid;index"`
	QuoteID                uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	ContractorCompanyID    uuid.UUID `gorm:"type:uuid;index"`
	SubcontractorCompanyID uuid.UUID `gorm:"type:uuid;index"`
	Amount                 int64     `gorm:"type:bigint"`
	Status                 int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                     aggregate.ID().Bytes(),
		ProjectID:              aggregate.ProjectID().Bytes(),
		QuoteID:                aggregate.QuoteID().Bytes(),
		ContractorCompanyID:    aggregate.ContractorCompanyID().Bytes(),
		SubcontractorCompanyID: aggregate.SubcontractorCompanyID().Bytes(),
		Amount:                 aggregate.Amount().Amount(),
		Status:                 int(aggregate.Status()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	projectID, err := kernel.UUIDFromBytes(dto.ProjectID[:])
	if err != nil {
		return nil, err
	}

	quoteID, err := kernel.UUIDFromBytes(dto.QuoteID[:])
	if err != nil {
		return nil, err
	}

	contractorID, err := kernel.UUIDFromBytes(dto.ContractorCompanyID[:])
	if err != nil {
		return nil, err
	}

	subcontractorID, err := kernel.UUIDFromBytes(dto.SubcontractorCompanyID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		projectID,
		quoteID,
		contractorID,
		subcontractorID,
		amount,
		order.Status(dto.Status),
	)
}
