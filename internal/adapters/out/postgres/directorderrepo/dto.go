// Package directorderrepo persists direct order aggregates, mapping them to
// and from their relational representation.
package directorderrepo

import (
	"time"

	"buildmarket/internal/core/domain/model/directorder"
	"buildmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DirectOrderDTO represents the database structure for persisting direct orders.
type DirectOrderDTO struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContractorCompanyID    uuid.UUID `gorm:"type:uuid;index"`
	SubcontractorCompanyID uuid.UUID `gorm:"type:uuid;index"`
	Title                  string
	Description            string
	Location               string
	Amount                 int64 `gorm:"type:bigint"`
	Deadline               *time.Time
	Specialty              string
	Status                 int
	DeclineReason          string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName specifies the database table name for direct order entities.
func (DirectOrderDTO) TableName() string {
	return "direct_orders"
}

func fromDomain(aggregate *directorder.DirectOrder) DirectOrderDTO {
	return DirectOrderDTO{
		ID:                     aggregate.ID().Bytes(),
		ContractorCompanyID:    aggregate.ContractorCompanyID().Bytes(),
		SubcontractorCompanyID: aggregate.SubcontractorCompanyID().Bytes(),
		Title:                  aggregate.Title(),
		Description:            aggregate.Description(),
		Location:               aggregate.Location(),
		Amount:                 aggregate.Amount().Amount(),
		Deadline:               aggregate.Deadline(),
		Specialty:              aggregate.Specialty(),
		Status:                 int(aggregate.Status()),
		DeclineReason:          aggregate.DeclineReason(),
	}
}

func toDomain(dto DirectOrderDTO) (*directorder.DirectOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	return directorder.RestoreDirectOrder(
		id,
		contractorID,
		subcontractorID,
		dto.Title,
		dto.Description,
		dto.Location,
		amount,
		dto.Deadline,
		dto.Specialty,
		directorder.Status(dto.Status),
		dto.DeclineReason,
	)
}
