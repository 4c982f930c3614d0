// Package companyrepo persists company aggregates, mapping them to and from
// their relational representation.
package companyrepo

import (
	"time"

	"buildmarket/internal/core/domain/model/company"
	"buildmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CompanyDTO represents the database structure for persisting company aggregates.
type CompanyDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	Role          int
	AverageRating *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for company entities.
func (CompanyDTO) TableName() string {
	return "companies"
}

func fromDomain(aggregate *company.Company) CompanyDTO {
	return CompanyDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		Name:          aggregate.Name(),
		Role:          int(aggregate.Role()),
		AverageRating: aggregate.AverageRating(),
	}
}

func toDomain(dto CompanyDTO) (*company.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return company.RestoreCompany(id, userID, dto.Name, company.Role(dto.Role), dto.AverageRating)
}
