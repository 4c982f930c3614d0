// Package projectrepo persists project aggregates, mapping them to and from
// their relational representation.
package projectrepo

import (
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/project"

	"github.com/google/uuid"
)

// ProjectDTO represents the database structure for persisting project aggregates.
// Status is indexed for the open listing and the deadline sweep.
type ProjectDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string
	Location    string
	BudgetMin   *int64 `gorm:"type:bigint"`
	BudgetMax   *int64 `gorm:"type:bigint"`
	Specialty   string
	Deadline    *time.Time
	Status      int `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for project entities.
func (ProjectDTO) TableName() string {
	return "projects"
}

func fromDomain(aggregate *project.Project) ProjectDTO {
	var budgetMin, budgetMax *int64
	if m := aggregate.BudgetMin(); m != nil {
		v := m.Amount()
		budgetMin = &v
	}
	if m := aggregate.BudgetMax(); m != nil {
		v := m.Amount()
		budgetMax = &v
	}

	return ProjectDTO{
		ID:          aggregate.ID().Bytes(),
		CompanyID:   aggregate.CompanyID().Bytes(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Location:    aggregate.Location(),
		BudgetMin:   budgetMin,
		BudgetMax:   budgetMax,
		Specialty:   aggregate.Specialty(),
		Deadline:    aggregate.Deadline(),
		Status:      int(aggregate.Status()),
	}
}

func toDomain(dto ProjectDTO) (*project.Project, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	var budgetMin, budgetMax *kernel.Money
	if dto.BudgetMin != nil {
		m, moneyErr := kernel.NewMoney(*dto.BudgetMin)
		if moneyErr != nil {
			return nil, moneyErr
		}
		budgetMin = &m
	}
	if dto.BudgetMax != nil {
		m, moneyErr := kernel.NewMoney(*dto.BudgetMax)
		if moneyErr != nil {
			return nil, moneyErr
		}
		budgetMax = &m
	}

	return project.RestoreProject(
		id,
		companyID,
		dto.Title,
		dto.Description,
		dto.Location,
		budgetMin,
		budgetMax,
		dto.Specialty,
		dto.Deadline,
		project.Status(dto.Status),
	)
}
