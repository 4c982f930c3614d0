package queries

import (
	"context"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/project"
	"buildmarket/internal/core/domain/model/quote"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenProjectsQueryHandler retrieves open projects from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOpenProjectsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenProjectsQueryHandler creates a handler for open project queries.
// Requires a GORM database connection for query execution.
func NewGetOpenProjectsQueryHandler(db *gorm.DB) GetOpenProjectsQueryHandler {
	return GetOpenProjectsQueryHandler{db: db}
}

// Handle executes the query to retrieve open projects.
// Results are sorted newest first and carry the live count of submitted quotes.
func (h GetOpenProjectsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenProjectsQuery,
) ([]GetOpenProjectsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	projects := make([]GetOpenProjectsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.company_id,
			p.title,
			p.location,
			p.specialty,
			p.budget_min,
			p.budget_max,
			p.deadline,
			COUNT(q.id) AS quote_count
		FROM projects p
		LEFT JOIN quotes q ON q.project_id = p.id AND q.status = ?
		WHERE p.status = ?
		GROUP BY p.id
		ORDER BY p.created_at DESC
		LIMIT ? OFFSET ?
	`, quote.StatusSubmitted, project.StatusOpen, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenProjectsQueryResponse
		var id, companyID uuid.UUID

		err = rows.Scan(
			&id,
			&companyID,
			&resp.Title,
			&resp.Location,
			&resp.Specialty,
			&resp.BudgetMin,
			&resp.BudgetMax,
			&resp.Deadline,
			&resp.QuoteCount,
		)
		if err != nil {
			return nil, err
		}

		projectID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = projectID

		ownerID, idErr := kernel.UUIDFromBytes(companyID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CompanyID = ownerID

		projects = append(projects, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}
