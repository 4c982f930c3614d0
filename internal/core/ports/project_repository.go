package ports

import (
	"context"
	"time"

	"buildmarket/internal/core/domain/model/kernel"
	"buildmarket/internal/core/domain/model/project"
)

// ProjectRepository defines the persistence contract for project aggregates.
type ProjectRepository interface {
	// Add persists a new project aggregate to storage.
	Add(ctx context.Context, aggregate *project.Project) error

	// Update persists changes to an existing project aggregate.
	Update(ctx context.Context, aggregate *project.Project) error

	// Get retrieves a project aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*project.Project, error)

	// GetForUpdate retrieves a project while taking a row-level write lock.
	// The quote acceptance workflow locks the project before checking it is
	// still open, so two racing accepts serialize and the loser sees closed.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*project.Project, error)

	// GetAllOpenPastDeadline retrieves open projects whose deadline is before
	// the given moment. Used by the deadline sweep job.
	GetAllOpenPastDeadline(ctx context.Context, moment time.Time) ([]*project.Project, error)
}
