package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/csiedev/meeting-records/internal/domain/entities"
)

// PersonRepository defines the interface for directory data access
type PersonRepository interface {
	// Create persists a new person together with its profile row
	Create(ctx context.Context, person *entities.Person) error

	// FindByID retrieves a person with its profile preloaded
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Person, error)

	// FindByEmail retrieves a person by email
	FindByEmail(ctx context.Context, email string) (*entities.Person, error)

	// FindByIDs retrieves the people matching the given ids
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Person, error)

	// List retrieves all people ordered by name
	List(ctx context.Context) ([]*entities.Person, error)

	// SearchByName retrieves people whose name contains the query
	SearchByName(ctx context.Context, query string) ([]*entities.Person, error)

	// ReplaceProfile atomically rewrites the directory columns, deletes
	// the old profile row and writes the new one in a single transaction
	ReplaceProfile(ctx context.Context, person *entities.Person, old entities.PersonType) error

	// UpdatePassword sets a new password hash
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error

	// Delete removes a person and, by cascade, its profile row
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts directory entries
	Count(ctx context.Context) (int64, error)

	// StudentIDExists reports whether a student id is already taken by
	// someone other than excludePersonID
	StudentIDExists(ctx context.Context, studentID string, excludePersonID uuid.UUID) (bool, error)
}
