package playerdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for player persistence.
type Repository interface {
	// GetAll retrieves every player ordered by creation time, earliest first.
	GetAll(ctx context.Context, db bun.IDB) ([]*Player, error)

	// GetByID retrieves a player by ID.
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Player, error)

	// Create inserts a new player and fills in its generated fields.
	Create(ctx context.Context, db bun.IDB, player *Player) error

	// Update overwrites a player's mutable fields.
	Update(ctx context.Context, db bun.IDB, player *Player) error

	// Delete removes a player by ID.
	Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error
}
