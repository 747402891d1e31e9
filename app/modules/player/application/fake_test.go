package playerservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
)

// FakePlayerRepository provides a programmable stub for the playerdb.Repository interface.
type FakePlayerRepository struct {
	trace []string

	GetAllFunc  func(ctx context.Context, db bun.IDB) ([]*playerdb.Player, error)
	GetByIDFunc func(ctx context.Context, db bun.IDB, id uuid.UUID) (*playerdb.Player, error)
	CreateFunc  func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
	UpdateFunc  func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
	DeleteFunc  func(ctx context.Context, db bun.IDB, id uuid.UUID) error
}

func NewFakePlayerRepository() *FakePlayerRepository {
	return &FakePlayerRepository{trace: []string{}}
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakePlayerRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePlayerRepository) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepository) GetAll(ctx context.Context, db bun.IDB) ([]*playerdb.Player, error) {
	f.record("GetAll")
	if f.GetAllFunc != nil {
		return f.GetAllFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakePlayerRepository) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*playerdb.Player, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepository) Create(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, player)
	}
	player.ID = uuid.New()
	return nil
}

func (f *FakePlayerRepository) Update(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, player)
	}
	return nil
}

func (f *FakePlayerRepository) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	return nil
}

var _ playerdb.Repository = (*FakePlayerRepository)(nil)
