package playerhandlers

import (
	"context"

	"github.com/google/uuid"

	playerservice "github.com/matchpoint-club/tournament-hub/app/modules/player/application"
	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
)

// FakePlayerService provides a programmable stub for the player service.
type FakePlayerService struct {
	ListPlayersFunc  func(ctx context.Context) ([]*playerdb.Player, error)
	GetPlayerFunc    func(ctx context.Context, id uuid.UUID) (*playerdb.Player, error)
	CreatePlayerFunc func(ctx context.Context, player *playerdb.Player) (*playerdb.Player, error)
	UpdatePlayerFunc func(ctx context.Context, player *playerdb.Player) (*playerdb.Player, error)
	DeletePlayerFunc func(ctx context.Context, id uuid.UUID) error
}

func (f *FakePlayerService) ListPlayers(ctx context.Context) ([]*playerdb.Player, error) {
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx)
	}
	return nil, nil
}

func (f *FakePlayerService) GetPlayer(ctx context.Context, id uuid.UUID) (*playerdb.Player, error) {
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, id)
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerService) CreatePlayer(ctx context.Context, player *playerdb.Player) (*playerdb.Player, error) {
	if f.CreatePlayerFunc != nil {
		return f.CreatePlayerFunc(ctx, player)
	}
	player.ID = uuid.New()
	return player, nil
}

func (f *FakePlayerService) UpdatePlayer(ctx context.Context, player *playerdb.Player) (*playerdb.Player, error) {
	if f.UpdatePlayerFunc != nil {
		return f.UpdatePlayerFunc(ctx, player)
	}
	return player, nil
}

func (f *FakePlayerService) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	if f.DeletePlayerFunc != nil {
		return f.DeletePlayerFunc(ctx, id)
	}
	return nil
}

func (f *FakePlayerService) FetchAllPlayers(ctx context.Context) ([]*playerdb.Player, error) {
	return f.ListPlayers(ctx)
}

var _ playerservice.Service = (*FakePlayerService)(nil)
