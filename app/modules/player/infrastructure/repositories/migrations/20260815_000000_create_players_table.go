package playermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating players table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS players (
				id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				firstname TEXT NOT NULL,
				lastname TEXT NOT NULL,
				gender VARCHAR(1) NOT NULL,
				club TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_players_created_at ON players(created_at);
		`); err != nil {
			return fmt.Errorf("failed to create players table: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping players table...")

		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS players;`); err != nil {
			return fmt.Errorf("failed to drop players table: %w", err)
		}

		return nil
	})
}
