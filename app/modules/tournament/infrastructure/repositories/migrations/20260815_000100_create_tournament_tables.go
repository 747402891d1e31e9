package tournamentmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating tournament tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS tournaments (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					name VARCHAR(200) NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create tournaments table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS disciplines (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					tournament_id UUID NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
					name VARCHAR(200) NOT NULL,
					class VARCHAR(50),
					gender VARCHAR(1) NOT NULL,
					is_doubles BOOLEAN NOT NULL,
					charge DOUBLE PRECISION,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_disciplines_tournament_id ON disciplines(tournament_id);
			`); err != nil {
				return fmt.Errorf("failed to create disciplines table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS singles_entries (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					discipline_id UUID NOT NULL REFERENCES disciplines(id) ON DELETE CASCADE,
					player_id UUID NOT NULL REFERENCES players(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_singles_entries_discipline_id ON singles_entries(discipline_id);
			`); err != nil {
				return fmt.Errorf("failed to create singles_entries table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS doubles_pairs (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					discipline_id UUID NOT NULL REFERENCES disciplines(id) ON DELETE CASCADE,
					player1_id UUID NOT NULL REFERENCES players(id),
					player2_id UUID NOT NULL REFERENCES players(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_doubles_pairs_discipline_id ON doubles_pairs(discipline_id);
			`); err != nil {
				return fmt.Errorf("failed to create doubles_pairs table: %w", err)
			}

			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping tournament tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			for _, stmt := range []string{
				`DROP TABLE IF EXISTS doubles_pairs;`,
				`DROP TABLE IF EXISTS singles_entries;`,
				`DROP TABLE IF EXISTS disciplines;`,
				`DROP TABLE IF EXISTS tournaments;`,
			} {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return fmt.Errorf("failed to drop tournament tables: %w", err)
				}
			}
			return nil
		})
	})
}
