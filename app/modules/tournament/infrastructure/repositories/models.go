package tournamentdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
)

// Tournament is a persisted tournament.
type Tournament struct {
	bun.BaseModel `bun:"table:tournaments,alias:t"`

	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull,type:varchar(200)" json:"name"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// Discipline is a competition category within a tournament.
type Discipline struct {
	bun.BaseModel `bun:"table:disciplines,alias:d"`

	ID           uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	TournamentID uuid.UUID `bun:"tournament_id,notnull,type:uuid" json:"tournament_id"`
	Name         string    `bun:"name,notnull,type:varchar(200)" json:"name"`
	Class        string    `bun:"class,nullzero,type:varchar(50)" json:"class,omitempty"`
	Gender       string    `bun:"gender,notnull,type:varchar(1)" json:"gender"`
	IsDoubles    bool      `bun:"is_doubles,notnull" json:"is_doubles"`
	Charge       *float64  `bun:"charge,nullzero" json:"charge,omitempty"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// SinglesEntry is one player entered in a singles discipline.
type SinglesEntry struct {
	bun.BaseModel `bun:"table:singles_entries,alias:se"`

	ID           uuid.UUID        `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	DisciplineID uuid.UUID        `bun:"discipline_id,notnull,type:uuid" json:"discipline_id"`
	PlayerID     uuid.UUID        `bun:"player_id,notnull,type:uuid" json:"player_id"`
	Player       *playerdb.Player `bun:"rel:belongs-to,join:player_id=id" json:"player,omitempty"`
	CreatedAt    time.Time        `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// DoublesPair is one pair entered in a doubles discipline.
type DoublesPair struct {
	bun.BaseModel `bun:"table:doubles_pairs,alias:dp"`

	ID           uuid.UUID        `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	DisciplineID uuid.UUID        `bun:"discipline_id,notnull,type:uuid" json:"discipline_id"`
	Player1ID    uuid.UUID        `bun:"player1_id,notnull,type:uuid" json:"player1_id"`
	Player2ID    uuid.UUID        `bun:"player2_id,notnull,type:uuid" json:"player2_id"`
	Player1      *playerdb.Player `bun:"rel:belongs-to,join:player1_id=id" json:"player1,omitempty"`
	Player2      *playerdb.Player `bun:"rel:belongs-to,join:player2_id=id" json:"player2,omitempty"`
	CreatedAt    time.Time        `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}
