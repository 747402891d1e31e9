package playerdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Player is a persisted roster player.
type Player struct {
	bun.BaseModel `bun:"table:players,alias:p"`

	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	FirstName string    `bun:"firstname,notnull" json:"firstname"`
	LastName  string    `bun:"lastname,notnull" json:"lastname"`
	Gender    string    `bun:"gender,notnull,type:varchar(1)" json:"gender"`
	Club      *string   `bun:"club,nullzero" json:"club,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
}

// FullName returns "<firstname> <lastname>".
func (p *Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
