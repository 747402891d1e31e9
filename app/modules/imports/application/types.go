package importservice

import (
	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
)

// Gender codes as they appear in entry sheets and the players table.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "W"
)

// Column headers expected in an uploaded entry sheet.
const (
	FieldClass         = "Spielklasse"
	FieldDiscipline    = "Disziplin"
	FieldLastName      = "Name"
	FieldFirstName     = "Vorname"
	FieldGender        = "Geschlecht"
	FieldClub          = "Verein"
	FieldPartnerLast   = "Partner Name"
	FieldPartnerFirst  = "Partner Vorname"
	FieldPartnerGender = "Partner Geschlecht"
	FieldPartnerClub   = "Partner Verein"
)

// WithdrawalSentinel in the partner-surname column marks a withdrawn entry.
// Such rows are dropped before validation.
const WithdrawalSentinel = "Freimeldung"

// RawRow is one decoded spreadsheet row, keyed by column header.
type RawRow map[string]string

// ImportRow is one validated entry-sheet row.
type ImportRow struct {
	Class      string
	Discipline string
	LastName   string
	FirstName  string
	Gender     Gender
	Club       string
	Partner    *Partner
}

// Partner is the doubles-partner block of an entry row. It is either fully
// present or absent, never partial.
type Partner struct {
	LastName  string
	FirstName string
	Gender    Gender
	Club      string
}

// InsertPlayer is a player parsed from an import, not yet persisted.
type InsertPlayer struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Gender    Gender `json:"gender"`
	Club      string `json:"club,omitempty"`
}

// Key returns the dedup key for an imported player. Two occurrences with the
// same key share one match result.
func (p InsertPlayer) Key() string {
	return p.FirstName + ";" + p.LastName + ";" + p.Club
}

// FullName returns "<firstname> <lastname>".
func (p InsertPlayer) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Team is one entry within a discipline: one player for singles, two for
// doubles with the partner at index 1.
type Team []InsertPlayer

// DisciplineGroup holds the teams entered under one discipline key.
type DisciplineGroup struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Class string `json:"class,omitempty"`
	Teams []Team `json:"teams"`
}

// ParsedImportData is the grouped import, disciplines in first-seen order.
type ParsedImportData []DisciplineGroup

// ScoredPlayer pairs a roster player with its similarity score.
type ScoredPlayer struct {
	Player *playerdb.Player `json:"player"`
	Score  float64          `json:"score"`
}

// PlayerMatchResult classifies one imported player against the roster.
type PlayerMatchResult struct {
	IsExactMatch       bool             `json:"isExactMatch"`
	MatchingPlayer     *playerdb.Player `json:"matchingPlayer,omitempty"`
	MostSimilarPlayers []ScoredPlayer   `json:"mostSimilarPlayers"`
}

// MatchedPlayer is an imported player annotated with its match result.
type MatchedPlayer struct {
	InsertPlayer
	Match *PlayerMatchResult `json:"match"`
}

// MatchedTeam mirrors Team with match annotations.
type MatchedTeam []MatchedPlayer

// MatchedDiscipline mirrors DisciplineGroup with match annotations.
type MatchedDiscipline struct {
	Key   string        `json:"key"`
	Name  string        `json:"name"`
	Class string        `json:"class,omitempty"`
	Teams []MatchedTeam `json:"teams"`
}

// MatchedImportData is the grouped import ready for review, same shape and
// order as ParsedImportData.
type MatchedImportData []MatchedDiscipline
