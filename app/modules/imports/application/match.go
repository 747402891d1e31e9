package importservice

import (
	"sort"
	"strings"

	playerdb "github.com/matchpoint-club/tournament-hub/app/modules/player/infrastructure/repositories"
	"github.com/xrash/smetrics"
)

const (
	// matchThreshold is the minimum similarity score for a roster player to
	// be proposed as the matching player. At or below it the import is left
	// unmatched for human review.
	matchThreshold = 0.75

	// maxSimilarPlayers caps the candidate list surfaced for manual
	// disambiguation.
	maxSimilarPlayers = 5
)

// Similarity scores two normalized names in [0, 1], where 1.0 means an exact
// match. Implementations must be symmetric and score identical inputs as 1.0.
type Similarity func(a, b string) float64

// JaroWinkler is the default Similarity.
func JaroWinkler(a, b string) float64 {
	return smetrics.JaroWinkler(a, b, 0.7, 4)
}

// normalizeName lowercases a full name and collapses runs of whitespace.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Matcher scores imported players against an existing roster.
type Matcher struct {
	similarity Similarity
}

// NewMatcher creates a Matcher. A nil similarity falls back to JaroWinkler.
func NewMatcher(similarity Similarity) *Matcher {
	if similarity == nil {
		similarity = JaroWinkler
	}
	return &Matcher{similarity: similarity}
}

// MatchPlayers annotates every imported player occurrence with its match
// result. Occurrences sharing the same (firstname, lastname, club) tuple are
// scored once and share one result. The roster must be ordered by creation
// time: ties on equal scores go to the earliest-created player.
func (m *Matcher) MatchPlayers(roster []*playerdb.Player, data ParsedImportData) MatchedImportData {
	results := make(map[string]*PlayerMatchResult)
	matched := make(MatchedImportData, 0, len(data))

	for _, group := range data {
		mg := MatchedDiscipline{
			Key:   group.Key,
			Name:  group.Name,
			Class: group.Class,
			Teams: make([]MatchedTeam, 0, len(group.Teams)),
		}
		for _, team := range group.Teams {
			mt := make(MatchedTeam, 0, len(team))
			for _, p := range team {
				result, ok := results[p.Key()]
				if !ok {
					result = m.matchOne(roster, p)
					results[p.Key()] = result
				}
				mt = append(mt, MatchedPlayer{InsertPlayer: p, Match: result})
			}
			mg.Teams = append(mg.Teams, mt)
		}
		matched = append(matched, mg)
	}

	return matched
}

// matchOne scores one imported player against the whole roster.
func (m *Matcher) matchOne(roster []*playerdb.Player, p InsertPlayer) *PlayerMatchResult {
	name := normalizeName(p.FullName())

	scored := make([]ScoredPlayer, len(roster))
	for i, rp := range roster {
		scored[i] = ScoredPlayer{
			Player: rp,
			Score:  m.similarity(name, normalizeName(rp.FullName())),
		}
	}

	// Stable sort keeps roster insertion order among equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	result := &PlayerMatchResult{MostSimilarPlayers: []ScoredPlayer{}}
	if len(scored) == 0 {
		return result
	}

	best := scored[0]
	result.IsExactMatch = best.Score == 1.0
	if best.Score > matchThreshold {
		result.MatchingPlayer = best.Player
	}

	n := min(len(scored), maxSimilarPlayers)
	result.MostSimilarPlayers = scored[:n]

	return result
}
