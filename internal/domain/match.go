package domain

import (
	"bytes"

	"github.com/google/uuid"
)

// Match is one pairing of a matchday. A bye match has Bye set, Home is the
// resting competitor and Away is the zero value.
type Match struct {
	Home Competitor
	Away Competitor
	Bye  bool
}

func NewMatch(home, away Competitor) Match {
	return Match{Home: home, Away: away}
}

func NewByeMatch(c Competitor) Match {
	return Match{Home: c, Bye: true}
}

// Involves reports whether c takes part in the match, resting included.
func (m Match) Involves(c Competitor) bool {
	if m.Bye {
		return m.Home == c
	}
	return m.Home == c || m.Away == c
}

type Matchday struct {
	// Number is the 1-based position of the matchday in the presented
	// sequence.
	Number int
	// Index is the matrix matchday index the matches were drawn from.
	Index   int
	Matches []Match
}

// Scored returns the matches that are actually played.
func (d Matchday) Scored() []Match {
	res := make([]Match, 0, len(d.Matches))
	for _, m := range d.Matches {
		if !m.Bye {
			res = append(res, m)
		}
	}
	return res
}

// Byes returns the bye matches of the matchday.
func (d Matchday) Byes() []Match {
	var res []Match
	for _, m := range d.Matches {
		if m.Bye {
			res = append(res, m)
		}
	}
	return res
}

// PairKey identifies an unordered pair of competitors by ID.
type PairKey struct {
	A, B uuid.UUID
}

func NewPairKey(a, b Competitor) PairKey {
	if bytes.Compare(a.ID[:], b.ID[:]) > 0 {
		a, b = b, a
	}
	return PairKey{A: a.ID, B: b.ID}
}
