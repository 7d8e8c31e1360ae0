package domain

import (
	"github.com/google/uuid"
)

// CompetitorNamespace is the namespace competitor IDs are derived in.
var CompetitorNamespace = uuid.MustParse("6f1c2a52-3d0e-5b8a-9a57-0c4f1e7d2b10")

type Competitor struct {
	ID   uuid.UUID
	Name string
	Bye  bool
}

// NewCompetitor returns a competitor whose ID depends only on its name,
// so two competitors with the same name compare equal.
func NewCompetitor(name string) Competitor {
	return Competitor{
		ID:   uuid.NewSHA1(CompetitorNamespace, []byte(name)),
		Name: name,
	}
}

// NewBye returns the placeholder opponent for a roster with an odd number
// of competitors.
func NewBye(label string) Competitor {
	c := NewCompetitor(label)
	c.Bye = true
	return c
}

func (c Competitor) String() string {
	return c.Name
}
