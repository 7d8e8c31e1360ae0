package fixture

import (
	"github.com/goserg/fixturegen/internal/roster"
	"github.com/goserg/fixturegen/internal/shuffle"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// ByeLabel names the placeholder opponent of a resting competitor.
	// Empty means roster.DefaultByeLabel.
	ByeLabel string
	// DoubleLeg schedules every pairing twice with home and away reversed.
	DoubleLeg bool
	// RandomizeRoster shuffles the competitors before the first generation.
	RandomizeRoster bool
	// RandomizeDisplayOrder shuffles the order matchdays are presented in.
	RandomizeDisplayOrder bool
	// AutoGenerate builds the schedule during New.
	AutoGenerate bool
	// NormalizeNames trims and NFC-normalizes names and compares them
	// case-insensitively. Names are opaque strings otherwise.
	NormalizeNames bool
	// Source drives both randomizations. Nil means shuffle.System().
	Source shuffle.Source
	// Log receives debug output. Nil discards it.
	Log *logrus.Logger
}

// DefaultOptions returns the behaviour of a plain fixture: two legs with
// randomized competitors and matchdays, generated right away.
func DefaultOptions() Options {
	return Options{
		ByeLabel:              roster.DefaultByeLabel,
		DoubleLeg:             true,
		RandomizeRoster:       true,
		RandomizeDisplayOrder: true,
		AutoGenerate:          true,
	}
}

func (o Options) legs() int {
	if o.DoubleLeg {
		return 2
	}
	return 1
}
