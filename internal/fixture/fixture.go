package fixture

import (
	"io"

	"github.com/google/uuid"
	"github.com/goserg/fixturegen/internal/domain"
	"github.com/goserg/fixturegen/internal/normalize"
	"github.com/goserg/fixturegen/internal/render"
	"github.com/goserg/fixturegen/internal/roster"
	"github.com/goserg/fixturegen/internal/schedule"
	"github.com/goserg/fixturegen/internal/shuffle"
	"github.com/sirupsen/logrus"
)

// InvalidInputError is returned by New for a competitor list that cannot
// be scheduled.
type InvalidInputError = roster.InvalidInputError

// Fixture is a round-robin schedule for a list of competitors. It is not
// safe for concurrent use.
type Fixture struct {
	id     uuid.UUID
	opts   Options
	roster *roster.Roster
	src    shuffle.Source
	log    *logrus.Entry

	// order[k] is the matrix matchday presented in position k+1.
	order     []int
	matrix    schedule.Matrix
	matchdays []domain.Matchday
	generated bool
}

func New(names []string, opts Options) (*Fixture, error) {
	if opts.ByeLabel == "" {
		opts.ByeLabel = roster.DefaultByeLabel
	}
	var rosterOpts []roster.Option
	if opts.NormalizeNames {
		names = normalize.Names(names)
		opts.ByeLabel = normalize.Name(opts.ByeLabel)
		rosterOpts = append(rosterOpts, roster.WithKey(normalize.Key))
	}
	r, err := roster.New(names, opts.ByeLabel, rosterOpts...)
	if err != nil {
		return nil, err
	}

	src := opts.Source
	if src == nil {
		src = shuffle.System()
	}
	l := opts.Log
	if l == nil {
		l = logrus.New()
		l.SetOutput(io.Discard)
	}
	id := uuid.New()
	f := &Fixture{
		id:     id,
		opts:   opts,
		roster: r,
		src:    src,
		log:    l.WithFields(logrus.Fields{"name": "fixture", "fixture_id": id}),
		order:  shuffle.Sequence(opts.legs() * (r.Len() - 1)),
	}
	f.log.WithFields(logrus.Fields{
		"competitors": r.Count(),
		"slots":       r.Len(),
		"legs":        opts.legs(),
	}).Debug("fixture created")

	if opts.RandomizeRoster {
		f.RandomizeRoster()
	}
	if opts.RandomizeDisplayOrder {
		f.RandomizeDisplayOrder()
	}
	if opts.AutoGenerate {
		f.Generate()
	}
	return f, nil
}

// Generate rebuilds the matrix from the current roster order and derives
// the matchdays in display order. It is deterministic for a fixed roster
// and display order.
func (f *Fixture) Generate() {
	mx, err := schedule.Build(f.roster.Len())
	if err != nil {
		// a roster always has an even number of slots, at least two
		panic(err)
	}
	days := schedule.Extract(f.roster.Competitors(), mx, len(f.order))
	ordered := make([]domain.Matchday, len(days))
	for pos, idx := range f.order {
		day := days[idx-1]
		day.Number = pos + 1
		ordered[pos] = day
	}
	f.matrix = mx
	f.matchdays = ordered
	f.generated = true
	f.log.WithField("matchdays", len(ordered)).Debug("fixture generated")
}

// Randomize shuffles both the roster and the display order. Call Generate
// to apply.
func (f *Fixture) Randomize() {
	f.RandomizeRoster()
	f.RandomizeDisplayOrder()
}

// RandomizeRoster shuffles the competitors, changing who meets whom on
// which matchday and who hosts. Call Generate to apply.
func (f *Fixture) RandomizeRoster() {
	f.roster.Shuffle(f.src)
	f.log.Debug("roster randomized")
}

// RandomizeDisplayOrder shuffles the order matchdays are presented in
// without changing their matches. Call Generate to apply.
func (f *Fixture) RandomizeDisplayOrder() {
	f.order = shuffle.Order(f.src, len(f.order))
	f.log.WithField("order", f.order).Debug("matchday order randomized")
}

func (f *Fixture) ID() uuid.UUID {
	return f.id
}

func (f *Fixture) ByeLabel() string {
	return f.roster.ByeLabel()
}

func (f *Fixture) Legs() int {
	return f.opts.legs()
}

func (f *Fixture) Generated() bool {
	return f.generated
}

// Competitors returns the roster in its current order, bye included.
func (f *Fixture) Competitors() []domain.Competitor {
	return f.roster.Competitors()
}

// DisplayOrder returns the matrix matchday shown at each position.
func (f *Fixture) DisplayOrder() []int {
	return append([]int(nil), f.order...)
}

// Matrix returns the matrix of the last generation.
func (f *Fixture) Matrix() schedule.Matrix {
	return f.matrix
}

// Matchdays returns the matchdays of the last generation in display
// order, or nil if the fixture has not been generated.
func (f *Fixture) Matchdays() []domain.Matchday {
	if !f.generated {
		return nil
	}
	res := make([]domain.Matchday, len(f.matchdays))
	for i, day := range f.matchdays {
		day.Matches = append([]domain.Match(nil), day.Matches...)
		res[i] = day
	}
	return res
}

func (f *Fixture) String() string {
	return render.Text(f.matchdays, f.ByeLabel())
}
