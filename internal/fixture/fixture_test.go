package fixture

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goserg/fixturegen/internal/domain"
	"github.com/goserg/fixturegen/internal/render"
	"github.com/goserg/fixturegen/internal/roster"
	"github.com/goserg/fixturegen/internal/shuffle"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type FixtureSuite struct {
	suite.Suite
	conmebol []string
}

func TestFixture(t *testing.T) {
	suite.Run(t, &FixtureSuite{})
}

func (s *FixtureSuite) SetupTest() {
	s.conmebol = []string{"Paraguay", "Brasil", "Argentina", "Perú", "Chile", "Ecuador", "Colombia"}
}

func plain(doubleLeg bool) Options {
	return Options{DoubleLeg: doubleLeg, AutoGenerate: true}
}

func pairsOf(days []domain.Matchday) map[domain.PairKey][]domain.Match {
	pairs := make(map[domain.PairKey][]domain.Match)
	for _, day := range days {
		for _, m := range day.Scored() {
			key := domain.NewPairKey(m.Home, m.Away)
			pairs[key] = append(pairs[key], m)
		}
	}
	return pairs
}

func (s *FixtureSuite) TestFourSingleLeg() {
	f, err := New([]string{"A", "B", "C", "D"}, plain(false))
	s.Require().NoError(err)

	days := f.Matchdays()
	s.Require().Len(days, 3)
	for i, day := range days {
		s.Equal(i+1, day.Number)
		s.Len(day.Matches, 2)
	}
	pairs := pairsOf(days)
	s.Len(pairs, 6)
	for _, p := range [][2]string{{"A", "B"}, {"A", "C"}, {"A", "D"}, {"B", "C"}, {"B", "D"}, {"C", "D"}} {
		key := domain.NewPairKey(domain.NewCompetitor(p[0]), domain.NewCompetitor(p[1]))
		s.Len(pairs[key], 1, "%v", key)
	}
}

func (s *FixtureSuite) TestThreeSingleLeg() {
	f, err := New([]string{"A", "B", "C"}, plain(false))
	s.Require().NoError(err)

	days := f.Matchdays()
	s.Require().Len(days, 3)
	byes := make(map[string]int)
	for _, day := range days {
		s.Len(day.Scored(), 1)
		s.Require().Len(day.Byes(), 1)
		byes[day.Byes()[0].Home.Name]++
	}
	s.Equal(map[string]int{"A": 1, "B": 1, "C": 1}, byes)
}

func (s *FixtureSuite) TestFourDoubleLeg() {
	f, err := New([]string{"A", "B", "C", "D"}, plain(true))
	s.Require().NoError(err)

	days := f.Matchdays()
	s.Require().Len(days, 6)
	pairs := pairsOf(days)
	s.Len(pairs, 6)
	for key, matches := range pairs {
		s.Require().Len(matches, 2, "%v", key)
		s.Equal(matches[0].Home, matches[1].Away, "%v", key)
		s.Equal(matches[0].Away, matches[1].Home, "%v", key)
	}
}

func (s *FixtureSuite) TestOddRosterNeverShowsBye() {
	opts := DefaultOptions()
	opts.Source = shuffle.Seeded(3)
	f, err := New(s.conmebol, opts)
	s.Require().NoError(err)

	days := f.Matchdays()
	s.Require().Len(days, 14)
	for _, day := range days {
		s.Len(day.Matches, 4)
		s.Len(day.Byes(), 1)
		for _, m := range day.Scored() {
			s.NotEqual("Free", m.Home.Name)
			s.NotEqual("Free", m.Away.Name)
			s.False(m.Home.Bye || m.Away.Bye)
		}
		s.False(day.Byes()[0].Home.Bye)
	}
	for key, matches := range pairsOf(days) {
		s.Len(matches, 2, "%v", key)
	}
}

func (s *FixtureSuite) TestInvalidInput() {
	tests := []struct {
		name  string
		names []string
		opts  Options
	}{
		{name: "empty", names: nil, opts: plain(false)},
		{name: "single", names: []string{"A"}, opts: plain(false)},
		{name: "bye label", names: []string{"A", "Libre"}, opts: Options{ByeLabel: "Libre"}},
		{name: "default bye label", names: []string{"A", "Free"}, opts: plain(true)},
		{name: "duplicate", names: []string{"A", "B", "A"}, opts: plain(true)},
		{name: "normalized duplicate", names: []string{"Chile", " CHILE"}, opts: Options{NormalizeNames: true}},
		{name: "line break", names: []string{"A\nMatchday 9", "B"}, opts: plain(false)},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			f, err := New(tt.names, tt.opts)
			s.Nil(f)
			var inputErr *InvalidInputError
			s.True(errors.As(err, &inputErr), "%v", err)
		})
	}
}

func (s *FixtureSuite) TestGenerateIsIdempotent() {
	opts := plain(true)
	opts.Source = shuffle.Seeded(11)
	opts.RandomizeRoster = true
	opts.RandomizeDisplayOrder = true
	f, err := New(s.conmebol, opts)
	s.Require().NoError(err)

	before := f.Matchdays()
	rows := f.Matrix().Rows()
	text := f.String()
	f.Generate()
	s.Equal(before, f.Matchdays())
	s.Equal(rows, f.Matrix().Rows())
	s.Equal(text, f.String())
}

func (s *FixtureSuite) TestNoAutoGenerate() {
	f, err := New([]string{"A", "B"}, Options{})
	s.Require().NoError(err)
	s.False(f.Generated())
	s.Nil(f.Matchdays())
	s.Equal("", f.String())

	f.Generate()
	s.True(f.Generated())
	s.Len(f.Matchdays(), 1)
	s.Equal("Matchday 1\nA  vs.  B\n\n", f.String())
}

func (s *FixtureSuite) TestSeededRunsAreReproducible() {
	opts := DefaultOptions()
	opts.Source = shuffle.Seeded(99)
	a, err := New(s.conmebol, opts)
	s.Require().NoError(err)
	opts.Source = shuffle.Seeded(99)
	b, err := New(s.conmebol, opts)
	s.Require().NoError(err)

	s.Equal(a.String(), b.String())
	s.NotEqual(a.ID(), b.ID())
}

func (s *FixtureSuite) TestRandomizeDisplayOrderKeepsMatchdays() {
	opts := plain(true)
	opts.Source = shuffle.Seeded(5)
	f, err := New(s.conmebol, opts)
	s.Require().NoError(err)
	byIndex := make(map[int][]domain.Match)
	for _, day := range f.Matchdays() {
		s.Equal(day.Number, day.Index)
		byIndex[day.Index] = day.Matches
	}

	f.RandomizeDisplayOrder()
	f.Generate()

	order := f.DisplayOrder()
	s.NotEqual(shuffle.Sequence(len(order)), order)
	for pos, day := range f.Matchdays() {
		s.Equal(pos+1, day.Number)
		s.Equal(order[pos], day.Index)
		s.Equal(byIndex[day.Index], day.Matches)
	}
}

func (s *FixtureSuite) TestRandomizeRosterKeepsCompetitors() {
	opts := plain(false)
	opts.Source = shuffle.Seeded(8)
	f, err := New(s.conmebol, opts)
	s.Require().NoError(err)
	before := mapset.NewSet(f.Competitors()...)

	f.Randomize()
	f.Generate()

	s.True(before.Equal(mapset.NewSet(f.Competitors()...)))
	s.Len(pairsOf(f.Matchdays()), 21)
	s.NoError(f.Matrix().Check())
}

func (s *FixtureSuite) TestRenderRoundTrip() {
	opts := DefaultOptions()
	opts.ByeLabel = "Libre"
	opts.Source = shuffle.Seeded(21)
	f, err := New(s.conmebol, opts)
	s.Require().NoError(err)

	parsed, err := render.Parse(strings.NewReader(f.String()), f.ByeLabel())
	s.Require().NoError(err)
	s.Require().Len(parsed, len(f.Matchdays()))
	for i, day := range f.Matchdays() {
		s.Equal(day.Number, parsed[i].Number)
		s.Equal(append(day.Scored(), day.Byes()...), parsed[i].Matches)
	}
}

func (s *FixtureSuite) TestRenderRoundTripNamesLikeBye() {
	f, err := New([]string{"Free: A", "B", "C"}, plain(true))
	s.Require().NoError(err)

	parsed, err := render.Parse(strings.NewReader(f.String()), f.ByeLabel())
	s.Require().NoError(err)
	s.Require().Len(parsed, len(f.Matchdays()))
	for i, day := range f.Matchdays() {
		s.Equal(append(day.Scored(), day.Byes()...), parsed[i].Matches)
	}
}

func (s *FixtureSuite) TestNormalizeNames() {
	opts := plain(false)
	opts.NormalizeNames = true
	opts.ByeLabel = " Libre "
	f, err := New([]string{" Perú", "Chile  ", "Bolivia"}, opts)
	s.Require().NoError(err)

	s.Equal("Libre", f.ByeLabel())
	names := make([]string, 0, 4)
	for _, c := range f.Competitors() {
		names = append(names, c.Name)
	}
	s.Equal([]string{"Perú", "Chile", "Bolivia", "Libre"}, names)
}

func (s *FixtureSuite) TestLogsCarryFixtureID() {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	opts := plain(false)
	opts.Log = l
	f, err := New([]string{"A", "B"}, opts)
	s.Require().NoError(err)

	s.Contains(buf.String(), "fixture generated")
	s.Contains(buf.String(), f.ID().String())
}

func (s *FixtureSuite) TestAccessors() {
	f, err := New([]string{"A", "B", "C"}, Options{DoubleLeg: true})
	s.Require().NoError(err)
	s.Equal(roster.DefaultByeLabel, f.ByeLabel())
	s.Equal(2, f.Legs())
	s.Equal(shuffle.Sequence(6), f.DisplayOrder())
	s.Len(f.Competitors(), 4)
	s.True(f.Competitors()[3].Bye)
}
