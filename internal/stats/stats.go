package stats

import (
	"fmt"
	"io"
	"text/tabwriter"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/goserg/fixturegen/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type CompetitorStats struct {
	Competitor domain.Competitor
	Home       int
	Away       int
	Byes       int
	Opponents  int
}

func (s CompetitorStats) Played() int {
	return s.Home + s.Away
}

// Summarize counts home, away and bye matches of every competitor,
// identified by ID. The result is sorted by name with the collation rules
// of lang.
func Summarize(matchdays []domain.Matchday, lang language.Tag) []CompetitorStats {
	byID := make(map[uuid.UUID]*CompetitorStats)
	opponents := make(map[uuid.UUID]mapset.Set[uuid.UUID])
	get := func(c domain.Competitor) *CompetitorStats {
		s, ok := byID[c.ID]
		if !ok {
			s = &CompetitorStats{Competitor: c}
			byID[c.ID] = s
			opponents[c.ID] = mapset.NewThreadUnsafeSet[uuid.UUID]()
		}
		return s
	}
	for _, day := range matchdays {
		for _, m := range day.Matches {
			if m.Bye {
				get(m.Home).Byes++
				continue
			}
			get(m.Home).Home++
			get(m.Away).Away++
			opponents[m.Home.ID].Add(m.Away.ID)
			opponents[m.Away.ID].Add(m.Home.ID)
		}
	}

	res := make([]CompetitorStats, 0, len(byID))
	for id, s := range byID {
		s.Opponents = opponents[id].Cardinality()
		res = append(res, *s)
	}
	names := make([]string, len(res))
	for i := range res {
		names[i] = res[i].Competitor.Name
	}
	collate.New(lang).Sort(byName{stats: res, names: names})
	return res
}

type byName struct {
	stats []CompetitorStats
	names []string
}

func (b byName) Len() int { return len(b.stats) }

func (b byName) Swap(i, j int) {
	b.stats[i], b.stats[j] = b.stats[j], b.stats[i]
	b.names[i], b.names[j] = b.names[j], b.names[i]
}

func (b byName) Bytes(i int) []byte { return []byte(b.names[i]) }

// MaxImbalance returns the largest difference between home and away
// matches of any competitor.
func MaxImbalance(summary []CompetitorStats) int {
	worst := 0
	for _, s := range summary {
		diff := s.Home - s.Away
		if diff < 0 {
			diff = -diff
		}
		if diff > worst {
			worst = diff
		}
	}
	return worst
}

// Tolerance is the largest home/away imbalance a schedule of n
// competitors over the given legs can show. Over two legs every pairing
// is hosted once by each side. Over one leg an even roster plays an odd
// number of matches each, so the gap is one. Resting against the bye can
// take one home or away match away, which widens it to two.
func Tolerance(n, legs int) int {
	switch {
	case legs >= 2:
		return 0
	case n%2 == 0:
		return 1
	default:
		return 2
	}
}

// Write prints the summary as a table.
func Write(w io.Writer, summary []CompetitorStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "Competitor\tHome\tAway\tByes\tOpponents\t"); err != nil {
		return err
	}
	for _, s := range summary {
		_, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n",
			s.Competitor.Name, s.Home, s.Away, s.Byes, s.Opponents)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
