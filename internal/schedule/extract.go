package schedule

import (
	"github.com/goserg/fixturegen/internal/domain"
)

// Extract turns the matrix into count matchdays. competitors is the
// roster in the order the matrix was built for. A pairing against the bye
// becomes a bye match of the other competitor; otherwise the row
// competitor hosts the column competitor.
func Extract(competitors []domain.Competitor, mx Matrix, count int) []domain.Matchday {
	m := mx.Size()
	days := make([]domain.Matchday, count)
	for d := 1; d <= count; d++ {
		day := domain.Matchday{
			Number:  d,
			Index:   d,
			Matches: make([]domain.Match, 0, m/2),
		}
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				if i == j || mx.cells[i][j] != d {
					continue
				}
				home, away := competitors[i], competitors[j]
				switch {
				case home.Bye:
					day.Matches = append(day.Matches, domain.NewByeMatch(away))
				case away.Bye:
					day.Matches = append(day.Matches, domain.NewByeMatch(home))
				default:
					day.Matches = append(day.Matches, domain.NewMatch(home, away))
				}
			}
		}
		days[d-1] = day
	}
	return days
}
