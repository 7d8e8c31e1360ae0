package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goserg/fixturegen/internal/domain"
)

var ErrMalformed = errors.New("render: malformed fixture text")

// Parse reads text produced by Text back into matchdays. Index is not part
// of the text and is left zero. A line holding the versus separator is a
// match even when the home name starts with the bye prefix.
func Parse(r io.Reader, byeLabel string) ([]domain.Matchday, error) {
	var (
		days    []domain.Matchday
		current *domain.Matchday
		lineNo  int
	)
	byePrefix := byeLabel + byeSeparator
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		switch {
		case line == "":
			current = nil
		case strings.HasPrefix(line, matchdayHeading) && current == nil:
			number, err := strconv.Atoi(strings.TrimPrefix(line, matchdayHeading))
			if err != nil || number < 1 {
				return nil, fmt.Errorf("%w: line %d: bad matchday number %q", ErrMalformed, lineNo, line)
			}
			days = append(days, domain.Matchday{Number: number})
			current = &days[len(days)-1]
		case current == nil:
			return nil, fmt.Errorf("%w: line %d: match outside of a matchday", ErrMalformed, lineNo)
		case strings.Contains(line, versus):
			home, away, _ := strings.Cut(line, versus)
			if home == "" || away == "" {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, lineNo, line)
			}
			current.Matches = append(current.Matches,
				domain.NewMatch(domain.NewCompetitor(home), domain.NewCompetitor(away)))
		case strings.HasPrefix(line, byePrefix):
			name := strings.TrimPrefix(line, byePrefix)
			if name == "" {
				return nil, fmt.Errorf("%w: line %d: empty competitor", ErrMalformed, lineNo)
			}
			current.Matches = append(current.Matches, domain.NewByeMatch(domain.NewCompetitor(name)))
		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformed, lineNo, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return days, nil
}
