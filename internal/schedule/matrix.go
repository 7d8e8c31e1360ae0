package schedule

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize    = errors.New("schedule: matrix size must be even and at least 2")
	ErrBrokenDiagonal = errors.New("schedule: diagonal cell is not zero")
	ErrBrokenLegs     = errors.New("schedule: pairing is not split across both legs")
	ErrBrokenMatching = errors.New("schedule: matchday is not a perfect matching")
)

// Matrix maps every ordered pair of roster positions to the 1-based
// matchday on which the first hosts the second. Cells (i,j) and (j,i)
// hold one matchday of each leg. The diagonal is zero.
type Matrix struct {
	cells [][]int
}

// Build computes the assignment matrix for a roster of m slots.
func Build(m int) (Matrix, error) {
	if m < 2 || m%2 != 0 {
		return Matrix{}, fmt.Errorf("%w: got %d", ErrInvalidSize, m)
	}
	cells := make([][]int, m)
	for i := range cells {
		cells[i] = make([]int, m)
	}
	half := m - 1

	// even matchdays down the first column
	for i := 1; i < m; i++ {
		cells[i][0] = 2 * i
	}
	// lower triangle: each cell is its upper-left neighbour plus two
	for j := 1; j < m-1; j++ {
		for i := j + 1; i < m; i++ {
			if j == 1 {
				cells[i][j] = i + 1
			} else {
				cells[i][j] = cells[i-1][j-1] + 2
			}
		}
	}
	// upper triangle holds the same pairing in the other leg
	for i := 0; i < m-1; i++ {
		for j := i + 1; j < m; j++ {
			if cells[j][i] > half {
				cells[i][j] = cells[j][i] - half
			} else {
				cells[i][j] = cells[j][i] + half
			}
		}
	}
	// swap hosts on even matchdays so home games alternate
	for j := 1; j < m-1; j++ {
		for i := j + 1; i < m; i++ {
			if cells[i][j]%2 == 0 {
				cells[i][j], cells[j][i] = cells[j][i], cells[i][j]
			}
		}
	}
	return Matrix{cells: cells}, nil
}

func (mx Matrix) Size() int {
	return len(mx.cells)
}

func (mx Matrix) At(i, j int) int {
	return mx.cells[i][j]
}

// Matchdays returns how many matchdays a schedule of the given number of
// legs spans.
func (mx Matrix) Matchdays(legs int) int {
	return legs * (mx.Size() - 1)
}

// Rows returns a copy of the cells.
func (mx Matrix) Rows() [][]int {
	rows := make([][]int, len(mx.cells))
	for i := range mx.cells {
		rows[i] = append([]int(nil), mx.cells[i]...)
	}
	return rows
}

// Check verifies the diagonal, that every pairing is played once in each
// leg and that every matchday pairs each position exactly once.
func (mx Matrix) Check() error {
	m := mx.Size()
	if m < 2 || m%2 != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, m)
	}
	half := m - 1
	for i := 0; i < m; i++ {
		if mx.cells[i][i] != 0 {
			return fmt.Errorf("%w: (%d,%d)=%d", ErrBrokenDiagonal, i, i, mx.cells[i][i])
		}
		for j := i + 1; j < m; j++ {
			a, b := mx.cells[i][j], mx.cells[j][i]
			if a < 1 || b < 1 || a > 2*half || b > 2*half || (a <= half) == (b <= half) {
				return fmt.Errorf("%w: (%d,%d)=%d, (%d,%d)=%d", ErrBrokenLegs, i, j, a, j, i, b)
			}
		}
	}
	for d := 1; d <= 2*half; d++ {
		seen := make([]bool, m)
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				if mx.cells[i][j] != d {
					continue
				}
				for _, pos := range [2]int{i, j} {
					if seen[pos] {
						return fmt.Errorf("%w: matchday %d books position %d twice", ErrBrokenMatching, d, pos)
					}
				}
				seen[i], seen[j] = true, true
			}
		}
		for pos, ok := range seen {
			if !ok {
				return fmt.Errorf("%w: matchday %d leaves position %d out", ErrBrokenMatching, d, pos)
			}
		}
	}
	return nil
}
