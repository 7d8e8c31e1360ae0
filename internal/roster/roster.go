package roster

import (
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goserg/fixturegen/internal/domain"
	"github.com/goserg/fixturegen/internal/shuffle"
)

const DefaultByeLabel = "Free"

// Roster is the ordered list of competitors a schedule is built from. Its
// length is always even: a bye placeholder fills the last slot when the
// number of competitors is odd.
type Roster struct {
	slots    []domain.Competitor
	count    int
	byeLabel string
}

type options struct {
	key func(string) string
}

type Option func(*options)

// WithKey sets the function used to compare names for duplicates and for
// collisions with the bye label. Names are compared verbatim by default.
func WithKey(key func(string) string) Option {
	return func(o *options) {
		o.key = key
	}
}

func New(names []string, byeLabel string, opts ...Option) (*Roster, error) {
	o := options{key: func(s string) string { return s }}
	for _, opt := range opts {
		opt(&o)
	}
	if err := validate(names, byeLabel, o.key); err != nil {
		return nil, &InvalidInputError{Err: err}
	}

	n := len(names)
	m := n
	if n%2 != 0 {
		m = n + 1
	}
	slots := make([]domain.Competitor, m)
	for i, name := range names {
		slots[i] = domain.NewCompetitor(name)
	}
	if m != n {
		slots[n] = domain.NewBye(byeLabel)
	}
	return &Roster{
		slots:    slots,
		count:    n,
		byeLabel: byeLabel,
	}, nil
}

func validate(names []string, byeLabel string, key func(string) string) error {
	var err error
	if byeLabel == "" {
		err = errors.Join(err, ErrEmptyBye)
	}
	if hasLineBreak(byeLabel) {
		err = errors.Join(err, fmt.Errorf("bye label %q: %w", byeLabel, ErrLineBreak))
	}
	switch len(names) {
	case 0:
		return errors.Join(err, ErrEmpty)
	case 1:
		err = errors.Join(err, ErrTooFew)
	}
	seen := mapset.NewThreadUnsafeSet[string]()
	bye := key(byeLabel)
	for i, name := range names {
		if name == "" {
			err = errors.Join(err, fmt.Errorf("position %d: %w", i+1, ErrEmptyName))
			continue
		}
		if hasLineBreak(name) {
			err = errors.Join(err, fmt.Errorf("%q: %w", name, ErrLineBreak))
			continue
		}
		k := key(name)
		if byeLabel != "" && k == bye {
			err = errors.Join(err, fmt.Errorf("%q: %w", name, ErrByeCollision))
			continue
		}
		if !seen.Add(k) {
			err = errors.Join(err, fmt.Errorf("%q: %w", name, ErrDuplicate))
		}
	}
	return err
}

// Rendered fixtures hold one match per line.
func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

// Len returns the number of slots, bye included.
func (r *Roster) Len() int {
	return len(r.slots)
}

// Count returns the number of real competitors.
func (r *Roster) Count() int {
	return r.count
}

func (r *Roster) HasBye() bool {
	return r.count != len(r.slots)
}

func (r *Roster) ByeLabel() string {
	return r.byeLabel
}

func (r *Roster) At(i int) domain.Competitor {
	return r.slots[i]
}

// Competitors returns a copy of the slots in their current order.
func (r *Roster) Competitors() []domain.Competitor {
	return append([]domain.Competitor(nil), r.slots...)
}

// Shuffle permutes every slot, the bye included.
func (r *Roster) Shuffle(src shuffle.Source) {
	shuffle.Shuffle(src, len(r.slots), func(i, j int) {
		r.slots[i], r.slots[j] = r.slots[j], r.slots[i]
	})
}
