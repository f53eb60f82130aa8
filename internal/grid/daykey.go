package grid

import (
	"fmt"
	"sort"
	"time"
)

// MaxCategoriesPerDay is the number of data rows available below each day heading
const MaxCategoriesPerDay = 2

// DayKey identifies one day column group of the grid
type DayKey struct {
	Month time.Month
	Day   int
}

// Less orders day keys by month, then day
func (k DayKey) Less(other DayKey) bool {
	if k.Month != other.Month {
		return k.Month < other.Month
	}
	return k.Day < other.Day
}

func (k DayKey) String() string {
	return fmt.Sprintf("{%02d.%02d}", k.Day, int(k.Month))
}

// CategorySet holds the categories of one day, ordered by priority
type CategorySet struct {
	items [MaxCategoriesPerDay]Category
	n     int
}

// NewCategorySet builds a set from the given categories. It returns false when more than
// MaxCategoriesPerDay distinct categories are given.
func NewCategorySet(cats ...Category) (CategorySet, bool) {
	var s CategorySet
	for _, c := range cats {
		var ok bool
		if s, ok = s.With(c); !ok {
			return s, false
		}
	}
	return s, true
}

// With returns a copy of s that also contains c. The second result is false (and s is
// returned unchanged) if c would be a third distinct category.
func (s CategorySet) With(c Category) (CategorySet, bool) {
	if s.Contains(c) {
		return s, true
	}
	if s.n == MaxCategoriesPerDay {
		return s, false
	}

	// insertion sort by priority
	i := s.n
	for i > 0 && c.Priority() < s.items[i-1].Priority() {
		s.items[i] = s.items[i-1]
		i--
	}
	s.items[i] = c
	s.n++
	return s, true
}

// Len returns the number of categories in the set
func (s CategorySet) Len() int { return s.n }

// IsEmpty reports whether the set has no categories
func (s CategorySet) IsEmpty() bool { return s.n == 0 }

// Contains reports whether c is in the set
func (s CategorySet) Contains(c Category) bool {
	for i := 0; i < s.n; i++ {
		if s.items[i] == c {
			return true
		}
	}
	return false
}

// First returns the highest-priority member. It panics on an empty set.
func (s CategorySet) First() Category {
	if s.n == 0 {
		panic("grid: First on empty CategorySet")
	}
	return s.items[0]
}

// Last returns the lowest-priority member. It panics on an empty set.
func (s CategorySet) Last() Category {
	if s.n == 0 {
		panic("grid: Last on empty CategorySet")
	}
	return s.items[s.n-1]
}

// Categories returns the members in priority order
func (s CategorySet) Categories() []Category {
	out := make([]Category, s.n)
	copy(out, s.items[:s.n])
	return out
}

func (s CategorySet) String() string {
	out := "["
	for i := 0; i < s.n; i++ {
		if i > 0 {
			out += " "
		}
		out += s.items[i].Abbrev()
	}
	return out + "]"
}

// Schedule maps each collection day to its categories
type Schedule map[DayKey]CategorySet

// Get returns the categories of the given day; the set is empty for days without
// collections
func (s Schedule) Get(month time.Month, day int) CategorySet {
	return s[DayKey{Month: month, Day: day}]
}

// Days returns the keys of s in calendar order
func (s Schedule) Days() []DayKey {
	keys := make([]DayKey, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	return keys
}
