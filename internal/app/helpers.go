package app

import (
	"fmt"
	"sort"
	"strings"
)

// DistrictNames returns the districts present in the store, sorted by name
func (c *CalendarData) DistrictNames() []string {
	names := make([]string, 0, len(c.Districts))
	for name := range c.Districts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveDistrict picks a district by case-insensitive name. An empty name is accepted
// when the store holds exactly one district.
func (c *CalendarData) ResolveDistrict(name string) (string, *District, error) {
	if name == "" {
		if len(c.Districts) == 1 {
			for n, d := range c.Districts {
				if d == nil {
					d = &District{}
				}
				return n, d, nil
			}
		}
		return "", nil, fmt.Errorf("calendar has %d districts, choose one of: %s",
			len(c.Districts), strings.Join(c.DistrictNames(), ", "))
	}

	for n, d := range c.Districts {
		if strings.EqualFold(n, name) {
			if d == nil {
				d = &District{}
			}
			return n, d, nil
		}
	}
	return "", nil, fmt.Errorf("unknown district %q, choose one of: %s", name, strings.Join(c.DistrictNames(), ", "))
}

// IsKnownDistrict reports whether name is one of the Winterberg districts
func IsKnownDistrict(name string) bool {
	for _, d := range Districts {
		if strings.EqualFold(d, name) {
			return true
		}
	}
	return false
}

// SortEventsByDate sorts events by date in ascending order
func SortEventsByDate(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date < events[j].Date
	})
}
