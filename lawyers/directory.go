package lawyers

import (
	"sort"
	"strings"
)

// Lawyer is one directory entry.
type Lawyer struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	PracticeAreas   []string `json:"practiceAreas"`
	ExperienceYears int      `json:"experienceYears"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
}

// Directory serves the static lawyer listing with search and city filters.
type Directory struct {
	lawyers []Lawyer
}

// NewDirectory creates a directory over the built-in listing.
func NewDirectory() *Directory {
	return &Directory{lawyers: defaultLawyers}
}

// NewDirectoryWith creates a directory over a custom listing.
func NewDirectoryWith(lawyers []Lawyer) *Directory {
	return &Directory{lawyers: lawyers}
}

// All returns the full listing sorted by experience descending, then name.
func (d *Directory) All() []Lawyer {
	return d.Filter("", "")
}

// Filter matches the search term against name and practice areas
// case-insensitively, and the city exactly. Results sort by experience
// descending with name as the tiebreaker.
func (d *Directory) Filter(searchTerm, city string) []Lawyer {
	out := make([]Lawyer, 0, len(d.lawyers))
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	for _, l := range d.lawyers {
		if term != "" && !matchesTerm(l, term) {
			continue
		}
		if city != "" && l.City != city {
			continue
		}
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ExperienceYears != out[j].ExperienceYears {
			return out[i].ExperienceYears > out[j].ExperienceYears
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Cities returns the distinct cities in the listing, sorted.
func (d *Directory) Cities() []string {
	seen := make(map[string]bool)
	var cities []string
	for _, l := range d.lawyers {
		if !seen[l.City] {
			seen[l.City] = true
			cities = append(cities, l.City)
		}
	}
	sort.Strings(cities)
	return cities
}

func matchesTerm(l Lawyer, term string) bool {
	if strings.Contains(strings.ToLower(l.Name), term) {
		return true
	}
	for _, area := range l.PracticeAreas {
		if strings.Contains(strings.ToLower(area), term) {
			return true
		}
	}
	return false
}
