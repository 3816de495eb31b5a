// Package resources holds the static helpline/clinic directory and resolves
// free-text location queries against it. This is string matching over a data
// table, not geocoding.
package resources

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Kind categorizes a directory entry
type Kind string

const (
	KindHospital Kind = "hospital"
	KindClinic   Kind = "clinic"
	KindHelpline Kind = "helpline"
	KindPrivate  Kind = "private"
)

// Entry is one support contact in the directory
type Entry struct {
	Name          string `json:"name"`
	Kind          Kind   `json:"kind"`
	Phone         string `json:"phone"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	Region        string `json:"region"`
	TelehealthURL string `json:"telehealth_url,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

// Region groups entries under one region name. A name of "national" or
// "nationwide" denotes the fallback scope covering the whole country.
type Region struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// IsNational reports whether the region is a country-wide fallback scope
func (r Region) IsNational() bool {
	n := strings.ToLower(r.Name)
	return n == "national" || n == "nationwide"
}

// Country is one country's slice of the directory. Aliases are the tokens
// (name variants, large city names) that identify the country in free text.
type Country struct {
	Aliases []string `json:"aliases"`
	// NationalHelpline is the template for the synthetic fallback entry
	NationalHelpline Entry `json:"national_helpline"`
	// Regions preserve file order; result ranking depends on it
	Regions []Region `json:"regions"`
}

// Directory is the full registry, keyed by lower-case country name. Loaded
// once at process start, immutable thereafter.
type Directory struct {
	Countries map[string]Country `json:"countries"`
}

// Load reads a directory from a JSON file
func Load(path string) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource directory %q: %w", path, err)
	}

	var dir Directory
	if err := json.Unmarshal(raw, &dir); err != nil {
		return nil, fmt.Errorf("failed to parse resource directory %q: %w", path, err)
	}

	if len(dir.Countries) == 0 {
		return nil, fmt.Errorf("resource directory %q has no countries", path)
	}

	// Fill the region field on entries that omit it, so callers always see
	// where an entry came from.
	for name, country := range dir.Countries {
		for ri := range country.Regions {
			region := &country.Regions[ri]
			for ei := range region.Entries {
				if region.Entries[ei].Region == "" {
					region.Entries[ei].Region = region.Name
				}
			}
		}
		dir.Countries[name] = country
	}

	return &dir, nil
}

// Country returns a country's slice of the directory by its lower-cased name
func (d *Directory) Country(name string) (Country, bool) {
	c, ok := d.Countries[strings.ToLower(name)]
	return c, ok
}

// MatchCountry maps a free-text token to a country name via the alias tables.
// Returns "" when nothing matches. Countries are checked in sorted order so an
// alias shared by two countries resolves the same way on every run.
func (d *Directory) MatchCountry(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}
	if _, ok := d.Countries[token]; ok {
		return token
	}
	for _, name := range d.countryNames() {
		for _, alias := range d.Countries[name].Aliases {
			if aliasMatches(token, strings.ToLower(alias)) {
				return name
			}
		}
	}
	return ""
}

// aliasMatches reports whether token names the alias. A single-word alias
// must match a whole field of the token: "us" names the USA in "boston us"
// but not inside "mussoorie". Multi-word aliases are distinctive enough to
// match as substrings.
func aliasMatches(token, alias string) bool {
	if token == alias {
		return true
	}
	if strings.Contains(alias, " ") {
		return strings.Contains(token, alias)
	}
	for _, field := range strings.Fields(token) {
		if field == alias {
			return true
		}
	}
	return false
}

func (d *Directory) countryNames() []string {
	names := make([]string, 0, len(d.Countries))
	for name := range d.Countries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
