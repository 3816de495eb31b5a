package resources

import (
	"strings"

	"mindcare/backend/pkg/metrics"
)

// ResolverOptions configures the resolver
type ResolverOptions struct {
	// DefaultCountry is searched when no hint identifies a country
	DefaultCountry string
	// SecondaryCountry is tried when the primary search finds nothing and the
	// query carries one of its recognizable tokens
	SecondaryCountry string
	// Deduplicate removes entries collected twice (once by region, once by
	// city). Off by default: the historical behavior re-adds them.
	Deduplicate bool
}

// Resolver searches the directory with a graceful-degradation ladder:
// region match, city substring, secondary country, national fallback.
// It never returns an empty result.
type Resolver struct {
	dir  *Directory
	opts ResolverOptions
}

// NewResolver creates a resolver over an immutable directory
func NewResolver(dir *Directory, opts ResolverOptions) *Resolver {
	if opts.DefaultCountry == "" {
		opts.DefaultCountry = "india"
	}
	return &Resolver{dir: dir, opts: opts}
}

// Resolve normalizes query and walks the ladder. Results are ordered: exact
// region matches first, then substring region matches, then city matches,
// preserving directory insertion order within each tier.
func (r *Resolver) Resolve(query, countryHint string) []Entry {
	q := strings.ToLower(strings.TrimSpace(query))

	primary := r.dir.MatchCountry(countryHint)
	if primary == "" {
		primary = strings.ToLower(r.opts.DefaultCountry)
	}

	if q != "" {
		if found := r.searchCountry(primary, q); len(found) > 0 {
			metrics.ResourceLookups.WithLabelValues("primary").Inc()
			return r.finish(found)
		}

		// The query itself may name the other supported country or one of
		// its large cities.
		if secondary := r.secondaryFor(q, primary); secondary != "" {
			if found := r.searchCountry(secondary, q); len(found) > 0 {
				metrics.ResourceLookups.WithLabelValues("secondary").Inc()
				return r.finish(found)
			}
			metrics.ResourceLookups.WithLabelValues("fallback").Inc()
			return r.finish(r.nationalFallback(secondary))
		}
	}

	metrics.ResourceLookups.WithLabelValues("fallback").Inc()
	return r.finish(r.nationalFallback(primary))
}

// searchCountry collects region matches (exact before substring) and then
// city-substring matches. An entry whose region and city both match appears
// twice; deduplication is the caller's decision via options.
func (r *Resolver) searchCountry(name, q string) []Entry {
	country, ok := r.dir.Country(name)
	if !ok {
		return nil
	}

	var exact, partial, byCity []Entry

	for _, region := range country.Regions {
		rn := strings.ToLower(region.Name)
		switch {
		case rn == q:
			exact = append(exact, region.Entries...)
		case strings.Contains(rn, q) || strings.Contains(q, rn):
			partial = append(partial, region.Entries...)
		}
	}

	for _, region := range country.Regions {
		for _, entry := range region.Entries {
			city := strings.ToLower(entry.City)
			if city == "" {
				continue
			}
			if city == q || strings.Contains(city, q) {
				byCity = append(byCity, entry)
			}
		}
	}

	results := make([]Entry, 0, len(exact)+len(partial)+len(byCity))
	results = append(results, exact...)
	results = append(results, partial...)
	results = append(results, byCity...)
	return results
}

// secondaryFor returns the other supported country when q carries one of its
// tokens, or "" when it doesn't.
func (r *Resolver) secondaryFor(q, primary string) string {
	if matched := r.dir.MatchCountry(q); matched != "" && matched != primary {
		return matched
	}
	secondary := strings.ToLower(r.opts.SecondaryCountry)
	if secondary == "" || secondary == primary {
		return ""
	}
	country, ok := r.dir.Country(secondary)
	if !ok {
		return ""
	}
	for _, alias := range country.Aliases {
		if aliasMatches(q, strings.ToLower(alias)) {
			return secondary
		}
	}
	return ""
}

// nationalFallback returns the country's national-scope entries plus one
// synthetic helpline entry built from the country's template, so the ladder
// always ends non-empty.
func (r *Resolver) nationalFallback(name string) []Entry {
	var results []Entry

	if country, ok := r.dir.Country(name); ok {
		for _, region := range country.Regions {
			if region.IsNational() {
				results = append(results, region.Entries...)
			}
		}
		synthetic := country.NationalHelpline
		if synthetic.Name == "" {
			synthetic.Name = "National Mental Health Helpline"
		}
		if synthetic.Kind == "" {
			synthetic.Kind = KindHelpline
		}
		if synthetic.Region == "" {
			synthetic.Region = "national"
		}
		results = append(results, synthetic)
		return results
	}

	// Unknown country: still return something
	return []Entry{{
		Name:   "National Mental Health Helpline",
		Kind:   KindHelpline,
		Region: "national",
		Notes:  "Contact your local emergency services for immediate help.",
	}}
}

func (r *Resolver) finish(entries []Entry) []Entry {
	if !r.opts.Deduplicate {
		return entries
	}

	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		key := e.Name + "|" + e.Region + "|" + e.City + "|" + e.Phone
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}
