package service

import (
	"strings"

	"mindcare/backend/pkg/cache"
	"mindcare/backend/pkg/resources"
)

// ResourceService resolves location queries against the static directory.
// The directory is immutable and resolution is deterministic, so results are
// memoized.
type ResourceService struct {
	resolver *resources.Resolver
	cache    *cache.Cache
}

// NewResourceService creates the service; cache may be nil to disable
// memoization.
func NewResourceService(resolver *resources.Resolver, c *cache.Cache) *ResourceService {
	return &ResourceService{resolver: resolver, cache: c}
}

// Resolve returns the ranked, never-empty entry list for a location query
func (s *ResourceService) Resolve(query, countryHint string) []resources.Entry {
	key := strings.ToLower(strings.TrimSpace(query)) + "|" + strings.ToLower(strings.TrimSpace(countryHint))

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			if entries, ok := cached.([]resources.Entry); ok {
				return entries
			}
		}
	}

	entries := s.resolver.Resolve(query, countryHint)

	if s.cache != nil {
		s.cache.Set(key, entries)
	}
	return entries
}
