package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcare/backend/pkg/cache"
	"mindcare/backend/pkg/resources"
)

func testResolver() *resources.Resolver {
	dir := &resources.Directory{
		Countries: map[string]resources.Country{
			"india": {
				NationalHelpline: resources.Entry{Name: "KIRAN", Kind: resources.KindHelpline},
				Regions: []resources.Region{
					{Name: "Delhi", Entries: []resources.Entry{
						{Name: "AIIMS Psychiatry", Kind: resources.KindHospital, Region: "Delhi"},
					}},
					{Name: "national", Entries: []resources.Entry{
						{Name: "AASRA", Kind: resources.KindHelpline, Region: "national"},
					}},
				},
			},
		},
	}
	return resources.NewResolver(dir, resources.ResolverOptions{DefaultCountry: "india"})
}

func TestResolveHitsDirectory(t *testing.T) {
	svc := NewResourceService(testResolver(), nil)

	entries := svc.Resolve("Delhi", "india")

	require.NotEmpty(t, entries)
	assert.Equal(t, "AIIMS Psychiatry", entries[0].Name)
}

func TestResolveWithNilCacheIsStillDeterministic(t *testing.T) {
	svc := NewResourceService(testResolver(), nil)

	first := svc.Resolve("Delhi", "india")
	second := svc.Resolve("Delhi", "india")

	assert.Equal(t, first, second)
}

func TestResolveMemoizes(t *testing.T) {
	c := cache.NewCacheWithOptions(time.Minute, time.Minute, 100)
	svc := NewResourceService(testResolver(), c)

	first := svc.Resolve("Delhi", "India")
	assert.Equal(t, 1, c.Count())

	// Same query modulo case and whitespace hits the same key
	second := svc.Resolve("  delhi ", "INDIA")
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, first, second)

	svc.Resolve("somewhere else", "india")
	assert.Equal(t, 2, c.Count())
}

func TestResolveNeverEmpty(t *testing.T) {
	svc := NewResourceService(testResolver(), nil)

	assert.NotEmpty(t, svc.Resolve("", ""))
	assert.NotEmpty(t, svc.Resolve("Atlantis", "nowhere"))
}
