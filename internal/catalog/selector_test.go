package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atelierlabs/atelier/internal/model"
	"github.com/atelierlabs/atelier/pkg/errors"
)

func TestAllCatalogOrderStable(t *testing.T) {
	t.Parallel()

	first := All()
	second := All()
	require.Equal(t, first, second)
	require.Len(t, first, 24)
	require.Equal(t, "Button", first[0].Name)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	spec, ok := Lookup("Table")
	require.True(t, ok)
	require.Equal(t, model.CategoryData, spec.Category)

	_, ok = Lookup("Carousel")
	require.False(t, ok)
}

func TestSelectRequiresPlatform(t *testing.T) {
	t.Parallel()

	_, err := Select(model.Brief{})
	require.Error(t, err)

	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "platforms", verr.Field)
}

func TestSelectMobileOnly(t *testing.T) {
	t.Parallel()

	inv, err := Select(model.Brief{Platforms: []model.Platform{model.PlatformMobile}})
	require.NoError(t, err)

	require.True(t, inv.Contains("Button"))
	require.True(t, inv.Contains("Input"))
	require.True(t, inv.Contains("Navigation"))
	require.False(t, inv.Contains("Table"))
	require.False(t, inv.Contains("Hero"))
	require.False(t, inv.Contains("Sidebar"))
}

func TestSelectDashboardForcesDataComponents(t *testing.T) {
	t.Parallel()

	inv, err := Select(model.Brief{Platforms: []model.Platform{model.PlatformDashboard}})
	require.NoError(t, err)

	require.True(t, inv.Contains("Table"))
	require.True(t, inv.Contains("Navigation"))
	// Table pulls Pagination, Navigation pulls Header.
	require.True(t, inv.Contains("Pagination"))
	require.True(t, inv.Contains("Header"))
}

func TestSelectDependencyClosure(t *testing.T) {
	t.Parallel()

	inv, err := Select(model.Brief{Platforms: []model.Platform{model.PlatformMarketing}})
	require.NoError(t, err)

	// Hero is marketing-only and depends on Button.
	require.True(t, inv.Contains("Hero"))
	require.True(t, inv.Contains("Button"))
}

func TestSelectPreservesCatalogOrder(t *testing.T) {
	t.Parallel()

	inv, err := Select(model.Brief{Platforms: []model.Platform{
		model.PlatformWeb, model.PlatformDashboard,
	}})
	require.NoError(t, err)

	catalog := All()
	pos := map[string]int{}
	for i, spec := range catalog {
		pos[spec.Name] = i
	}
	for i := 1; i < len(inv.Components); i++ {
		require.Less(t, pos[inv.Components[i-1].Name], pos[inv.Components[i].Name])
	}
}

func TestSelectSplitsReusableAndContextual(t *testing.T) {
	t.Parallel()

	inv, err := Select(model.Brief{Platforms: []model.Platform{
		model.PlatformWeb, model.PlatformMarketing,
	}})
	require.NoError(t, err)

	require.Contains(t, inv.Contextual, "Hero")
	require.NotContains(t, inv.Reusable, "Hero")
	require.Contains(t, inv.Reusable, "Button")
	require.Len(t, inv.Components, len(inv.Reusable)+len(inv.Contextual))
}

func TestSelectedComponentsJustifyTheirPresence(t *testing.T) {
	t.Parallel()

	briefs := []model.Brief{
		{Platforms: []model.Platform{model.PlatformMobile}},
		{Platforms: []model.Platform{model.PlatformMarketing}},
		{Platforms: []model.Platform{model.PlatformDashboard, model.PlatformMobile}},
	}

	for _, brief := range briefs {
		inv, err := Select(brief)
		require.NoError(t, err)

		for _, spec := range inv.Components {
			if required[spec.Name] {
				continue
			}
			justified := false
			for _, platform := range brief.Platforms {
				if spec.AppliesTo(platform) {
					justified = true
					break
				}
			}
			if !justified && brief.HasPlatform(model.PlatformDashboard) {
				for _, name := range dashboardRequired {
					if spec.Name == name {
						justified = true
					}
				}
			}
			if !justified {
				// must be a dependency of something selected
				for _, other := range inv.Components {
					for _, dep := range dependencies[other.Name] {
						if dep == spec.Name {
							justified = true
						}
					}
				}
			}
			require.True(t, justified, "%s has no reason to be selected for %v", spec.Name, brief.Platforms)
		}
	}
}

func TestTuneDefaultsDense(t *testing.T) {
	t.Parallel()

	inv, err := Select(model.Brief{Platforms: []model.Platform{model.PlatformDashboard}})
	require.NoError(t, err)

	tuned := TuneDefaults(inv, model.DensityDense)
	for _, spec := range tuned.Components {
		if spec.Name == "Table" || spec.Name == "Pagination" {
			require.Equal(t, "compact", spec.Variants[0])
		}
	}

	// catalog entries stay untouched
	table, ok := Lookup("Table")
	require.True(t, ok)
	require.Equal(t, "default", table.Variants[0])
}

func TestTuneDefaultsBalancedNoop(t *testing.T) {
	t.Parallel()

	inv, err := Select(model.Brief{Platforms: []model.Platform{model.PlatformWeb}})
	require.NoError(t, err)

	tuned := TuneDefaults(inv, model.DensityBalanced)
	require.Equal(t, inv, tuned)
}

func TestSelectDeterministic(t *testing.T) {
	t.Parallel()

	brief := model.Brief{Platforms: []model.Platform{
		model.PlatformDashboard, model.PlatformMobile,
	}}
	first, err := Select(brief)
	require.NoError(t, err)
	second, err := Select(brief)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
