package catalog

import (
	"github.com/atelierlabs/atelier/internal/model"
	"github.com/atelierlabs/atelier/pkg/errors"
)

// required components ship with every inventory regardless of platform mix.
var required = map[string]bool{
	"Button": true,
	"Input":  true,
}

// dashboardRequired components are forced in whenever the brief targets a
// dashboard, since data display is the point of that platform.
var dashboardRequired = []string{"Table", "Navigation"}

// Select filters the catalog down to the inventory for one brief. The
// result preserves catalog order no matter which rule pulled a component in.
func Select(brief model.Brief) (model.Inventory, error) {
	if len(brief.Platforms) == 0 {
		return model.Inventory{}, errors.NewValidationError("platforms", "at least one platform is required", nil)
	}

	chosen := make(map[string]bool, len(components))

	for _, spec := range components {
		if required[spec.Name] {
			chosen[spec.Name] = true
			continue
		}
		for _, platform := range brief.Platforms {
			if spec.AppliesTo(platform) {
				chosen[spec.Name] = true
				break
			}
		}
	}

	if brief.HasPlatform(model.PlatformDashboard) {
		for _, name := range dashboardRequired {
			chosen[name] = true
		}
	}

	if err := closeOverDependencies(chosen); err != nil {
		return model.Inventory{}, err
	}

	inv := model.Inventory{}
	for _, spec := range components {
		if !chosen[spec.Name] {
			continue
		}
		inv.Components = append(inv.Components, spec)
		if spec.Reusable {
			inv.Reusable = append(inv.Reusable, spec.Name)
		} else {
			inv.Contextual = append(inv.Contextual, spec.Name)
		}
	}

	return inv, nil
}

// TuneDefaults reorders variants so the density-preferred variant becomes
// the rendered default for dense systems. Catalog entries are never mutated;
// affected specs get a copied variant slice.
func TuneDefaults(inv model.Inventory, density model.Density) model.Inventory {
	if density != model.DensityDense {
		return inv
	}
	for i, spec := range inv.Components {
		for j, variant := range spec.Variants {
			if variant != "compact" || j == 0 {
				continue
			}
			tuned := make([]string, 0, len(spec.Variants))
			tuned = append(tuned, "compact")
			for _, v := range spec.Variants {
				if v != "compact" {
					tuned = append(tuned, v)
				}
			}
			inv.Components[i].Variants = tuned
			break
		}
	}
	return inv
}

// closeOverDependencies adds every transitive dependency of the chosen set.
// The dependency graph is tiny and acyclic; iterating to a fixed point is
// simpler than a topological sort.
func closeOverDependencies(chosen map[string]bool) error {
	for changed := true; changed; {
		changed = false
		for name := range chosen {
			for _, dep := range dependencies[name] {
				if _, ok := Lookup(dep); !ok {
					return errors.NewUnsupportedComponentError(dep, "dependency")
				}
				if !chosen[dep] {
					chosen[dep] = true
					changed = true
				}
			}
		}
	}
	return nil
}
