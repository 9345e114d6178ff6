// Package strategy derives design principles from a brief through ordered
// precedence rules and additive trait deltas. Everything here is a pure
// lookup over immutable package-level tables so the precedence order stays
// auditable.
package strategy

import (
	"github.com/atelierlabs/atelier/internal/model"
	atelierErrors "github.com/atelierlabs/atelier/pkg/errors"
)

// traitDelta adjusts the warmth and clarity scores for one brand trait.
// Deltas are additive and applied in canonical trait order, then clamped to
// [1, 10].
type traitDelta struct {
	warmth  int
	clarity int
}

var traitDeltas = map[model.BrandTrait]traitDelta{
	model.TraitModern:       {warmth: 0, clarity: 1},
	model.TraitClinical:     {warmth: -2, clarity: 1},
	model.TraitPlayful:      {warmth: 2, clarity: -1},
	model.TraitPremium:      {warmth: -1, clarity: 0},
	model.TraitBold:         {warmth: 1, clarity: 0},
	model.TraitMinimal:      {warmth: -1, clarity: 1},
	model.TraitWarm:         {warmth: 2, clarity: 0},
	model.TraitProfessional: {warmth: -1, clarity: 1},
}

// traitConflicts lists trait pairs that cannot both take effect. When both
// are present, the trait earlier in model.BrandTraits wins and the later
// trait is dropped entirely (delta and philosophy influence).
var traitConflicts = map[model.BrandTrait][]model.BrandTrait{
	model.TraitClinical:     {model.TraitPlayful, model.TraitBold},
	model.TraitPlayful:      {model.TraitClinical, model.TraitProfessional},
	model.TraitBold:         {model.TraitClinical, model.TraitMinimal},
	model.TraitMinimal:      {model.TraitBold},
	model.TraitProfessional: {model.TraitPlayful},
}

// conservativeIndustries never take a brand-led philosophy from traits.
var conservativeIndustries = map[model.Industry]bool{
	model.IndustryHealthcare: true,
	model.IndustryFinance:    true,
}

// Derive maps a brief to design principles.
//
// Precedence, first match wins per field:
//
//	philosophy: enterprise/b2b audience -> utility-first;
//	            effective playful or bold trait (outside healthcare and
//	            finance) -> brand-led;
//	            otherwise the industry baseline.
//	density:    mobile-only platform set -> dense;
//	            enterprise/b2b audience -> spacious;
//	            otherwise the industry baseline.
//
// Warmth and clarity start at the industry baseline and accumulate trait
// deltas (additive-then-clamp, canonical trait order, conflicting later
// traits skipped).
func Derive(brief model.Brief) (model.Principles, error) {
	industry := DetectIndustry(brief.ProductIdea)
	base, ok := industryBaselines[industry]
	if !ok {
		base = industryBaselines[model.IndustryUnknown]
	}

	if err := checkBaseline(industry, base); err != nil {
		return model.Principles{}, err
	}

	effective := effectiveTraits(brief.BrandTraits)

	warmth := base.warmth
	clarity := base.clarity
	for _, trait := range effective {
		delta := traitDeltas[trait]
		warmth += delta.warmth
		clarity += delta.clarity
	}
	warmth = clampScore(warmth)
	clarity = clampScore(clarity)

	philosophy := derivePhilosophy(brief, industry, effective, base)
	density := deriveDensity(brief, base)

	principles := model.Principles{
		Clarity:    clarity,
		Density:    density,
		Warmth:     warmth,
		Speed:      clampScore(base.speed),
		Philosophy: philosophy,
		Industry:   industry,
	}

	if err := checkPrinciples(principles); err != nil {
		return model.Principles{}, err
	}

	return principles, nil
}

func derivePhilosophy(brief model.Brief, industry model.Industry, effective []model.BrandTrait, base baseline) model.Philosophy {
	if brief.HasUser(model.UserEnterprise) || brief.HasUser(model.UserB2B) {
		return model.PhilosophyUtilityFirst
	}

	if !conservativeIndustries[industry] {
		for _, trait := range effective {
			if trait == model.TraitPlayful || trait == model.TraitBold {
				return model.PhilosophyBrandLed
			}
		}
	}

	return base.philosophy
}

func deriveDensity(brief model.Brief, base baseline) model.Density {
	if brief.OnlyPlatform(model.PlatformMobile) {
		return model.DensityDense
	}

	if brief.HasUser(model.UserEnterprise) || brief.HasUser(model.UserB2B) {
		return model.DensitySpacious
	}

	return base.density
}

// effectiveTraits resolves conflicts by canonical order: traits are examined
// in model.BrandTraits order and a trait is dropped when it conflicts with
// one already kept.
func effectiveTraits(traits []model.BrandTrait) []model.BrandTrait {
	present := make(map[model.BrandTrait]bool, len(traits))
	for _, t := range traits {
		present[t] = true
	}

	kept := make([]model.BrandTrait, 0, len(traits))
	keptSet := make(map[model.BrandTrait]bool, len(traits))

	for _, candidate := range model.BrandTraits {
		if !present[candidate] {
			continue
		}

		conflicted := false
		for _, rival := range traitConflicts[candidate] {
			if keptSet[rival] {
				conflicted = true
				break
			}
		}
		if conflicted {
			continue
		}

		kept = append(kept, candidate)
		keptSet[candidate] = true
	}

	return kept
}

func clampScore(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// checkBaseline guards against rule-table bugs: every baseline value must
// already sit inside its documented bound.
func checkBaseline(industry model.Industry, base baseline) error {
	if base.warmth < 1 || base.warmth > 10 {
		return atelierErrors.NewRangeError("baseline.warmth["+string(industry)+"]", float64(base.warmth), 1, 10)
	}
	if base.clarity < 1 || base.clarity > 10 {
		return atelierErrors.NewRangeError("baseline.clarity["+string(industry)+"]", float64(base.clarity), 1, 10)
	}
	if base.speed < 1 || base.speed > 10 {
		return atelierErrors.NewRangeError("baseline.speed["+string(industry)+"]", float64(base.speed), 1, 10)
	}
	return nil
}

func checkPrinciples(p model.Principles) error {
	if p.Clarity < 1 || p.Clarity > 10 {
		return atelierErrors.NewRangeError("principles.clarity", float64(p.Clarity), 1, 10)
	}
	if p.Warmth < 1 || p.Warmth > 10 {
		return atelierErrors.NewRangeError("principles.warmth", float64(p.Warmth), 1, 10)
	}
	if p.Speed < 1 || p.Speed > 10 {
		return atelierErrors.NewRangeError("principles.speed", float64(p.Speed), 1, 10)
	}
	if !p.Density.Valid() {
		return atelierErrors.NewValidationError("principles.density", "unknown density "+string(p.Density), nil)
	}
	if !p.Philosophy.Valid() {
		return atelierErrors.NewValidationError("principles.philosophy", "unknown philosophy "+string(p.Philosophy), nil)
	}
	return nil
}
