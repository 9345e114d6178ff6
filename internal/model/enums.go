package model

import (
	"fmt"

	atelierErrors "github.com/atelierlabs/atelier/pkg/errors"
)

// TargetUser classifies the audience a product serves.
type TargetUser string

const (
	UserB2B        TargetUser = "b2b"
	UserB2C        TargetUser = "b2c"
	UserEnterprise TargetUser = "enterprise"
	UserConsumer   TargetUser = "consumer"
)

// TargetUsers lists every target user in canonical order.
var TargetUsers = []TargetUser{UserB2B, UserB2C, UserEnterprise, UserConsumer}

// Valid reports whether the value is a recognized target user.
func (u TargetUser) Valid() bool {
	for _, known := range TargetUsers {
		if u == known {
			return true
		}
	}
	return false
}

// BrandTrait is a brand personality descriptor. The declaration order is
// canonical: when two conflicting traits are both present, the earlier one
// wins (see internal/strategy).
type BrandTrait string

const (
	TraitModern       BrandTrait = "modern"
	TraitClinical     BrandTrait = "clinical"
	TraitPlayful      BrandTrait = "playful"
	TraitPremium      BrandTrait = "premium"
	TraitBold         BrandTrait = "bold"
	TraitMinimal      BrandTrait = "minimal"
	TraitWarm         BrandTrait = "warm"
	TraitProfessional BrandTrait = "professional"
)

// BrandTraits lists every brand trait in canonical order.
var BrandTraits = []BrandTrait{
	TraitModern, TraitClinical, TraitPlayful, TraitPremium,
	TraitBold, TraitMinimal, TraitWarm, TraitProfessional,
}

// Valid reports whether the value is a recognized brand trait.
func (t BrandTrait) Valid() bool {
	for _, known := range BrandTraits {
		if t == known {
			return true
		}
	}
	return false
}

// Platform identifies a delivery surface the design system must cover.
type Platform string

const (
	PlatformWeb       Platform = "web"
	PlatformMobile    Platform = "mobile"
	PlatformDashboard Platform = "dashboard"
	PlatformMarketing Platform = "marketing"
)

// Platforms lists every platform in canonical order.
var Platforms = []Platform{PlatformWeb, PlatformMobile, PlatformDashboard, PlatformMarketing}

// Valid reports whether the value is a recognized platform.
func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// Density describes how tightly the UI packs information.
type Density string

const (
	DensityDense    Density = "dense"
	DensitySpacious Density = "spacious"
	DensityBalanced Density = "balanced"
)

// Valid reports whether the value is a recognized density.
func (d Density) Valid() bool {
	return d == DensityDense || d == DensitySpacious || d == DensityBalanced
}

// Philosophy labels the overall design strategy.
type Philosophy string

const (
	PhilosophyUtilityFirst   Philosophy = "utility-first"
	PhilosophyComponentFirst Philosophy = "component-first"
	PhilosophyBrandLed       Philosophy = "brand-led"
)

// Valid reports whether the value is a recognized philosophy.
func (p Philosophy) Valid() bool {
	return p == PhilosophyUtilityFirst || p == PhilosophyComponentFirst || p == PhilosophyBrandLed
}

// ColorRole groups color tokens by purpose.
type ColorRole string

const (
	RolePrimary ColorRole = "primary"
	RoleNeutral ColorRole = "neutral"
	RoleAccent  ColorRole = "accent"
	RoleSuccess ColorRole = "success"
	RoleWarning ColorRole = "warning"
	RoleError   ColorRole = "error"
	RoleInfo    ColorRole = "info"
)

// Category groups component specifications for documentation purposes.
type Category string

const (
	CategoryAction     Category = "action"
	CategoryInput      Category = "input"
	CategoryNavigation Category = "navigation"
	CategoryFeedback   Category = "feedback"
	CategoryLayout     Category = "layout"
	CategoryData       Category = "data"
	CategoryContextual Category = "contextual"
)

// ParseTargetUsers converts raw strings into TargetUser values, rejecting
// unknown entries with a ValidationError.
func ParseTargetUsers(raw []string) ([]TargetUser, error) {
	out := make([]TargetUser, 0, len(raw))
	for i, value := range raw {
		user := TargetUser(value)
		if !user.Valid() {
			return nil, atelierErrors.NewValidationError(
				fmt.Sprintf("target_users[%d]", i),
				fmt.Sprintf("unknown target user %q", value), nil)
		}
		out = append(out, user)
	}
	return out, nil
}

// ParseBrandTraits converts raw strings into BrandTrait values, rejecting
// unknown entries with a ValidationError.
func ParseBrandTraits(raw []string) ([]BrandTrait, error) {
	out := make([]BrandTrait, 0, len(raw))
	for i, value := range raw {
		trait := BrandTrait(value)
		if !trait.Valid() {
			return nil, atelierErrors.NewValidationError(
				fmt.Sprintf("brand_traits[%d]", i),
				fmt.Sprintf("unknown brand trait %q", value), nil)
		}
		out = append(out, trait)
	}
	return out, nil
}

// ParsePlatforms converts raw strings into Platform values, rejecting unknown
// entries with a ValidationError.
func ParsePlatforms(raw []string) ([]Platform, error) {
	out := make([]Platform, 0, len(raw))
	for i, value := range raw {
		platform := Platform(value)
		if !platform.Valid() {
			return nil, atelierErrors.NewValidationError(
				fmt.Sprintf("platforms[%d]", i),
				fmt.Sprintf("unknown platform %q", value), nil)
		}
		out = append(out, platform)
	}
	return out, nil
}
