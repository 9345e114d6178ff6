package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	atelierErrors "github.com/atelierlabs/atelier/pkg/errors"
)

func TestParseTargetUsersAcceptsKnownValues(t *testing.T) {
	t.Parallel()

	users, err := ParseTargetUsers([]string{"enterprise", "b2b"})
	require.NoError(t, err)
	require.Equal(t, []TargetUser{UserEnterprise, UserB2B}, users)
}

func TestParseTargetUsersRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	_, err := ParseTargetUsers([]string{"enterprise", "aliens"})
	require.Error(t, err)

	var validationErr *atelierErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "target_users[1]", validationErr.Field)
}

func TestParseBrandTraitsRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	_, err := ParseBrandTraits([]string{"modern", "edgy"})
	require.Error(t, err)

	var validationErr *atelierErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "brand_traits[1]", validationErr.Field)
}

func TestParsePlatformsRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	_, err := ParsePlatforms([]string{"web", "kiosk"})
	require.Error(t, err)

	var validationErr *atelierErrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "platforms[1]", validationErr.Field)
}

func TestBriefMembershipHelpers(t *testing.T) {
	t.Parallel()

	brief := Brief{
		ProductIdea: "team expense tracker",
		TargetUsers: []TargetUser{UserB2B},
		BrandTraits: []BrandTrait{TraitModern, TraitProfessional},
		Platforms:   []Platform{PlatformWeb, PlatformDashboard},
	}

	require.True(t, brief.HasUser(UserB2B))
	require.False(t, brief.HasUser(UserConsumer))
	require.True(t, brief.HasTrait(TraitModern))
	require.False(t, brief.HasTrait(TraitPlayful))
	require.True(t, brief.HasPlatform(PlatformDashboard))
	require.False(t, brief.HasPlatform(PlatformMobile))
	require.False(t, brief.OnlyPlatform(PlatformWeb))

	mobileOnly := Brief{Platforms: []Platform{PlatformMobile}}
	require.True(t, mobileOnly.OnlyPlatform(PlatformMobile))
}

func TestTokensColorLookup(t *testing.T) {
	t.Parallel()

	tokens := Tokens{Colors: []ColorToken{
		{Name: "primary-500", Value: "#2563eb", Role: RolePrimary},
		{Name: "neutral-700", Value: "#334155", Role: RoleNeutral},
	}}

	value, ok := tokens.Color("primary-500")
	require.True(t, ok)
	require.Equal(t, "#2563eb", value)

	_, ok = tokens.Color("primary-950")
	require.False(t, ok)
}

func TestComponentSpecAppliesTo(t *testing.T) {
	t.Parallel()

	spec := ComponentSpec{
		Name:      "Table",
		Platforms: []Platform{PlatformWeb, PlatformDashboard},
	}
	require.True(t, spec.AppliesTo(PlatformDashboard))
	require.False(t, spec.AppliesTo(PlatformMobile))
}

func TestCanonicalEnumOrderIsStable(t *testing.T) {
	t.Parallel()

	// The trait tie-break in the strategy rules depends on this order.
	require.Equal(t, []BrandTrait{
		TraitModern, TraitClinical, TraitPlayful, TraitPremium,
		TraitBold, TraitMinimal, TraitWarm, TraitProfessional,
	}, BrandTraits)
}
