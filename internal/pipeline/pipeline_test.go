package pipeline

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atelierlabs/atelier/internal/logger"
	"github.com/atelierlabs/atelier/internal/model"
	"github.com/atelierlabs/atelier/pkg/errors"
)

func dashboardBrief() model.Brief {
	return model.Brief{
		ProductIdea: "Analytics dashboard for B2B SaaS metrics",
		TargetUsers: []model.TargetUser{model.UserEnterprise},
		BrandTraits: []model.BrandTrait{model.TraitModern, model.TraitProfessional},
		Platforms:   []model.Platform{model.PlatformDashboard, model.PlatformWeb},
		DarkMode:    true,
	}
}

func TestGenerateDashboardScenario(t *testing.T) {
	t.Parallel()

	out, err := Generate(dashboardBrief(), Options{GeneratedAt: time.Unix(1700000000, 0).UTC()})
	require.NoError(t, err)

	require.Equal(t, model.PhilosophyUtilityFirst, out.Principles.Philosophy)
	require.Equal(t, model.DensitySpacious, out.Principles.Density)

	_, ok := out.Tokens.Color("primary-500")
	require.True(t, ok)

	require.True(t, out.Inventory.Contains("Table"))
	require.True(t, out.Inventory.Contains("Navigation"))

	require.NotEmpty(t, out.Library.Components)
	require.NotEmpty(t, out.Library.CSSVariables)
	require.Len(t, out.Review, 3)
	require.NotEmpty(t, out.Guidelines["accessibility"])
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	opts := Options{Name: "metrics-ds", GeneratedAt: time.Unix(1700000000, 0).UTC()}

	first, err := Generate(dashboardBrief(), opts)
	require.NoError(t, err)
	second, err := Generate(dashboardBrief(), opts)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	require.True(t, bytes.Equal(firstJSON, secondJSON))
}

func TestGenerateEmptyTargetUsers(t *testing.T) {
	t.Parallel()

	brief := dashboardBrief()
	brief.TargetUsers = nil

	out, err := Generate(brief, Options{})
	require.Nil(t, out)

	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "target_users", verr.Field)
}

func TestGenerateEmptyProductIdea(t *testing.T) {
	t.Parallel()

	brief := dashboardBrief()
	brief.ProductIdea = "   "

	out, err := Generate(brief, Options{})
	require.Nil(t, out)
	require.Error(t, err)
}

func TestGenerateBadPrimaryColor(t *testing.T) {
	t.Parallel()

	brief := dashboardBrief()
	brief.PrimaryColor = "#zzz"

	out, err := Generate(brief, Options{})
	require.Nil(t, out)

	var ferr *errors.FormatError
	require.ErrorAs(t, err, &ferr)
}

func TestGenerateMobileOnlyIsDense(t *testing.T) {
	t.Parallel()

	brief := model.Brief{
		ProductIdea: "Habit tracking app for consumers",
		TargetUsers: []model.TargetUser{model.UserConsumer},
		BrandTraits: []model.BrandTrait{model.TraitPlayful},
		Platforms:   []model.Platform{model.PlatformMobile},
	}

	out, err := Generate(brief, Options{})
	require.NoError(t, err)
	require.Equal(t, model.DensityDense, out.Principles.Density)
}

func TestGenerateWithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	_, err = Generate(dashboardBrief(), Options{Logger: log})
	require.NoError(t, err)
	require.Contains(t, buf.String(), `"stage":"strategy"`)
	require.Contains(t, buf.String(), `"stage":"render"`)
}

func TestPreviewSkipsRendering(t *testing.T) {
	t.Parallel()

	out, err := Preview(dashboardBrief(), Options{})
	require.NoError(t, err)

	require.Empty(t, out.Library.Components)
	require.Empty(t, out.Library.CSSVariables)
	require.NotEmpty(t, out.Tokens.Colors)
	require.NotEmpty(t, out.Inventory.Components)
	require.Len(t, out.Review, 3)
}

func TestPreviewValidates(t *testing.T) {
	t.Parallel()

	out, err := Preview(model.Brief{ProductIdea: "x", TargetUsers: []model.TargetUser{model.UserB2C}}, Options{})
	require.Nil(t, out)
	require.Error(t, err)
}
