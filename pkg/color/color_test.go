package color

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	atelierErrors "github.com/atelierlabs/atelier/pkg/errors"
)

var hexOutput = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestParseHexAcceptsVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  RGB
	}{
		{name: "six digits with hash", input: "#ff0000", want: RGB{R: 1, G: 0, B: 0}},
		{name: "six digits without hash", input: "00ff00", want: RGB{R: 0, G: 1, B: 0}},
		{name: "three digits", input: "#00f", want: RGB{R: 0, G: 0, B: 1}},
		{name: "uppercase", input: "#FFFFFF", want: RGB{R: 1, G: 1, B: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseHex(tc.input)
			require.NoError(t, err)
			require.InDelta(t, tc.want.R, got.R, 0.005)
			require.InDelta(t, tc.want.G, got.G, 0.005)
			require.InDelta(t, tc.want.B, got.B, 0.005)
		})
	}
}

func TestParseHexRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "#12", "#12345", "#12zz45", "not-a-color", "#1234567"} {
		_, err := ParseHex(input)
		require.Error(t, err, "input %q", input)

		var formatErr *atelierErrors.FormatError
		require.ErrorAs(t, err, &formatErr)
	}
}

func TestHSLToHexAlwaysWellFormed(t *testing.T) {
	t.Parallel()

	for h := -0.5; h <= 1.5; h += 0.25 {
		for s := -0.2; s <= 1.2; s += 0.35 {
			for l := -0.2; l <= 1.2; l += 0.35 {
				require.Regexp(t, hexOutput, HSLToHex(h, s, l))
			}
		}
	}
}

func TestHSLToHexKnownValues(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ff0000", HSLToHex(0, 1, 0.5))
	require.Equal(t, "#00ff00", HSLToHex(1.0/3.0, 1, 0.5))
	require.Equal(t, "#0000ff", HSLToHex(2.0/3.0, 1, 0.5))
	require.Equal(t, "#ffffff", HSLToHex(0, 0, 1))
	require.Equal(t, "#000000", HSLToHex(0, 0, 0))
	require.Equal(t, "#808080", HSLToHex(0.42, 0, 0.5019607843137255))
}

func TestHexToHSLRoundTrip(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#2563eb", "#dc2626", "#10b981", "#64748b", "#f59e0b"} {
		h, s, l, err := HexToHSL(hex)
		require.NoError(t, err)
		require.Equal(t, hex, HSLToHex(h, s, l))
	}
}

func TestContrastRatioReferenceValues(t *testing.T) {
	t.Parallel()

	ratio, err := ContrastRatio("#000000", "#ffffff")
	require.NoError(t, err)
	require.InDelta(t, 21.0, ratio, 0.01)

	// Symmetric in its arguments.
	inverse, err := ContrastRatio("#ffffff", "#000000")
	require.NoError(t, err)
	require.InDelta(t, ratio, inverse, 1e-12)

	for _, hex := range []string{"#000000", "#ffffff", "#2563eb", "#abc"} {
		self, err := ContrastRatio(hex, hex)
		require.NoError(t, err)
		require.InDelta(t, 1.0, self, 1e-12)
	}
}

func TestContrastRatioAtLeastOne(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"#123456", "#654321"},
		{"#fafafa", "#f0f0f0"},
		{"#ff0000", "#00ff00"},
	}
	for _, pair := range pairs {
		ratio, err := ContrastRatio(pair[0], pair[1])
		require.NoError(t, err)
		require.GreaterOrEqual(t, ratio, 1.0)
	}
}

func TestContrastRatioRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	_, err := ContrastRatio("#zzzzzz", "#ffffff")
	require.Error(t, err)

	_, err = ContrastRatio("#ffffff", "oops")
	require.Error(t, err)
}

func TestLuminanceChannelWeights(t *testing.T) {
	t.Parallel()

	// Green dominates luminance, blue contributes least.
	lr := Luminance(RGB{R: 1})
	lg := Luminance(RGB{G: 1})
	lb := Luminance(RGB{B: 1})
	require.Greater(t, lg, lr)
	require.Greater(t, lr, lb)
	require.InDelta(t, 1.0, lr+lg+lb, 1e-9)
}

func TestEnsureContrastDarkensUntilCompliant(t *testing.T) {
	t.Parallel()

	// A pale blue fails 4.5:1 on white and must be darkened.
	adjusted, err := EnsureContrast("#93c5fd", "#ffffff", 4.5)
	require.NoError(t, err)
	require.NotEqual(t, "#93c5fd", adjusted)

	ratio, err := ContrastRatio(adjusted, "#ffffff")
	require.NoError(t, err)
	require.GreaterOrEqual(t, ratio, 4.5)

	// Hue is preserved within rounding error.
	wantHue, _, _, err := HexToHSL("#93c5fd")
	require.NoError(t, err)
	gotHue, _, _, err := HexToHSL(adjusted)
	require.NoError(t, err)
	require.InDelta(t, wantHue, gotHue, 0.02)
}

func TestEnsureContrastLeavesCompliantColor(t *testing.T) {
	t.Parallel()

	adjusted, err := EnsureContrast("#1e40af", "#ffffff", 4.5)
	require.NoError(t, err)
	require.Equal(t, "#1e40af", adjusted)
}

func TestEnsureContrastFailsOnImpossibleRatio(t *testing.T) {
	t.Parallel()

	_, err := EnsureContrast("#777777", "#ffffff", 25.0)
	require.Error(t, err)
}

func TestEnsureContrastDeterministic(t *testing.T) {
	t.Parallel()

	first, err := EnsureContrast("#fca5a5", "#ffffff", 4.5)
	require.NoError(t, err)
	second, err := EnsureContrast("#fca5a5", "#ffffff", 4.5)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestHueWrapsInsteadOfClamping(t *testing.T) {
	t.Parallel()

	require.Equal(t, HSLToHex(0.25, 0.8, 0.5), HSLToHex(1.25, 0.8, 0.5))
	require.Equal(t, HSLToHex(0.75, 0.8, 0.5), HSLToHex(-0.25, 0.8, 0.5))
}
