// Package color provides the color math used by token generation: HSL/hex
// conversion and WCAG relative-luminance contrast calculation.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	atelierErrors "github.com/atelierlabs/atelier/pkg/errors"
)

var hexPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$|^[0-9a-fA-F]{3}$`)

// RGB holds color channels in the [0, 1] range.
type RGB struct {
	R float64
	G float64
	B float64
}

// ParseHex decodes a 3- or 6-digit hex color with an optional leading '#'.
// Malformed input yields a FormatError; no default color is ever substituted.
func ParseHex(s string) (RGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if !hexPattern.MatchString(raw) {
		return RGB{}, atelierErrors.NewFormatError(s, "not a 3- or 6-digit hex color")
	}

	if len(raw) == 3 {
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]})
	}

	r, _ := strconv.ParseUint(raw[0:2], 16, 8)
	g, _ := strconv.ParseUint(raw[2:4], 16, 8)
	b, _ := strconv.ParseUint(raw[4:6], 16, 8)

	return RGB{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}, nil
}

// Hex renders the color as a lowercase 6-digit hex string with leading '#'.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func channelByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255.0))
}

func clamp01(v float64) float64 {
	return math.Min(1.0, math.Max(0.0, v))
}

// HSLToHex converts hue, saturation, and lightness (each in [0, 1]) to a hex
// string. Out-of-range inputs are clamped rather than rejected; the function
// is total over float64 inputs.
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

// HSLToRGB converts HSL coordinates to RGB channels. Inputs are clamped to
// [0, 1], with hue wrapping instead of clamping so interpolation across the
// red boundary behaves.
func HSLToRGB(h, s, l float64) RGB {
	h = h - math.Floor(h)
	s = clamp01(s)
	l = clamp01(l)

	if s == 0 {
		return RGB{R: l, G: l, B: l}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: hueToChannel(p, q, h+1.0/3.0),
		G: hueToChannel(p, q, h),
		B: hueToChannel(p, q, h-1.0/3.0),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// HexToHSL decodes a hex color and returns its HSL coordinates, each in [0, 1].
func HexToHSL(s string) (h, sat, l float64, err error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return 0, 0, 0, err
	}

	max := math.Max(rgb.R, math.Max(rgb.G, rgb.B))
	min := math.Min(rgb.R, math.Min(rgb.G, rgb.B))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l, nil
	}

	d := max - min
	if l > 0.5 {
		sat = d / (2 - max - min)
	} else {
		sat = d / (max + min)
	}

	switch max {
	case rgb.R:
		h = (rgb.G - rgb.B) / d
		if rgb.G < rgb.B {
			h += 6
		}
	case rgb.G:
		h = (rgb.B-rgb.R)/d + 2
	default:
		h = (rgb.R-rgb.G)/d + 4
	}
	h /= 6

	return h, sat, l, nil
}

// Luminance computes WCAG relative luminance for the color.
func Luminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// linearize applies sRGB gamma expansion with the WCAG 0.03928 threshold.
func linearize(channel float64) float64 {
	if channel <= 0.03928 {
		return channel / 12.92
	}
	return math.Pow((channel+0.055)/1.055, 2.4)
}

// ContrastRatio computes the WCAG contrast ratio between two hex colors.
// The result is always >= 1.0; black on white is 21.0.
func ContrastRatio(hexA, hexB string) (float64, error) {
	a, err := ParseHex(hexA)
	if err != nil {
		return 0, err
	}
	b, err := ParseHex(hexB)
	if err != nil {
		return 0, err
	}

	la := Luminance(a)
	lb := Luminance(b)

	lighter := math.Max(la, lb)
	darker := math.Min(la, lb)

	return (lighter + 0.05) / (darker + 0.05), nil
}

// EnsureContrast darkens a color until it reaches at least minRatio against
// the background, preserving hue and saturation. The color is returned
// unchanged if it already meets the ratio. Lightness is reduced in fixed steps
// so the result is deterministic; if even a near-black shade cannot reach the
// ratio the function fails instead of returning a color that looks compliant.
func EnsureContrast(hex, backgroundHex string, minRatio float64) (string, error) {
	ratio, err := ContrastRatio(hex, backgroundHex)
	if err != nil {
		return "", err
	}
	if ratio >= minRatio {
		return hex, nil
	}

	h, s, l, err := HexToHSL(hex)
	if err != nil {
		return "", err
	}

	adjusted := hex
	for attempts := 0; ratio < minRatio && attempts < 50; attempts++ {
		l = math.Max(0.05, l-0.08)
		adjusted = HSLToHex(h, s, l)
		ratio, err = ContrastRatio(adjusted, backgroundHex)
		if err != nil {
			return "", err
		}
		if l <= 0.05 {
			break
		}
	}

	if ratio < minRatio {
		return "", fmt.Errorf("cannot reach contrast %.2f against %s from %s", minRatio, backgroundHex, hex)
	}

	return adjusted, nil
}
