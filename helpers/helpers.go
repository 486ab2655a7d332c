package helpers

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// FormatPrice formats a USD price in cents as a grouped dollar amount,
// e.g. 125000000 -> "$1,250,000".
func FormatPrice(cents int64) string {
	dollars := cents / 100
	neg := dollars < 0
	if neg {
		dollars = -dollars
	}

	s := fmt.Sprintf("%d", dollars)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}

// FormatArea formats floor area in square meters
func FormatArea(sqm int) string {
	return fmt.Sprintf("%d m²", sqm)
}

// FormatBedsBaths renders the beds/baths summary line
func FormatBedsBaths(beds, baths int) string {
	return fmt.Sprintf("%d bd · %d ba", beds, baths)
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), len(s))
	return rainbow(lipgloss.NewStyle(), s, blends)
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var result string
	for i, c := range str {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		result += baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c))
	}
	return result
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ToHex converts a color to hex string
func ToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}
