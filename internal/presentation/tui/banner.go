package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{"  _____ _____ ____  ", "#f87171"},
	{" |_   _|_   _|  _ \\ ", "#fb923c"},
	{"   | |   | | | |_) |", "#fbbf24"},
	{"   | |   | | |  __/ ", "#a3e635"},
	{"   |_|   |_| |_|    ", "#34d399"},
}

// PrintBanner writes the ASCII art banner followed by the version line.
// Colors degrade to the terminal's profile (plain text when piped).
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)

	fmt.Fprintln(w)
	for _, line := range bannerLines {
		fmt.Fprintln(w, out.String(line.text).Foreground(out.Color(line.color)))
	}
	fmt.Fprintln(w, out.String("  Fraud TTP framework editor v"+version).Faint())
	fmt.Fprintln(w)
}
