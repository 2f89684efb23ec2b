package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []string{
	`                 _         _`,
	` _ __  _   _ ___| |__   __| | _____      ___ __`,
	`| '_ \| | | / __| '_ \ / _' |/ _ \ \ /\ / / '_ \`,
	`| |_) | |_| \__ \ | | | (_| | (_) \ V  V /| | | |`,
	`| .__/ \__,_|___/_| |_|\__,_|\___/ \_/\_/ |_| |_|`,
	`|_|`,
}

var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9", "#f472b6", "#fb7185"}

// PrintBanner writes the ASCII art banner followed by the version.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()

	fmt.Fprintln(w)
	for i, line := range bannerLines {
		fmt.Fprintln(w, termenv.String(line).Foreground(p.Color(bannerColors[i])))
	}
	fmt.Fprintln(w, termenv.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
