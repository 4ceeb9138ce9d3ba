package infra

import (
	"fmt"
)

// ANSI Color Codes
const (
	ColorReset = "\033[0m"
	ColorCyan  = "\033[36m"
)

// PrintBanner displays the startup banner.
func PrintBanner(cfg *Config) {
	color, reset := ColorCyan, ColorReset
	if !cfg.UI.Color {
		color, reset = "", ""
	}

	fmt.Println()
	fmt.Printf("%s###############################################%s\n", color, reset)
	fmt.Printf("%s#                                             #%s\n", color, reset)
	fmt.Printf("%s#   🔢 %-37s #%s\n", color, cfg.App.Name, reset)
	fmt.Printf("%s#                                             #%s\n", color, reset)
	fmt.Printf("%s#   VERSION: %-31s #%s\n", color, cfg.App.Version, reset)
	fmt.Printf("%s#   BASES:   %-31s #%s\n", color, "binary / octal / decimal / hex", reset)
	fmt.Printf("%s#                                             #%s\n", color, reset)
	fmt.Printf("%s###############################################%s\n", color, reset)
}
