package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner shown when the chat starts.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Teal-to-blue gradient
	s1 := termenv.String("  ____                                ").Foreground(p.Color("#34d399"))
	s2 := termenv.String(" |  _ \\ ___ _ __ ___   ___  ___  __ _ ").Foreground(p.Color("#2dd4bf"))
	s3 := termenv.String(" | |_) / _ \\ '_ ` _ \\ / _ \\/ __|/ _` |").Foreground(p.Color("#22d3ee"))
	s4 := termenv.String(" |  _ <  __/ | | | | |  __/\\__ \\ (_| |").Foreground(p.Color("#38bdf8"))
	s5 := termenv.String(" |_| \\_\\___|_| |_| |_|\\___||___/\\__,_|").Foreground(p.Color("#818cf8"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
