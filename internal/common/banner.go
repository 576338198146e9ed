package common

import (
	"github.com/ternarybob/banner"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

// PrintBanner displays the application banner
func PrintBanner() {
	banner.PrintSimple("entries-publisher", Version)
}
