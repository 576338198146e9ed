package common

import "testing"

func TestPrintBanner(t *testing.T) {
	// Purely cosmetic output; just make sure it runs with the default and
	// with an overridden version.
	PrintBanner()

	prev := Version
	defer func() { Version = prev }()
	Version = "1.2.3"
	PrintBanner()
}
