// Package ui renders formatting run output: colored status lines for plain
// terminals and a live progress view for interactive runs.
package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"schemat/internal/driver"
)

// ColorMode controls whether output is colorized.
type ColorMode string

const (
	ColorAuto ColorMode = "auto"
	ColorOn   ColorMode = "on"
	ColorOff  ColorMode = "off"
)

// ReadColorMode parses a --color flag value.
func ReadColorMode(value string) (ColorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ColorAuto, nil
	case "on":
		return ColorOn, nil
	case "off":
		return ColorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// Apply sets the global color state. isTerminal decides the auto case.
func (m ColorMode) Apply(isTerminal bool) {
	switch m {
	case ColorOn:
		color.NoColor = false
	case ColorOff:
		color.NoColor = true
	default:
		color.NoColor = !isTerminal
	}
}

var (
	okTag     = color.New(color.FgGreen, color.Bold)
	formatTag = color.New(color.FgYellow, color.Bold)
	errorTag  = color.New(color.FgRed, color.Bold)
	cachedTag = color.New(color.FgCyan)
)

// StatusLine renders one result as a tagged line. check switches the
// wording from "was rewritten" to "would be rewritten".
func StatusLine(res driver.Result, check bool) string {
	switch {
	case res.Err != nil:
		return fmt.Sprintf("%s %s: %v", errorTag.Sprintf("%-6s", "ERROR"), res.Path, res.Err)
	case res.Skipped:
		return fmt.Sprintf("%s %s", cachedTag.Sprintf("%-6s", "CACHED"), res.Path)
	case res.Changed && check:
		return fmt.Sprintf("%s %s", errorTag.Sprintf("%-6s", "FAIL"), res.Path)
	case res.Changed:
		return fmt.Sprintf("%s %s", formatTag.Sprintf("%-6s", "FORMAT"), res.Path)
	default:
		return fmt.Sprintf("%s %s", okTag.Sprintf("%-6s", "OK"), res.Path)
	}
}

// Summary renders the closing line of a run.
func Summary(results []driver.Result, check bool) string {
	var failed, changed int
	for _, res := range results {
		if res.Err != nil {
			failed++
		} else if res.Changed {
			changed++
		}
	}
	total := len(results)
	switch {
	case failed > 0:
		return errorTag.Sprint(fmt.Sprintf("%d / %d file(s) failed", failed, total))
	case check && changed > 0:
		return formatTag.Sprint(fmt.Sprintf("%d / %d file(s) need formatting", changed, total))
	case changed > 0:
		return fmt.Sprintf("%d / %d file(s) reformatted", changed, total)
	default:
		return okTag.Sprint(fmt.Sprintf("%d file(s) already formatted", total))
	}
}
