package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"blocgraph/internal/collab"
	"blocgraph/internal/movies"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
	ansiGray   = "\x1b[90m"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// sideLabel paints a verdict in its bloc colour when colorize is set.
func sideLabel(side movies.Side, colorize bool) string {
	label := side.String()
	if !colorize {
		return label
	}
	switch side {
	case movies.Western:
		return ansiBlue + label + ansiReset
	case movies.Eastern:
		return ansiRed + label + ansiReset
	case movies.LackOfData:
		return ansiYellow + label + ansiReset
	default:
		return ansiGray + label + ansiReset
	}
}

// toneLabel turns "same_western" into "Same Western".
func toneLabel(t collab.Tone) string {
	return cases.Title(language.English).String(strings.ReplaceAll(t.String(), "_", " "))
}

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func formatPercent(share float64) string {
	return fmt.Sprintf("%.1f%%", share*100)
}

const statusLabelWidth = 16

// renderStatusLine formats one check as "  Label:  [OK] detail".
func renderStatusLine(label string, ok bool, detail string, colorize bool) string {
	status, color := "OK", ansiGreen
	if !ok {
		status, color = "FAIL", ansiRed
	}
	base := fmt.Sprintf("  %-*s [%s] %s", statusLabelWidth, label+":", status, detail)
	if colorize {
		return color + base + ansiReset
	}
	return base
}

func renderSectionHeader(title string) string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	return line + "\n" + strings.Repeat("-", len(line))
}
