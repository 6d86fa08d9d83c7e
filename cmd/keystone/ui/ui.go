// Package ui renders keystone command output for the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	accent  = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	good    = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))
	bad     = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	caution = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	muted   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	rule    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Banner opens boot output with the build and where its metadata came from.
func Banner(build, source string) string {
	return "Booting " + accent.Render(build) + " " + muted.Render("("+source+")")
}

// StepDone renders a finished construction step with its recorded details.
func StepDone(title, detail string) string {
	line := "  " + good.Render("✓") + " " + title
	if detail != "" {
		line += " " + muted.Render(detail)
	}
	return line
}

// StepFailed renders a construction step that aborted the boot.
func StepFailed(title, reason string) string {
	return "  " + bad.Render("✗") + " " + title + " (" + strings.TrimSpace(reason) + ")"
}

// Warning renders a problem the command reports but does not fail on.
func Warning(err error) string {
	return caution.Render("!") + " " + err.Error()
}

// Failure renders an error inline, in place of a value that could not be
// resolved.
func Failure(err error) string {
	return bad.Render("✗") + " " + err.Error()
}

// YesNo renders a platform or adapter flag.
func YesNo(v bool) string {
	if v {
		return good.Render("yes")
	}
	return muted.Render("no")
}

// Value renders s, or a muted dash for a field the host could not provide.
func Value(s string) string {
	if strings.TrimSpace(s) == "" {
		return muted.Render("-")
	}
	return s
}

// Adapters renders the adapter choice of a build. Builds that decide between
// VR and a window at startup pass both; the rest leave vr empty.
func Adapters(windowed, vr string) string {
	if vr == "" {
		return windowed
	}
	return vr + " or " + windowed
}

// Summary collects labelled values and renders them with aligned labels.
type Summary struct {
	labels []string
	values []string
}

// Add appends a row and returns s for chaining.
func (s *Summary) Add(label, value string) *Summary {
	s.labels = append(s.labels, label)
	s.values = append(s.values, value)
	return s
}

// String renders one "label:  value" line per row, with a trailing newline.
func (s *Summary) String() string {
	width := 0
	for _, l := range s.labels {
		width = max(width, len(l))
	}

	var sb strings.Builder
	for i, l := range s.labels {
		fmt.Fprintf(&sb, "%s %s\n", muted.Render(fmt.Sprintf("%-*s", width+1, l+":")), s.values[i])
	}
	return sb.String()
}

// ProfileColumns are the columns of ProfileTable, in order.
var ProfileColumns = []string{"PROFILE", "BUILD", "PLATFORM", "GRAPHICS", "ADAPTER"}

// ProfileTable renders the supported builds, one row per profile.
func ProfileTable(rows [][]string) string {
	header := accent.Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	// Dual-mode rows stand out; everything else alternates.
	dual := cell.Foreground(lipgloss.Color("99"))

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(rule).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == len(ProfileColumns)-1 && row < len(rows) && strings.Contains(rows[row][col], " or "):
				return dual
			case row%2 == 1:
				return cell.Foreground(lipgloss.Color("243"))
			default:
				return cell
			}
		}).
		Headers(ProfileColumns...).
		Rows(rows...).
		String()
}
