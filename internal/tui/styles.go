package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const appName = "keynav"

var breadcrumbPadStyle = lipgloss.NewStyle().Padding(0, 1)

func renderBreadcrumb(segments ...string) string {
	var parts []string
	chevron := activeTheme.Branch.Render(" > ")
	style := activeTheme.HintText.Bold(true)
	for _, seg := range segments {
		parts = append(parts, style.Render(seg))
	}
	return breadcrumbPadStyle.Render(strings.Join(parts, chevron))
}

func renderSeparator(width int) string {
	return activeTheme.Branch.Render(strings.Repeat("─", width))
}

func renderTabs(tabs []Screen, active Screen) string {
	var parts []string
	for i, s := range tabs {
		label := fmt.Sprintf(" %d %s ", i+1, s)
		if s == active {
			parts = append(parts, activeTheme.ActiveTab.Render(label))
		} else {
			parts = append(parts, activeTheme.InactiveTab.Render(label))
		}
	}
	return strings.Join(parts, "  ")
}
