// Copyright 2024, The Bitstring Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// styler renders styled text, or plain text when color is disabled
// (honoring --no-color and the NO_COLOR environment convention).
type styler struct {
	noColor bool
}

func newStyler(noColor bool) styler { return styler{noColor: noColor} }

func (s styler) render(style lipgloss.Style, text string) string {
	if s.noColor {
		return text
	}
	return style.Render(text)
}
