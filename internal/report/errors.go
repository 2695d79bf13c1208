// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/MKhiriev/go-build-config/internal/resolver"
)

type styles struct {
	header lipgloss.Style
	path   lipgloss.Style
	code   lipgloss.Style
	detail lipgloss.Style
	box    lipgloss.Style
	cell   lipgloss.Style
}

func newStyles(w io.Writer, color bool) styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return styles{
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		path:   r.NewStyle().Bold(true),
		code:   r.NewStyle().Foreground(lipgloss.Color("11")),
		detail: r.NewStyle().Faint(true),
		box:    r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
	}
}

// WriteErrors renders err for a terminal. Resolution batches are listed
// entry by entry with path, code and cause; other errors are printed as a
// single message. Colors are used only when color is set and w is a
// terminal that supports them.
func WriteErrors(w io.Writer, err error, color bool) error {
	if err == nil {
		return nil
	}
	st := newStyles(w, color)

	errs, ok := resolver.AsErrors(err)
	if !ok {
		_, werr := fmt.Fprintln(w, st.header.Render("error:")+" "+err.Error())
		return werr
	}

	noun := "errors"
	if errs.Len() == 1 {
		noun = "error"
	}

	var b strings.Builder
	b.WriteString(st.header.Render(fmt.Sprintf("%d configuration %s", errs.Len(), noun)))
	for _, e := range errs.Errors {
		b.WriteString("\n")
		b.WriteString(st.path.Render(e.Path))
		b.WriteString("  ")
		b.WriteString(st.code.Render(string(e.Code)))
		if cause := causeOf(e); cause != "" {
			b.WriteString("\n  ")
			b.WriteString(st.detail.Render(cause))
		}
	}

	_, werr := fmt.Fprintln(w, st.box.Render(b.String()))
	return werr
}

// causeOf returns the most specific message of e, without the taxonomy
// sentinel prefix the resolver adds.
func causeOf(e *resolver.OptionError) string {
	if e.Err == nil {
		return ""
	}
	msg := e.Err.Error()
	if sentinel := e.Code.Sentinel(); sentinel != nil && errors.Is(e.Err, sentinel) {
		msg = strings.TrimPrefix(msg, sentinel.Error()+": ")
	}
	return msg
}
