package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/csscolor/pkg/csscolor"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	keyStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5EAEF7"))
	validStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#49C56B"))
	invalidStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F25C54"))
	feintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

type printer interface {
	Print(value string, res csscolor.Result) error
}

type textPrinter struct {
	w io.Writer
}

func (p textPrinter) Print(value string, res csscolor.Result) error {
	status := validStyle.Render("valid  ")
	detail := feintStyle.Render(res.Mode.String())
	if !res.Valid() {
		status = invalidStyle.Render("invalid")
		detail = res.Violation.Message
	}
	if res.Mode == "" {
		detail = feintStyle.Render("empty, skipped")
	}

	_, err := fmt.Fprintf(p.w, "%s %s%s %s\n", status, swatch(value, res), fmt.Sprintf("%q", value), detail)
	return err
}

// swatch renders a colored block for hex values a terminal can display.
func swatch(value string, res csscolor.Result) string {
	if !res.Valid() || (res.Mode != csscolor.HexLong && res.Mode != csscolor.HexShort) {
		return ""
	}
	if len(value) != 4 && len(value) != 7 {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("  ") + " "
}

type jsonResult struct {
	Value      string            `json:"value"`
	Valid      bool              `json:"valid"`
	Mode       string            `json:"mode,omitempty"`
	Message    string            `json:"message,omitempty"`
	Code       string            `json:"code,omitempty"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

type jsonPrinter struct {
	enc *json.Encoder
}

func newJSONPrinter(w io.Writer) jsonPrinter {
	return jsonPrinter{enc: json.NewEncoder(w)}
}

func (p jsonPrinter) Print(value string, res csscolor.Result) error {
	out := jsonResult{
		Value: value,
		Valid: res.Valid(),
		Mode:  res.Mode.String(),
	}
	if res.Violation != nil {
		out.Message = res.Violation.Message
		out.Code = res.Violation.Code
		out.Parameters = res.Violation.Parameters
	}
	return p.enc.Encode(out)
}
