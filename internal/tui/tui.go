// Package tui renders the landing page in a terminal with lipgloss.
//
// [TUI] implements the landing page and form views over an io.Writer so the
// same controller that serves the browser drives the preview command.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/webinar-landing/internal/app"
	"github.com/MKhiriev/webinar-landing/internal/logger"
	"github.com/MKhiriev/webinar-landing/models"
	"github.com/charmbracelet/lipgloss"
)

const descriptionWidth = 60

type TUI struct {
	out    io.Writer
	submit models.SubmitControl

	logger *logger.Logger
}

func New(out io.Writer, logger *logger.Logger) *TUI {
	return &TUI{
		out:    out,
		submit: models.SubmitControl{Label: app.MsgSubmitLabel, Enabled: true},
		logger: logger,
	}
}

// RenderPage prints the webinar texts and the call to action.
func (t *TUI) RenderPage(_ context.Context, content models.PageContent) error {
	var b strings.Builder

	b.WriteString(wrapText(content.Description, descriptionWidth))
	b.WriteString("\n\n")
	b.WriteString("Fecha: ")
	b.WriteString(valueOrDash(content.Date))
	b.WriteString("\n")
	b.WriteString("Hora: ")
	b.WriteString(valueOrDash(content.Time))
	b.WriteString("\n\n")
	b.WriteString(buttonStyle.Render(content.CTALabel))

	footer := "Registro por webhook"
	if content.Mode == models.DispatchWhatsApp {
		footer = "Registro por WhatsApp"
	}

	return t.print(renderPanel(fitText(content.Title, len(uiDivider)), b.String(), footer))
}

// RenderBuildInfo prints the version panel.
func (t *TUI) RenderBuildInfo(info models.AppBuildInfo) error {
	return t.print(renderBuildInfoWindow(info))
}

// ShowError prints err below the page, shortened for transport failures.
func (t *TUI) ShowError(err error) {
	if err == nil {
		return
	}
	t.write("  " + errorStyle.Render(humanizeUnavailableError(err)))
}

func (t *TUI) ShowAlert(msg string) {
	t.write(appStyle.Render(alertBoxStyle.Render(msg)))
}

func (t *TUI) CloseModal() {
	t.logger.Debug().Msg("registration modal closed")
}

func (t *TUI) ResetForm() {
	t.logger.Debug().Msg("registration form reset")
}

// OpenLink prints url; a terminal cannot follow it on the visitor's behalf.
func (t *TUI) OpenLink(url string) {
	t.write("  Abre este enlace para completar tu registro:\n  " + linkStyle.Render(url))
}

func (t *TUI) SubmitControl() models.SubmitControl {
	return t.submit
}

func (t *TUI) SetSubmitControl(control models.SubmitControl) {
	t.submit = control

	style := buttonStyle
	if !control.Enabled {
		style = disabledButtonStyle
	}
	t.write("  " + style.Render(control.Label))
}

func (t *TUI) print(s string) error {
	if _, err := fmt.Fprintln(t.out, s); err != nil {
		return fmt.Errorf("write to terminal: %w", err)
	}
	return nil
}

// write is print for the form callbacks, which cannot return errors.
func (t *TUI) write(s string) {
	if err := t.print(s); err != nil {
		t.logger.Err(err).Msg("terminal output failed")
	}
}

func wrapText(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
