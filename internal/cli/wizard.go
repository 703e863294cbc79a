package cli

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dgilligan/folio/internal/cli/formatter"
	"github.com/dgilligan/folio/internal/contact"
)

// folioHuhTheme returns a huh theme built from the active palette.
func folioHuhTheme(p formatter.Palette) *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: accent color
	t.Focused.Title = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(p.Fg).Background(p.Accent).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(p.Dim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(p.Accent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.Accent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(p.Fg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(p.Dim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(p.Dim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(p.Red)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(p.Red)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(p.Dim)

	return t
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return errors.New("enter a valid email address")
	}
	return nil
}

func validateMessage(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("message is required")
	}
	return nil
}

// contactForm builds the three-field contact form bound to f.
func contactForm(p formatter.Palette, f *contact.Fields, width int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name (optional)").
				Placeholder("Jane Doe").
				Value(&f.Name),
			huh.NewInput().
				Title("Email").
				Placeholder("jane@example.com").
				Value(&f.Email).
				Validate(validateEmail),
			huh.NewText().
				Title("Message").
				Lines(5).
				Value(&f.Message).
				Validate(validateMessage),
		),
	).WithTheme(folioHuhTheme(p)).WithShowHelp(false).WithWidth(width)
}

// submitContact hands the form to the adapter and reports the outcome in
// the status line.
func submitContact(state *SharedState, f contact.Fields) tea.Cmd {
	return func() tea.Msg {
		uri, err := state.App.Contact.SubmitChecked(context.Background(), f)
		if err != nil {
			return statusMsg{text: "Could not open a mail client. Send to " + uri}
		}
		return statusMsg{text: "Opened mail client for " + contact.Recipient}
	}
}

// startContactWizard pushes the contact form onto the view stack.
func startContactWizard(state *SharedState) tea.Cmd {
	fields := &contact.Fields{}
	form := contactForm(state.Palette, fields, state.ContentWidth())
	return startWizardCmd(state, "Contact", form, func() tea.Cmd {
		return submitContact(state, *fields)
	})
}
