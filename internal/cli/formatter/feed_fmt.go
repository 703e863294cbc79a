package formatter

import (
	"fmt"
	"strings"

	"github.com/dgilligan/folio/internal/content"
	"github.com/dgilligan/folio/internal/domain"
)

// FormatHero renders the name block at the top of the page.
func FormatHero(p Palette, prof domain.Profile, width int) string {
	var b strings.Builder
	b.WriteString(p.NameStyle(prof.DisplayName()))
	if prof.Tagline != "" {
		b.WriteString("\n" + p.Faint(prof.Tagline))
	}
	if prof.Headline != "" {
		b.WriteString("\n\n" + p.Text(Wrap(prof.Headline, width)))
	}
	if prof.Availability != "" {
		b.WriteString("\n" + p.Good("● "+prof.Availability))
	}
	if prof.CurrentRole != "" || prof.CurrentFocus != "" {
		b.WriteString("\n")
	}
	if prof.CurrentRole != "" {
		b.WriteString("\n" + p.Faint("Current role  ") + p.Text(prof.CurrentRole))
	}
	if prof.CurrentFocus != "" {
		b.WriteString("\n" + p.Faint("Focus         ") + p.Text(prof.CurrentFocus))
	}
	return b.String()
}

// FormatAbout renders the about paragraphs.
func FormatAbout(p Palette, prof domain.Profile, width int) string {
	paras := make([]string, 0, len(prof.About))
	for _, para := range prof.About {
		paras = append(paras, p.Text(Wrap(para, width)))
	}
	return p.Header("About") + "\n" + strings.Join(paras, "\n\n")
}

// RoleCard renders the teaser card for a role on the page.
func RoleCard(p Palette, r domain.Role, focused bool, width int) string {
	title := r.Title
	body := p.Faint(r.Subtitle())
	if r.Dates != "" {
		body += "\n" + p.Faint(r.Dates)
	}
	if s := r.Summary(); s != "" {
		body += "\n" + p.Text(Wrap(s, width-6))
	}
	body += "\n" + p.Link("enter: details")
	if focused {
		return p.FocusBox(title, body, width)
	}
	return p.RenderBox(title, body, width)
}

// FormatRoleDetail renders the full role for the detail dialog.
func FormatRoleDetail(p Palette, r domain.Role, width int) string {
	var b strings.Builder
	if sub := r.Subtitle(); sub != "" {
		b.WriteString(p.Bold(sub) + "\n")
	}
	if r.Dates != "" {
		b.WriteString(p.Faint(r.Dates) + "\n")
	}
	if len(r.Bullets) > 0 {
		b.WriteString("\n" + p.Bullets(r.Bullets, width))
	}
	return strings.TrimRight(b.String(), "\n")
}

// CertificateCard renders a certificate line. Certificates with an image
// get a box and can take focus; the rest render as a plain entry.
func CertificateCard(p Palette, c domain.Certificate, focused bool, width int) string {
	meta := strings.Join(nonEmpty(c.Provider, c.Date), " · ")
	if !c.HasImage() {
		line := p.Text(c.Title)
		if meta != "" {
			line += "  " + p.Faint(meta)
		}
		if c.Note != "" {
			line += "\n  " + p.Faint(Wrap(c.Note, width-2))
		}
		return line
	}
	body := p.Faint(meta)
	if c.Note != "" {
		body += "\n" + p.Text(Wrap(c.Note, width-6))
	}
	body += "\n" + p.Link("enter: view certificate")
	if focused {
		return p.FocusBox(c.Title, body, width)
	}
	return p.RenderBox(c.Title, body, width)
}

// FormatCertificateDetail renders the certificate dialog body. The image
// path is shown as a reference; terminals do not display it.
func FormatCertificateDetail(p Palette, c domain.Certificate) string {
	var b strings.Builder
	if c.Provider != "" {
		b.WriteString(p.Bold(c.Provider) + "\n")
	}
	if c.Date != "" {
		b.WriteString(p.Faint(c.Date) + "\n")
	}
	if c.Note != "" {
		b.WriteString("\n" + p.Text(c.Note) + "\n")
	}
	b.WriteString("\n" + p.Faint("Image  ") + p.Link(c.Image))
	return b.String()
}

// FormatPartTime renders the previous part-time roles list.
func FormatPartTime(p Palette, roles []string, width int) string {
	if len(roles) == 0 {
		return ""
	}
	return p.Header("Previous part-time") + "\n" + p.Bullets(roles, width)
}

// FormatQualifications renders the qualifications section.
func FormatQualifications(p Palette, qs []domain.Qualification, width int) string {
	if len(qs) == 0 {
		return ""
	}
	blocks := make([]string, 0, len(qs))
	for _, q := range qs {
		var b strings.Builder
		b.WriteString(p.Bold(q.Title))
		if q.Grade != "" {
			b.WriteString("  " + p.Good(q.Grade))
		}
		if meta := strings.Join(nonEmpty(q.Institution, q.Dates), " · "); meta != "" {
			b.WriteString("\n" + p.Faint(meta))
		}
		if q.Note != "" {
			b.WriteString("\n" + p.Text(Wrap(q.Note, width)))
		}
		blocks = append(blocks, b.String())
	}
	return p.Header("Qualifications") + "\n" + strings.Join(blocks, "\n\n")
}

// FormatErpSystems renders the ERP systems as a table.
func FormatErpSystems(p Palette, systems []domain.ErpSystem, width int) string {
	if len(systems) == 0 {
		return ""
	}
	rows := make([][]string, 0, len(systems))
	for _, s := range systems {
		rows = append(rows, []string{s.Product, s.Company, s.Dates, s.Role})
	}
	return p.Header("ERP systems") + "\n" +
		strings.TrimRight(p.RenderTable([]string{"PRODUCT", "COMPANY", "DATES", "ROLE"}, rows, width), "\n")
}

// FormatContactSection renders the contact call to action followed by hint.
func FormatContactSection(p Palette, prof domain.Profile, width int, hint string) string {
	var b strings.Builder
	b.WriteString(p.Header("Contact"))
	if prof.ContactBlurb != "" {
		b.WriteString("\n" + p.Text(Wrap(prof.ContactBlurb, width)))
	}
	if prof.Email != "" {
		b.WriteString("\n" + p.Faint("Email  ") + p.Link(prof.Email))
	}
	if hint != "" {
		b.WriteString("\n" + p.Highlight(hint))
	}
	return b.String()
}

// FormatRoleList renders roles as a table for the roles command.
func FormatRoleList(p Palette, roles []domain.Role, width int) string {
	if len(roles) == 0 {
		return p.Faint("No roles.") + "\n"
	}
	rows := make([][]string, 0, len(roles))
	for _, r := range roles {
		rows = append(rows, []string{p.Highlight(r.ID), r.Dates, r.Company, r.Title})
	}
	return p.RenderTable([]string{"ID", "DATES", "COMPANY", "TITLE"}, rows, width)
}

// FormatRole renders one role in full for the role command.
func FormatRole(p Palette, r domain.Role, width int) string {
	return p.Header(r.Title) + "\n" + FormatRoleDetail(p, r, width) + "\n"
}

// FormatCertificateList renders certificates as a table. Rows that can be
// opened in the viewer are marked.
func FormatCertificateList(p Palette, certs []domain.Certificate, width int) string {
	if len(certs) == 0 {
		return p.Faint("No certificates.") + "\n"
	}
	rows := make([][]string, 0, len(certs))
	for _, c := range certs {
		mark := " "
		if c.HasImage() {
			mark = p.Good("◆")
		}
		rows = append(rows, []string{mark, c.Date, c.Provider, c.Title})
	}
	return p.RenderTable([]string{" ", "DATE", "PROVIDER", "TITLE"}, rows, width)
}

// FormatValidation renders the result of a feed check.
func FormatValidation(p Palette, roles, certs int, errs []error) string {
	if len(errs) == 0 {
		return p.Good("✔ feed ok") + p.Faint(fmt.Sprintf("  %d roles, %d certificates", roles, certs)) + "\n"
	}
	var b strings.Builder
	b.WriteString(p.Bad(fmt.Sprintf("✖ %d problem(s)", len(errs))) + "\n")
	for _, err := range errs {
		b.WriteString("  " + p.Faint("-") + " " + err.Error() + "\n")
	}
	return b.String()
}

// ContentWidth returns the text width used inside a page of the given
// terminal width.
func ContentWidth(termWidth int) int {
	if termWidth <= 0 {
		return 80
	}
	return max(min(termWidth-4, 96), 20)
}

func nonEmpty(vals ...string) []string {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// FormatPage renders every section in page order for non-interactive
// output. A width of zero uses the default content width.
func FormatPage(p Palette, f *content.Feed, width int) string {
	w := ContentWidth(width)
	sections := []string{FormatHero(p, f.Profile, w)}
	if len(f.Profile.About) > 0 {
		sections = append(sections, FormatAbout(p, f.Profile, w))
	}
	if len(f.Roles) > 0 {
		roles := make([]string, 0, len(f.Roles))
		for _, r := range f.Roles {
			roles = append(roles, p.Bold(r.Title)+"\n"+FormatRoleDetail(p, r, w))
		}
		sections = append(sections, p.Header("Work experience")+"\n"+strings.Join(roles, "\n\n"))
	}
	sections = append(sections,
		FormatPartTime(p, f.PreviousPartTime, w),
		FormatContactSection(p, f.Profile, w, "run: folio contact --email <you> --message <text>"),
		FormatQualifications(p, f.Qualifications, w),
	)
	if len(f.Certificates) > 0 {
		sections = append(sections, p.Header("Certificates")+"\n"+
			strings.TrimRight(FormatCertificateList(p, f.Certificates, w), "\n"))
	}
	sections = append(sections, FormatErpSystems(p, f.ErpSystems, w))

	out := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n\n") + "\n"
}
