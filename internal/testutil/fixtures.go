package testutil

import (
	"fmt"

	"github.com/dgilligan/folio/internal/content"
	"github.com/dgilligan/folio/internal/domain"
	"github.com/google/uuid"
)

// Role options
type RoleOption func(*domain.Role)

func WithRoleID(id string) RoleOption {
	return func(r *domain.Role) {
		r.ID = id
	}
}

func WithBullets(b ...string) RoleOption {
	return func(r *domain.Role) {
		r.Bullets = b
	}
}

// NewTestRole builds a role with a random id unless WithRoleID is given.
func NewTestRole(title string, opts ...RoleOption) domain.Role {
	r := domain.Role{
		ID:       uuid.New().String(),
		Title:    title,
		Company:  "Test Co.",
		Location: "Aberdeen, UK",
		Dates:    "Jan 2020 – Present",
		Bullets:  []string{fmt.Sprintf("%s did things.", title)},
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Certificate options
type CertOption func(*domain.Certificate)

func WithImage(path string) CertOption {
	return func(c *domain.Certificate) {
		c.Image = path
	}
}

func WithoutImage() CertOption {
	return func(c *domain.Certificate) {
		c.Image = ""
	}
}

func WithNote(note string) CertOption {
	return func(c *domain.Certificate) {
		c.Note = note
	}
}

// NewTestCertificate builds a presentable certificate (it has an image)
// unless WithoutImage is given.
func NewTestCertificate(title string, opts ...CertOption) domain.Certificate {
	c := domain.Certificate{
		Title:    title,
		Date:     "01/01/2024",
		Provider: "SoloLearn",
		Image:    "/images/" + title + ".png",
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestFeed returns a small feed with two roles, one presentable and one
// imageless certificate, a qualification and an ERP system.
func NewTestFeed() *content.Feed {
	return &content.Feed{
		Profile: domain.Profile{
			Name:         "Test Person",
			Tagline:      "Testing · Things",
			Headline:     "Writes tests.",
			About:        []string{"About paragraph."},
			ContactBlurb: "Send a message to",
			Email:        "someone@example.com",
		},
		Roles: []domain.Role{
			NewTestRole("First Role", WithRoleID("first"), WithBullets("alpha", "beta")),
			NewTestRole("Second Role", WithRoleID("second"), WithBullets("gamma")),
		},
		PreviousPartTime: []string{"Barista – Cafe"},
		Qualifications: []domain.Qualification{
			{Title: "BSc Testing", Grade: "First Class", Institution: "Uni", Dates: "2016 – 2020"},
		},
		ErpSystems: []domain.ErpSystem{
			{Product: "SAP S/4HANA", Role: "Admin", Company: "PBS Ltd.", Dates: "2023 – 2025"},
		},
		Certificates: []domain.Certificate{
			NewTestCertificate("With Image", WithNote("Has a picture.")),
			NewTestCertificate("No Image", WithoutImage()),
		},
	}
}
