package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/dgilligan/folio/internal/domain"
	"github.com/dgilligan/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatHero(t *testing.T) {
	prof := domain.Profile{
		Name:         "Ada",
		Tagline:      "Engineer",
		Availability: "Open to work",
		CurrentRole:  "Analyst",
	}
	got := stripANSI(FormatHero(Dark, prof, 60))

	assert.True(t, strings.HasPrefix(got, "Ada\nEngineer"))
	assert.Contains(t, got, "● Open to work")
	assert.Contains(t, got, "Current role  Analyst")
	assert.NotContains(t, got, "Focus")
}

func TestFormatHero_EmptyNameFallsBack(t *testing.T) {
	assert.Equal(t, "Portfolio", stripANSI(FormatHero(Dark, domain.Profile{}, 60)))
}

func TestRoleCard(t *testing.T) {
	r := testutil.NewTestRole("Systems Analyst", testutil.WithBullets("Led the migration", "Other"))
	r.Company, r.Location, r.Dates = "Acme", "Dublin", "2020 - 2022"

	plain := stripANSI(RoleCard(Dark, r, false, 50))
	assert.Contains(t, plain, "Systems Analyst")
	assert.Contains(t, plain, "Acme · Dublin")
	assert.Contains(t, plain, "Led the migration")
	assert.NotContains(t, plain, "Other", "card shows only the summary bullet")

	focused := RoleCard(Dark, r, true, 50)
	assert.Equal(t, plain, stripANSI(focused), "focus changes color only")
}

func TestFormatRoleDetail_ListsAllBullets(t *testing.T) {
	r := testutil.NewTestRole("Dev", testutil.WithBullets("one", "two", "three"))
	got := stripANSI(FormatRoleDetail(Light, r, 60))
	assert.Contains(t, got, "• one\n• two\n• three")
}

func TestCertificateCard(t *testing.T) {
	withImg := testutil.NewTestCertificate("Cloud Basics")
	plain := stripANSI(CertificateCard(Dark, withImg, false, 50))
	assert.Contains(t, plain, "enter: view certificate")
	assert.Contains(t, plain, "╭")

	noImg := testutil.NewTestCertificate("Intro", testutil.WithoutImage(), testutil.WithNote("audit only"))
	plain = stripANSI(CertificateCard(Dark, noImg, false, 50))
	assert.NotContains(t, plain, "enter:")
	assert.NotContains(t, plain, "╭")
	assert.Contains(t, plain, "audit only")
}

func TestFormatCertificateDetail(t *testing.T) {
	c := testutil.NewTestCertificate("Cloud Basics")
	got := stripANSI(FormatCertificateDetail(Dark, c))
	assert.Contains(t, got, "Image  "+c.Image)
}

func TestFormatErpSystems(t *testing.T) {
	got := stripANSI(FormatErpSystems(Dark, []domain.ErpSystem{
		{Product: "SAP", Role: "Key user", Company: "Acme", Dates: "2019"},
	}, 80))
	assert.Contains(t, got, "ERP SYSTEMS")
	assert.Contains(t, got, "PRODUCT")
	assert.Contains(t, got, "SAP")
	assert.Empty(t, FormatErpSystems(Dark, nil, 80))
}

func TestFormatQualifications(t *testing.T) {
	got := stripANSI(FormatQualifications(Dark, []domain.Qualification{
		{Title: "BSc Computing", Grade: "First", Institution: "TU", Dates: "2015 - 2019"},
	}, 80))
	assert.Contains(t, got, "BSc Computing  First")
	assert.Contains(t, got, "TU · 2015 - 2019")
}

func TestFormatContactSection(t *testing.T) {
	got := stripANSI(FormatContactSection(Dark, domain.Profile{ContactBlurb: "Say hi", Email: "a@b.c"}, 60, "press c"))
	assert.Contains(t, got, "Say hi")
	assert.Contains(t, got, "Email  a@b.c")
	assert.Contains(t, got, "press c")
}

func TestFormatRoleList(t *testing.T) {
	roles := []domain.Role{testutil.NewTestRole("Dev", testutil.WithRoleID("dev"))}
	got := stripANSI(FormatRoleList(Dark, roles, 0))
	assert.Contains(t, got, "dev")
	assert.Contains(t, got, "Dev")

	assert.Equal(t, "No roles.\n", stripANSI(FormatRoleList(Dark, nil, 0)))
}

func TestFormatCertificateList_MarksViewable(t *testing.T) {
	certs := []domain.Certificate{
		testutil.NewTestCertificate("Has"),
		testutil.NewTestCertificate("Hasnt", testutil.WithoutImage()),
	}
	lines := strings.Split(stripANSI(FormatCertificateList(Dark, certs, 0)), "\n")
	assert.True(t, strings.HasPrefix(lines[2], "◆"))
	assert.True(t, strings.HasPrefix(lines[3], " "))
}

func TestFormatValidation(t *testing.T) {
	ok := stripANSI(FormatValidation(Dark, 3, 4, nil))
	assert.Contains(t, ok, "feed ok")
	assert.Contains(t, ok, "3 roles, 4 certificates")

	bad := stripANSI(FormatValidation(Dark, 0, 0, []error{errors.New("dup id")}))
	assert.Contains(t, bad, "1 problem(s)")
	assert.Contains(t, bad, "- dup id")
}

func TestFormatPage_SectionsInOrder(t *testing.T) {
	f := testutil.NewTestFeed()
	got := stripANSI(FormatPage(Dark, f, 100))

	order := []string{"WORK EXPERIENCE", "CONTACT", "CERTIFICATES"}
	last := -1
	for _, h := range order {
		i := strings.Index(got, h)
		assert.Greater(t, i, last, "section %s out of order", h)
		last = i
	}
	for _, r := range f.Roles {
		assert.Contains(t, got, r.Title)
	}
	assert.Contains(t, got, "folio contact")
	assert.True(t, strings.HasSuffix(got, "\n"))
}
