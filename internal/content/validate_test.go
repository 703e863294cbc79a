package content

import (
	"testing"

	"github.com/dgilligan/folio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func certificate(title, image string) domain.Certificate {
	return domain.Certificate{Title: title, Provider: "SoloLearn", Image: image}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		feed    *Feed
		wantErr []string
	}{
		{
			name: "clean feed",
			feed: &Feed{
				Roles:        []domain.Role{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}},
				Certificates: []domain.Certificate{certificate("X", "/x.png"), certificate("Y", "")},
			},
		},
		{
			name:    "duplicate role id",
			feed:    &Feed{Roles: []domain.Role{{ID: "a", Title: "A"}, {ID: "a", Title: "B"}}},
			wantErr: []string{`roles[1].id: duplicate id "a"`},
		},
		{
			name:    "missing role id and title",
			feed:    &Feed{Roles: []domain.Role{{ID: " "}, {ID: "z"}}},
			wantErr: []string{"roles[0].id is required", "roles[1].title is required"},
		},
		{
			name:    "duplicate certificate title",
			feed:    &Feed{Certificates: []domain.Certificate{certificate("X", ""), certificate("X", "/x.png")}},
			wantErr: []string{`certificates[1].title: duplicate title "X"`},
		},
		{
			name:    "empty certificate title",
			feed:    &Feed{Certificates: []domain.Certificate{certificate("", "/x.png")}},
			wantErr: []string{"certificates[0].title is required"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Validate(tc.feed)
			require.Len(t, errs, len(tc.wantErr))
			for i, want := range tc.wantErr {
				assert.Equal(t, want, errs[i].Error())
			}
		})
	}
}
