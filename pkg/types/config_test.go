package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogoValidate(t *testing.T) {
	tests := []struct {
		name    string
		logo    Logo
		wantErr bool
	}{
		{name: "text logo", logo: Logo{Type: LogoTypeText, Content: "Portfolio"}},
		{name: "image logo", logo: Logo{Type: LogoTypeImage, Content: "assets/logo.png"}},
		{name: "unknown type rejected", logo: Logo{Type: "svg", Content: "x"}, wantErr: true},
		{name: "empty type rejected", logo: Logo{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.logo.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "#1E3A8A", cfg.Theme.PrimaryColor)
	assert.Equal(t, "#F3F4F6", cfg.Theme.SecondaryColor)
	assert.Equal(t, "#FFFFFF", cfg.Theme.BackgroundColor)
	assert.Equal(t, "#111827", cfg.Theme.TextColor)
	assert.Equal(t, "Poppins", cfg.Theme.FontHeading)
	assert.Equal(t, "Inter", cfg.Theme.FontBody)
	assert.Equal(t, Logo{Type: LogoTypeText, Content: "Portfolio"}, cfg.Logo)
	assert.NoError(t, cfg.Logo.Validate())

	// Each call returns a fresh value; callers may mutate freely.
	cfg.Theme.PrimaryColor = "#000000"
	assert.Equal(t, "#1E3A8A", DefaultConfig().Theme.PrimaryColor)
}

func TestDocumentClone(t *testing.T) {
	doc := &Document{
		Personal: Personal{Name: "Ada"},
		About:    About{Bio: "bio", Expertise: []string{"2D Animation"}},
		Skills:   []Skill{{Name: "Sketching", Proficiency: 90}},
		Projects: []Project{{ID: 1, Title: "Short Film", Tags: []string{"film"}}},
		Contact:  Contact{Email: "ada@example.com", Social: []SocialLink{{Platform: "Instagram"}}},
		Config:   DefaultConfig(),
	}

	cp := doc.Clone()
	require.Equal(t, doc, cp)

	cp.Personal.Name = "Grace"
	cp.About.Expertise[0] = "3D Modeling"
	cp.Skills[0].Proficiency = 10
	cp.Projects[0].Tags[0] = "other"
	cp.Contact.Social[0].Platform = "Mastodon"
	cp.Config.Logo.Content = "changed"

	assert.Equal(t, "Ada", doc.Personal.Name)
	assert.Equal(t, "2D Animation", doc.About.Expertise[0])
	assert.Equal(t, 90, doc.Skills[0].Proficiency)
	assert.Equal(t, "film", doc.Projects[0].Tags[0])
	assert.Equal(t, "Instagram", doc.Contact.Social[0].Platform)
	assert.Equal(t, "Portfolio", doc.Config.Logo.Content)
}

func TestMaxProjectID(t *testing.T) {
	doc := &Document{}
	assert.Equal(t, 0, doc.MaxProjectID())

	doc.Projects = []Project{{ID: 3}, {ID: 1}, {ID: 7}}
	assert.Equal(t, 7, doc.MaxProjectID())
}
