package types

import "fmt"

// Logo display modes. The type drives how Content is interpreted: literal
// text for "text", an asset path for "image".
const (
	LogoTypeText  = "text"
	LogoTypeImage = "image"
)

// validLogoTypes is the set of recognized logo type values.
var validLogoTypes = map[string]bool{
	LogoTypeText:  true,
	LogoTypeImage: true,
}

// Config is the presentation section of the document. It is the only
// optional section on disk; DefaultConfig supplies it for older files.
type Config struct {
	Theme Theme `json:"theme"`
	Logo  Logo  `json:"logo"`
}

// Theme holds the site's colors and font names.
type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	FontHeading     string `json:"fontHeading"`
	FontBody        string `json:"fontBody"`
}

// Logo holds the site logo: literal text or an uploaded image path.
type Logo struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Validate checks that the logo type is one of the recognized modes.
func (l Logo) Validate() error {
	if !validLogoTypes[l.Type] {
		return fmt.Errorf("%w: logo type %q (valid: %s, %s)",
			ErrValidation, l.Type, LogoTypeText, LogoTypeImage)
	}
	return nil
}

// DefaultConfig returns the fixed config used to backfill documents
// written before the config section existed.
func DefaultConfig() *Config {
	return &Config{
		Theme: Theme{
			PrimaryColor:    "#1E3A8A",
			SecondaryColor:  "#F3F4F6",
			BackgroundColor: "#FFFFFF",
			TextColor:       "#111827",
			FontHeading:     "Poppins",
			FontBody:        "Inter",
		},
		Logo: Logo{
			Type:    LogoTypeText,
			Content: "Portfolio",
		},
	}
}
