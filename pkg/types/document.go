package types

// List section names accepted by the repository's uniform list CRUD.
const (
	SectionSkills    = "skills"
	SectionProjects  = "projects"
	SectionExpertise = "expertise"
	SectionSocial    = "social"
)

// ListSections are the sections that hold ordered lists.
var ListSections = []string{
	SectionSkills,
	SectionProjects,
	SectionExpertise,
	SectionSocial,
}

// Document is the full structured content record for the portfolio site.
// Field order matches the on-disk key order of data/portfolio-data.json;
// all sections are mandatory except Config, which is backfilled with
// defaults when an older file lacks it.
type Document struct {
	Personal Personal  `json:"personal"`
	About    About     `json:"about"`
	Skills   []Skill   `json:"skills"`
	Projects []Project `json:"projects"`
	Contact  Contact   `json:"contact"`
	Config   *Config   `json:"config,omitempty"`
}

// Personal holds the hero/header identity fields. All free text.
type Personal struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Tagline         string `json:"tagline"`
	HeroDescription string `json:"heroDescription"`
}

// About holds the biography section. Expertise order is display order.
type About struct {
	Bio         string   `json:"bio"`
	Description string   `json:"description"`
	Expertise   []string `json:"expertise"`
}

// Contact holds contact details and the ordered social link list.
type Contact struct {
	Email        string       `json:"email"`
	Location     string       `json:"location"`
	Availability string       `json:"availability"`
	Social       []SocialLink `json:"social"`
}

// SocialLink is one entry in the contact section's social list.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// MaxProjectID returns the highest project id present in the document,
// or 0 when there are no projects.
func (d *Document) MaxProjectID() int {
	max := 0
	for _, p := range d.Projects {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}

// Clone returns a deep copy of the document. Mutating the copy never
// affects the original.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	cp := *d
	cp.About.Expertise = append([]string(nil), d.About.Expertise...)
	cp.Skills = append([]Skill(nil), d.Skills...)
	cp.Projects = make([]Project, len(d.Projects))
	for i, p := range d.Projects {
		cp.Projects[i] = p
		cp.Projects[i].Tags = append([]string(nil), p.Tags...)
	}
	cp.Contact.Social = append([]SocialLink(nil), d.Contact.Social...)
	if d.Config != nil {
		cfg := *d.Config
		cp.Config = &cfg
	}
	return &cp
}
