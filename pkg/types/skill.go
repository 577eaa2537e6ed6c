package types

// Proficiency bounds. Writes outside this range are clamped, never
// rejected; the permissive policy matches the site's tested behavior.
const (
	ProficiencyMin = 0
	ProficiencyMax = 100
)

// Skill is one entry in the skills list. List order is display order.
type Skill struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Icon        string `json:"icon"`
}

// Normalize clamps Proficiency into [ProficiencyMin, ProficiencyMax].
// Out-of-range input is corrected silently.
func (s *Skill) Normalize() {
	if s.Proficiency < ProficiencyMin {
		s.Proficiency = ProficiencyMin
	}
	if s.Proficiency > ProficiencyMax {
		s.Proficiency = ProficiencyMax
	}
}
