package repo

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/folio/pkg/types"
)

// Typed list CRUD. Every mutation is bounds-checked here so front-ends
// never index into document slices themselves. Remove shifts the rest of
// the list left and preserves relative order; nothing is renumbered.

// Skills returns the skills list in display order.
func (r *Repository) Skills() []types.Skill {
	return append([]types.Skill(nil), r.doc.Skills...)
}

// AddSkill appends a skill, clamping proficiency into range, and returns
// the stored value.
func (r *Repository) AddSkill(s types.Skill) types.Skill {
	s.Normalize()
	r.doc.Skills = append(r.doc.Skills, s)
	return s
}

// UpdateSkill replaces the skill at index, clamping proficiency.
func (r *Repository) UpdateSkill(index int, s types.Skill) error {
	if err := checkIndex(index, len(r.doc.Skills)); err != nil {
		return err
	}
	s.Normalize()
	r.doc.Skills[index] = s
	return nil
}

// RemoveSkill removes and returns the skill at index.
func (r *Repository) RemoveSkill(index int) (types.Skill, error) {
	if err := checkIndex(index, len(r.doc.Skills)); err != nil {
		return types.Skill{}, err
	}
	removed := r.doc.Skills[index]
	r.doc.Skills = append(r.doc.Skills[:index], r.doc.Skills[index+1:]...)
	return removed, nil
}

// Projects returns the projects list in display order.
func (r *Repository) Projects() []types.Project {
	out := make([]types.Project, len(r.doc.Projects))
	for i, p := range r.doc.Projects {
		out[i] = p
		out[i].Tags = append([]string(nil), p.Tags...)
	}
	return out
}

// AddProject appends a project and returns it with its assigned id.
// The id is one past the high-water mark, so removing a project never
// frees its id for reuse within the session.
func (r *Repository) AddProject(p types.Project) types.Project {
	p.Normalize()
	r.maxProjectID++
	p.ID = r.maxProjectID
	r.doc.Projects = append(r.doc.Projects, p)
	return p
}

// UpdateProject replaces the project at index. The pre-existing id is
// preserved unless the replacement explicitly supplies one.
func (r *Repository) UpdateProject(index int, p types.Project) error {
	if err := checkIndex(index, len(r.doc.Projects)); err != nil {
		return err
	}
	p.Normalize()
	if p.ID == 0 {
		p.ID = r.doc.Projects[index].ID
	} else if p.ID > r.maxProjectID {
		r.maxProjectID = p.ID
	}
	r.doc.Projects[index] = p
	return nil
}

// RemoveProject removes and returns the project at index. Remaining
// projects keep their ids.
func (r *Repository) RemoveProject(index int) (types.Project, error) {
	if err := checkIndex(index, len(r.doc.Projects)); err != nil {
		return types.Project{}, err
	}
	removed := r.doc.Projects[index]
	r.doc.Projects = append(r.doc.Projects[:index], r.doc.Projects[index+1:]...)
	return removed, nil
}

// Expertise returns the about section's expertise list in display order.
func (r *Repository) Expertise() []string {
	return append([]string(nil), r.doc.About.Expertise...)
}

// AddExpertise appends an expertise area. Whitespace-only entries are
// rejected; the stored value is trimmed.
func (r *Repository) AddExpertise(entry string) (string, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return "", fmt.Errorf("%w: expertise entry is empty", types.ErrValidation)
	}
	r.doc.About.Expertise = append(r.doc.About.Expertise, entry)
	return entry, nil
}

// UpdateExpertise replaces the expertise entry at index.
func (r *Repository) UpdateExpertise(index int, entry string) error {
	if err := checkIndex(index, len(r.doc.About.Expertise)); err != nil {
		return err
	}
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return fmt.Errorf("%w: expertise entry is empty", types.ErrValidation)
	}
	r.doc.About.Expertise[index] = entry
	return nil
}

// RemoveExpertise removes and returns the expertise entry at index.
func (r *Repository) RemoveExpertise(index int) (string, error) {
	if err := checkIndex(index, len(r.doc.About.Expertise)); err != nil {
		return "", err
	}
	removed := r.doc.About.Expertise[index]
	r.doc.About.Expertise = append(r.doc.About.Expertise[:index], r.doc.About.Expertise[index+1:]...)
	return removed, nil
}

// Social returns the contact section's social link list in display order.
func (r *Repository) Social() []types.SocialLink {
	return append([]types.SocialLink(nil), r.doc.Contact.Social...)
}

// AddSocial appends a social link and returns the stored value.
func (r *Repository) AddSocial(link types.SocialLink) types.SocialLink {
	r.doc.Contact.Social = append(r.doc.Contact.Social, link)
	return link
}

// UpdateSocial replaces the social link at index.
func (r *Repository) UpdateSocial(index int, link types.SocialLink) error {
	if err := checkIndex(index, len(r.doc.Contact.Social)); err != nil {
		return err
	}
	r.doc.Contact.Social[index] = link
	return nil
}

// RemoveSocial removes and returns the social link at index.
func (r *Repository) RemoveSocial(index int) (types.SocialLink, error) {
	if err := checkIndex(index, len(r.doc.Contact.Social)); err != nil {
		return types.SocialLink{}, err
	}
	removed := r.doc.Contact.Social[index]
	r.doc.Contact.Social = append(r.doc.Contact.Social[:index], r.doc.Contact.Social[index+1:]...)
	return removed, nil
}

// Uniform list CRUD keyed by section name, for callers that treat all
// four lists alike (a generic table editor, scripted dispatch). Items are
// typed per section: types.Skill, types.Project, string (expertise),
// types.SocialLink. A mismatched item type is a validation error.

// ListItems returns the named section's items in display order.
func (r *Repository) ListItems(section string) ([]any, error) {
	switch section {
	case types.SectionSkills:
		return toAny(r.Skills()), nil
	case types.SectionProjects:
		return toAny(r.Projects()), nil
	case types.SectionExpertise:
		return toAny(r.Expertise()), nil
	case types.SectionSocial:
		return toAny(r.Social()), nil
	}
	return nil, unknownSection(section)
}

// AddItem appends an item to the named section and returns the stored
// value (with its assigned id, for projects).
func (r *Repository) AddItem(section string, item any) (any, error) {
	switch section {
	case types.SectionSkills:
		s, err := asSkill(item)
		if err != nil {
			return nil, err
		}
		return r.AddSkill(s), nil
	case types.SectionProjects:
		p, err := asProject(item)
		if err != nil {
			return nil, err
		}
		return r.AddProject(p), nil
	case types.SectionExpertise:
		e, err := asExpertise(item)
		if err != nil {
			return nil, err
		}
		return r.AddExpertise(e)
	case types.SectionSocial:
		l, err := asSocial(item)
		if err != nil {
			return nil, err
		}
		return r.AddSocial(l), nil
	}
	return nil, unknownSection(section)
}

// UpdateItem replaces the item at index in the named section.
func (r *Repository) UpdateItem(section string, index int, item any) error {
	switch section {
	case types.SectionSkills:
		s, err := asSkill(item)
		if err != nil {
			return err
		}
		return r.UpdateSkill(index, s)
	case types.SectionProjects:
		p, err := asProject(item)
		if err != nil {
			return err
		}
		return r.UpdateProject(index, p)
	case types.SectionExpertise:
		e, err := asExpertise(item)
		if err != nil {
			return err
		}
		return r.UpdateExpertise(index, e)
	case types.SectionSocial:
		l, err := asSocial(item)
		if err != nil {
			return err
		}
		return r.UpdateSocial(index, l)
	}
	return unknownSection(section)
}

// RemoveItem removes and returns the item at index in the named section.
func (r *Repository) RemoveItem(section string, index int) (any, error) {
	switch section {
	case types.SectionSkills:
		return r.RemoveSkill(index)
	case types.SectionProjects:
		return r.RemoveProject(index)
	case types.SectionExpertise:
		return r.RemoveExpertise(index)
	case types.SectionSocial:
		return r.RemoveSocial(index)
	}
	return nil, unknownSection(section)
}

func unknownSection(section string) error {
	return fmt.Errorf("%w: %q (valid: %s)", types.ErrSectionUnknown, section, strings.Join(types.ListSections, ", "))
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func asSkill(item any) (types.Skill, error) {
	switch v := item.(type) {
	case types.Skill:
		return v, nil
	case *types.Skill:
		return *v, nil
	}
	return types.Skill{}, fmt.Errorf("%w: skills item must be a Skill, got %T", types.ErrValidation, item)
}

func asProject(item any) (types.Project, error) {
	switch v := item.(type) {
	case types.Project:
		return v, nil
	case *types.Project:
		return *v, nil
	}
	return types.Project{}, fmt.Errorf("%w: projects item must be a Project, got %T", types.ErrValidation, item)
}

func asExpertise(item any) (string, error) {
	if s, ok := item.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: expertise item must be a string, got %T", types.ErrValidation, item)
}

func asSocial(item any) (types.SocialLink, error) {
	switch v := item.(type) {
	case types.SocialLink:
		return v, nil
	case *types.SocialLink:
		return *v, nil
	}
	return types.SocialLink{}, fmt.Errorf("%w: social item must be a SocialLink, got %T", types.ErrValidation, item)
}
