package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/folio/pkg/types"
)

func TestUniformCRUDBySection(t *testing.T) {
	tests := []struct {
		section string
		item    any
		updated any
	}{
		{section: types.SectionSkills, item: types.Skill{Name: "Sketching"}, updated: types.Skill{Name: "Inking"}},
		{section: types.SectionProjects, item: types.Project{Title: "Film"}, updated: types.Project{Title: "Reel"}},
		{section: types.SectionExpertise, item: "2D Animation", updated: "3D Modeling"},
		{section: types.SectionSocial, item: types.SocialLink{Platform: "Vimeo"}, updated: types.SocialLink{Platform: "YouTube"}},
	}

	for _, tt := range tests {
		t.Run(tt.section, func(t *testing.T) {
			r := New(emptyDocument())

			stored, err := r.AddItem(tt.section, tt.item)
			require.NoError(t, err)
			require.NotNil(t, stored)

			items, err := r.ListItems(tt.section)
			require.NoError(t, err)
			require.Len(t, items, 1)

			require.NoError(t, r.UpdateItem(tt.section, 0, tt.updated))

			removed, err := r.RemoveItem(tt.section, 0)
			require.NoError(t, err)
			require.NotNil(t, removed)

			items, err = r.ListItems(tt.section)
			require.NoError(t, err)
			assert.Empty(t, items)
		})
	}
}

func TestUniformCRUDUnknownSection(t *testing.T) {
	r := New(emptyDocument())

	_, err := r.ListItems("personal")
	assert.ErrorIs(t, err, types.ErrSectionUnknown)
	_, err = r.AddItem("nope", "x")
	assert.ErrorIs(t, err, types.ErrSectionUnknown)
	err = r.UpdateItem("nope", 0, "x")
	assert.ErrorIs(t, err, types.ErrSectionUnknown)
	_, err = r.RemoveItem("nope", 0)
	assert.ErrorIs(t, err, types.ErrSectionUnknown)
}

func TestUniformCRUDItemTypeMismatch(t *testing.T) {
	r := New(emptyDocument())

	_, err := r.AddItem(types.SectionSkills, types.Project{Title: "not a skill"})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = r.AddItem(types.SectionExpertise, 42)
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestUniformAddAssignsProjectID(t *testing.T) {
	r := New(emptyDocument())

	stored, err := r.AddItem(types.SectionProjects, &types.Project{Title: "Film"})
	require.NoError(t, err)

	p, ok := stored.(types.Project)
	require.True(t, ok)
	assert.Equal(t, 1, p.ID)
}

func TestUniformIndexErrors(t *testing.T) {
	r := New(emptyDocument())

	err := r.UpdateItem(types.SectionSkills, 0, types.Skill{})
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)

	_, err = r.RemoveItem(types.SectionProjects, 5)
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}
