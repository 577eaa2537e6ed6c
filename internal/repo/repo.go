// Package repo provides typed access and mutation of portfolio document
// sections for a single editing session. All list mutations go through
// the repository so validation, bounds checks, and project id allocation
// live in exactly one place, shared by every front-end.
package repo

import (
	"fmt"

	"github.com/mesh-intelligence/folio/pkg/types"
)

// Repository owns the in-memory document tree for the duration of an
// editing session. It is not safe for concurrent use; the system is
// single-user and single-threaded by contract.
type Repository struct {
	doc *types.Document

	// maxProjectID is the high-water mark for project id allocation:
	// the highest id present at load or assigned since. Removing a
	// project never lowers it, so ids are never reused in a session.
	maxProjectID int

	backfilled bool
}

// New wraps a loaded document. If the document lacks the config section
// (files written before it existed) the fixed default theme and logo are
// backfilled; the synthesized section is included in the next save.
func New(doc *types.Document) *Repository {
	r := &Repository{doc: doc, maxProjectID: doc.MaxProjectID()}
	if doc.Config == nil {
		doc.Config = types.DefaultConfig()
		r.backfilled = true
	}
	return r
}

// Document returns the underlying document for persistence. Callers
// other than the session/store must not mutate it directly.
func (r *Repository) Document() *types.Document { return r.doc }

// Backfilled reports whether New synthesized the config section.
func (r *Repository) Backfilled() bool { return r.backfilled }

// Personal returns a copy of the personal section.
func (r *Repository) Personal() types.Personal { return r.doc.Personal }

// SetPersonal replaces the personal section. Replace-on-write: the
// caller composes the full section, there is no partial merge here.
func (r *Repository) SetPersonal(p types.Personal) { r.doc.Personal = p }

// About returns a copy of the about section.
func (r *Repository) About() types.About {
	a := r.doc.About
	a.Expertise = append([]string(nil), a.Expertise...)
	return a
}

// SetAbout replaces the about section.
func (r *Repository) SetAbout(a types.About) { r.doc.About = a }

// Contact returns a copy of the contact section.
func (r *Repository) Contact() types.Contact {
	c := r.doc.Contact
	c.Social = append([]types.SocialLink(nil), c.Social...)
	return c
}

// SetContact replaces the contact section.
func (r *Repository) SetContact(c types.Contact) { r.doc.Contact = c }

// Config returns a copy of the config section. Never nil after New.
func (r *Repository) Config() types.Config { return *r.doc.Config }

// SetConfig replaces the config section after validating the logo type.
func (r *Repository) SetConfig(c types.Config) error {
	if err := c.Logo.Validate(); err != nil {
		return err
	}
	cfg := c
	r.doc.Config = &cfg
	return nil
}

// checkIndex validates a 0-based list index against the current length.
func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		return fmt.Errorf("%w: index %d, list length %d", types.ErrIndexOutOfRange, index, length)
	}
	return nil
}
