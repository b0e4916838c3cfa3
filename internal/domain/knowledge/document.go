package knowledge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const DefaultProficiency = 3

var ErrInvalidDocument = errors.New("invalid knowledge document")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Normalize fills in ids that a document may leave out, in document order
// after the highest explicit id, and trims names.
func (d *Document) Normalize() {
	if d == nil {
		return
	}

	nextSkillID := 0
	for _, c := range d.Skills {
		for _, it := range c.Items {
			nextSkillID = max(nextSkillID, it.ID)
		}
	}
	for ci := range d.Skills {
		d.Skills[ci].Category = strings.TrimSpace(d.Skills[ci].Category)
		for ii := range d.Skills[ci].Items {
			it := &d.Skills[ci].Items[ii]
			it.Name = strings.TrimSpace(it.Name)
			if it.ID == 0 {
				nextSkillID++
				it.ID = nextSkillID
			}
		}
	}

	nextProjectID := 0
	for _, p := range d.Projects {
		nextProjectID = max(nextProjectID, p.ID)
	}
	for i := range d.Projects {
		p := &d.Projects[i]
		p.Title = strings.TrimSpace(p.Title)
		if p.ID == 0 {
			nextProjectID++
			p.ID = nextProjectID
		}
		if p.Technologies == nil {
			p.Technologies = []string{}
		}
	}
}

// Validate checks the document invariants: bounded proficiency, unique ids
// and ordered project dates.
func (d *Document) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	skillIDs := make(map[int]struct{})
	for _, c := range d.Skills {
		for _, it := range c.Items {
			if _, dup := skillIDs[it.ID]; dup {
				return fmt.Errorf("%w: duplicate skill id %d", ErrInvalidDocument, it.ID)
			}
			skillIDs[it.ID] = struct{}{}
		}
	}

	projectIDs := make(map[int]struct{}, len(d.Projects))
	for _, p := range d.Projects {
		if _, dup := projectIDs[p.ID]; dup {
			return fmt.Errorf("%w: duplicate project id %d", ErrInvalidDocument, p.ID)
		}
		projectIDs[p.ID] = struct{}{}

		if p.StartDate != nil && p.EndDate != nil && p.StartDate.After(p.EndDate.Time) {
			return fmt.Errorf("%w: project %d starts after it ends (%s > %s)", ErrInvalidDocument, p.ID, p.StartDate, p.EndDate)
		}
	}
	return nil
}

// CatalogSkills flattens the skill categories in store order.
func (d *Document) CatalogSkills() []Skill {
	if d == nil {
		return []Skill{}
	}
	out := make([]Skill, 0)
	for _, c := range d.Skills {
		for _, it := range c.Items {
			out = append(out, Skill{
				ID:          it.ID,
				Name:        it.Name,
				Category:    c.Category,
				Proficiency: it.Proficiency,
				Icon:        it.Icon,
				Description: it.Description,
			})
		}
	}
	return out
}

// SkillNames returns the item names of a category, in order.
func (c SkillCategory) SkillNames() []string {
	out := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		out = append(out, it.Name)
	}
	return out
}
