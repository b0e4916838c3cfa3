package usecase

import (
	"context"

	"portfolio-api/internal/domain/knowledge"
)

type SkillCategoryGroup struct {
	Name   string
	Skills []knowledge.Skill
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]knowledge.Skill, error)
	ListSkillsByCategory(ctx context.Context) ([]SkillCategoryGroup, error)
	GetSkill(ctx context.Context, id int) (knowledge.Skill, error)
}

type Skill struct {
	source KnowledgeSource
}

func NewSkillUsecase(source KnowledgeSource) *Skill {
	return &Skill{source: source}
}

func (u *Skill) ListSkills(ctx context.Context) ([]knowledge.Skill, error) {
	doc, err := u.source.Snapshot(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return doc.CatalogSkills(), nil
}

// ListSkillsByCategory groups skills in first-appearance order of their
// category. Categories that repeat in the document are merged.
func (u *Skill) ListSkillsByCategory(ctx context.Context) ([]SkillCategoryGroup, error) {
	skills, err := u.ListSkills(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]SkillCategoryGroup, 0)
	index := make(map[string]int)
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(out)
			index[s.Category] = i
			out = append(out, SkillCategoryGroup{Name: s.Category})
		}
		out[i].Skills = append(out[i].Skills, s)
	}
	return out, nil
}

func (u *Skill) GetSkill(ctx context.Context, id int) (knowledge.Skill, error) {
	skills, err := u.ListSkills(ctx)
	if err != nil {
		return knowledge.Skill{}, err
	}
	for _, s := range skills {
		if s.ID == id {
			return s, nil
		}
	}
	return knowledge.Skill{}, ErrNotFound
}
