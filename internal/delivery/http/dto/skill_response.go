package dto

import (
	"portfolio-api/internal/domain/knowledge"
	"portfolio-api/internal/usecase"
)

type SkillResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Proficiency int     `json:"proficiency"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
}

type SkillCategoryResponse struct {
	Name   string          `json:"name"`
	Skills []SkillResponse `json:"skills"`
}

type SkillCategoriesResponse struct {
	Categories []SkillCategoryResponse `json:"categories"`
}

func NewSkillResponse(s knowledge.Skill) SkillResponse {
	return SkillResponse{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Proficiency: s.Proficiency,
		Icon:        optional(s.Icon),
		Description: optional(s.Description),
	}
}

func NewSkillListResponse(items []knowledge.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(items))
	for _, s := range items {
		out = append(out, NewSkillResponse(s))
	}
	return out
}

func NewSkillCategoriesResponse(groups []usecase.SkillCategoryGroup) SkillCategoriesResponse {
	out := SkillCategoriesResponse{Categories: make([]SkillCategoryResponse, 0, len(groups))}
	for _, g := range groups {
		out.Categories = append(out.Categories, SkillCategoryResponse{
			Name:   g.Name,
			Skills: NewSkillListResponse(g.Skills),
		})
	}
	return out
}
