package dto

import "portfolio-api/internal/domain/knowledge"

type ProjectResponse struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     *string  `json:"image_url"`
	ProjectURL   *string  `json:"project_url"`
	GithubURL    *string  `json:"github_url"`
	Technologies []string `json:"technologies"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	IsFeatured   bool     `json:"is_featured"`
}

func NewProjectResponse(p knowledge.Project) ProjectResponse {
	tech := p.Technologies
	if tech == nil {
		tech = []string{}
	}
	return ProjectResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		ImageURL:     optional(p.ImageURL),
		ProjectURL:   optional(p.ProjectURL),
		GithubURL:    optional(p.GithubURL),
		Technologies: tech,
		StartDate:    optionalDate(p.StartDate),
		EndDate:      optionalDate(p.EndDate),
		IsFeatured:   p.IsFeatured,
	}
}

func NewProjectListResponse(items []knowledge.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewProjectResponse(p))
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalDate(d *knowledge.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
