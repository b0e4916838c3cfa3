package usecase

import (
	"context"

	"portfolio-api/internal/domain/knowledge"
)

type ProjectUsecase interface {
	ListProjects(ctx context.Context) ([]knowledge.Project, error)
	ListFeaturedProjects(ctx context.Context) ([]knowledge.Project, error)
	GetProject(ctx context.Context, id int) (knowledge.Project, error)
}

type Project struct {
	source KnowledgeSource
}

func NewProjectUsecase(source KnowledgeSource) *Project {
	return &Project{source: source}
}

func (u *Project) ListProjects(ctx context.Context) ([]knowledge.Project, error) {
	doc, err := u.source.Snapshot(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]knowledge.Project, len(doc.Projects))
	copy(out, doc.Projects)
	return out, nil
}

func (u *Project) ListFeaturedProjects(ctx context.Context) ([]knowledge.Project, error) {
	doc, err := u.source.Snapshot(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := make([]knowledge.Project, 0)
	for _, p := range doc.Projects {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out, nil
}

func (u *Project) GetProject(ctx context.Context, id int) (knowledge.Project, error) {
	doc, err := u.source.Snapshot(ctx)
	if err != nil {
		return knowledge.Project{}, ErrInternal
	}
	for _, p := range doc.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return knowledge.Project{}, ErrNotFound
}
