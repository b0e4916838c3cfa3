package usecase

import (
	"context"
	"testing"

	"portfolio-api/internal/domain/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectUsecase(t *testing.T) {
	uc := NewProjectUsecase(defaultSource())
	ctx := context.Background()

	all, err := uc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Portfolio Website", all[0].Title)

	featured, err := uc.ListFeaturedProjects(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}

	p, err := uc.GetProject(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Cloud-Native Application", p.Title)

	_, err = uc.GetProject(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectUsecase_NoFeaturedIsEmptyNotNil(t *testing.T) {
	uc := NewProjectUsecase(staticSource{doc: &knowledge.Document{}})

	featured, err := uc.ListFeaturedProjects(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, featured)
	assert.Empty(t, featured)
}

func TestProjectUsecase_SourceFailure(t *testing.T) {
	uc := NewProjectUsecase(staticSource{err: errBoom})

	_, err := uc.ListProjects(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
	_, err = uc.GetProject(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSkillUsecase(t *testing.T) {
	uc := NewSkillUsecase(defaultSource())
	ctx := context.Background()

	skills, err := uc.ListSkills(ctx)
	require.NoError(t, err)
	require.Len(t, skills, 18)
	assert.Equal(t, knowledge.Skill{
		ID:          1,
		Name:        "Python",
		Category:    "Programming",
		Proficiency: 5,
		Icon:        "fab fa-python",
		Description: "Data processing, APIs, and automation",
	}, skills[0])

	s, err := uc.GetSkill(ctx, 15)
	require.NoError(t, err)
	assert.Equal(t, "Kubernetes", s.Name)
	assert.Equal(t, "DevOps", s.Category)

	_, err = uc.GetSkill(ctx, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSkillUsecase_ListSkillsByCategoryKeepsOrderAndMergesRepeats(t *testing.T) {
	doc := &knowledge.Document{Skills: []knowledge.SkillCategory{
		{Category: "Backend", Items: []knowledge.SkillItem{{ID: 1, Name: "Go", Proficiency: 5}}},
		{Category: "Frontend", Items: []knowledge.SkillItem{{ID: 2, Name: "React", Proficiency: 3}}},
		{Category: "Backend", Items: []knowledge.SkillItem{{ID: 3, Name: "SQL", Proficiency: 4}}},
	}}
	uc := NewSkillUsecase(staticSource{doc: doc})

	groups, err := uc.ListSkillsByCategory(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Backend", groups[0].Name)
	assert.Equal(t, []string{"Go", "SQL"}, []string{groups[0].Skills[0].Name, groups[0].Skills[1].Name})
	assert.Equal(t, "Frontend", groups[1].Name)
}

func TestChatbotAnswerCacheKey(t *testing.T) {
	a := ChatbotAnswerCacheKey("m", "  What   are your SKILLS? ")
	b := ChatbotAnswerCacheKey("m", "what are your skills?")
	c := ChatbotAnswerCacheKey("other", "what are your skills?")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, `^chatbot:answer:[0-9a-f]{64}$`, a)
}
