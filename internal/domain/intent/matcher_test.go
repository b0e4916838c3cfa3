package intent

import (
	"strings"
	"testing"

	"portfolio-api/internal/domain/knowledge"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultDoc() *knowledge.Document {
	d := knowledge.Default()
	d.Normalize()
	return &d
}

func TestMatcher_CourtesyAndGreeting_ExactStrings(t *testing.T) {
	doc := defaultDoc()
	m := NewMatcher()

	cases := []struct {
		in   string
		want string
	}{
		{"Thanks!", "You're welcome! I'm happy to help. Is there anything else you'd like to know about Onkar?"},
		{"ok thx", "You're welcome! I'm happy to help. Is there anything else you'd like to know about Onkar?"},
		{"bye", "Goodbye! Feel free to chat again if you have more questions about Onkar's experience or projects."},
		{"see you later", "Goodbye! Feel free to chat again if you have more questions about Onkar's experience or projects."},
		{"How are you?", "I'm just a digital assistant, but I'm functioning well! How can I help you learn more about Onkar today?"},
		{"what's up", "I'm just a digital assistant, but I'm functioning well! How can I help you learn more about Onkar today?"},
		{"  Yes ", "Great! What would you like to know? You can ask about Onkar's skills, projects, education, or work experience."},
		{"sure", "Great! What would you like to know? You can ask about Onkar's skills, projects, education, or work experience."},
		{"not now", "Alright! Feel free to ask if you have questions later."},
		{"Hello there", "Hello! I'm an AI assistant for Onkar's portfolio. How can I help you today?"},
		{"hey", "Hello! I'm an AI assistant for Onkar's portfolio. How can I help you today?"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, m.Respond(tc.in, doc))
		})
	}
}

func TestMatcher_AffirmativeRequiresWholeMessage(t *testing.T) {
	intent, _ := NewMatcher().Classify("yes please", defaultDoc())
	assert.NotEqual(t, IntentAffirmative, intent)
}

func TestMatcher_SkillsEnumeratesEveryCategoryOnce(t *testing.T) {
	doc := defaultDoc()

	intent, out := NewMatcher().Classify("What skills do you have?", doc)
	require.Equal(t, IntentSkills, intent)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(doc.Skills)+1)
	assert.Equal(t, "Onkar's key skills include:", lines[0])
	for i, c := range doc.Skills {
		want := "• " + c.Category + ": " + strings.Join(c.SkillNames(), ", ")
		assert.Equal(t, want, lines[i+1])
		assert.Equal(t, 1, strings.Count(out, "• "+c.Category+":"))
	}
}

func TestMatcher_SkillsBeatProjects(t *testing.T) {
	doc := defaultDoc()
	m := NewMatcher()

	intent, out := m.Classify("what projects and skills do you have", doc)
	assert.Equal(t, IntentSkills, intent)
	assert.Equal(t, m.Respond("skills", doc), out)
}

func TestMatcher_ProjectsResponse(t *testing.T) {
	doc := defaultDoc()

	intent, out := NewMatcher().Classify("Show me something you built", doc)
	require.Equal(t, IntentProjects, intent)
	assert.True(t, strings.HasPrefix(out, "Here are some of Onkar's notable projects:\n"))
	assert.Contains(t, out, "• Portfolio Website: A personal portfolio website built with React and FastAPI (Technologies: React, FastAPI, Docker, PostgreSQL)\n")
}

func TestMatcher_TopicalResponses(t *testing.T) {
	doc := defaultDoc()
	m := NewMatcher()

	cases := []struct {
		in     string
		intent Intent
		want   string
	}{
		{"which university?", IntentEducation, "Onkar is pursuing Master's in Computer Science at Northeastern University."},
		{"what's your background", IntentEducation, "Onkar is pursuing Master's in Computer Science at Northeastern University."},
		{"how can I contact you", IntentContact, "You can contact Onkar through the contact form on this website. Onkar is currently working as a Data and DevOps Intern but is open to discussing new opportunities."},
		{"where are you based", IntentLocation, "Onkar is based in Boston, MA."},
		{"tell me about yourself", IntentAbout, "Passionate about data engineering, cloud technologies, and building scalable applications."},
		{"I need assistance", IntentDefault, DefaultResponse(doc)},
		{"help", IntentHelp, "I can answer questions about Onkar's:\n• Skills and technologies\n• Projects and portfolio\n• Education and background\n• Contact information\n• Location\nJust ask me anything you'd like to know!"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			intent, out := m.Classify(tc.in, doc)
			assert.Equal(t, tc.intent, intent)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestMatcher_FAQFallback(t *testing.T) {
	doc := &knowledge.Document{
		FAQs: []knowledge.FAQ{{Question: "Are you available for hire?", Answer: "Yes"}},
	}

	intent, out := NewMatcher().Classify("are you available", doc)
	assert.Equal(t, IntentFAQ, intent)
	assert.Equal(t, "Yes", out)
}

func TestMatcher_FAQFirstInStoreOrderWins(t *testing.T) {
	doc := &knowledge.Document{
		FAQs: []knowledge.FAQ{
			{Question: "Do you enjoy hiking trips?", Answer: "first"},
			{Question: "Which hiking gear?", Answer: "second"},
		},
	}

	assert.Equal(t, "first", NewMatcher().Respond("hiking", doc))
}

func TestMatcher_FAQSkipsShortWordsAndEmptyAnswers(t *testing.T) {
	doc := &knowledge.Document{
		FAQs: []knowledge.FAQ{
			{Question: "Any pets?", Answer: ""},
			{Question: "Do you own a cat?", Answer: "No cat"},
		},
	}
	m := NewMatcher()

	intent, _ := m.Classify("pets", doc)
	assert.Equal(t, IntentDefault, intent)

	intent, _ = m.Classify("cat", doc)
	assert.Equal(t, IntentDefault, intent)
}

func TestMatcher_DefaultResponse(t *testing.T) {
	doc := defaultDoc()

	intent, out := NewMatcher().Classify("xyzzy plugh", doc)
	assert.Equal(t, IntentDefault, intent)
	assert.Equal(t, "I don't have specific information about that. Feel free to ask about Onkar's skills, projects, education, or contact information. You can also try rephrasing your question.", out)
}

func TestMatcher_NeverEmpty(t *testing.T) {
	m := NewMatcher()
	for _, in := range []string{"", "   ", "\x00", "日本語のテキスト", strings.Repeat("a", 10000)} {
		assert.NotEmpty(t, m.Respond(in, defaultDoc()))
		assert.NotEmpty(t, m.Respond(in, nil))
	}
}

func TestMatcher_EmptyProfileFallsBackToGenericOwner(t *testing.T) {
	out := NewMatcher().Respond("hi", &knowledge.Document{})
	assert.Equal(t, "Hello! I'm an AI assistant for the portfolio owner's portfolio. How can I help you today?", out)
}

func TestMatcher_CustomRuleOrder(t *testing.T) {
	rules := DefaultRules()
	var projects, skills Rule
	var rest []Rule
	for _, r := range rules {
		switch r.Intent {
		case IntentProjects:
			projects = r
		case IntentSkills:
			skills = r
		default:
			rest = append(rest, r)
		}
	}

	m := NewMatcher(append([]Rule{projects, skills}, rest...)...)
	intent, _ := m.Classify("what projects and skills do you have", defaultDoc())
	assert.Equal(t, IntentProjects, intent)
}

func TestDefaultRules_Order(t *testing.T) {
	want := []Intent{
		IntentThanks, IntentFarewell, IntentHowAreYou, IntentAffirmative, IntentNegative,
		IntentGreeting,
		IntentSkills, IntentProjects, IntentEducation, IntentContact, IntentLocation, IntentAbout, IntentHelp,
		IntentFAQ,
	}
	got := make([]Intent, 0, len(want))
	for _, r := range NewMatcher().Rules() {
		got = append(got, r.Intent)
	}
	assert.Equal(t, want, got)
}

func TestFAQKeywords(t *testing.T) {
	assert.Equal(t, []string{"available", "hire?"}, FAQKeywords("Are you available for hire?"))
	assert.Empty(t, FAQKeywords("a an the"))
}

func TestMatcher_WordBoundariesAreUnicodeAware(t *testing.T) {
	doc := defaultDoc()
	m := NewMatcher()

	cases := []struct {
		in     string
		intent Intent
	}{
		{"hiç", IntentDefault},
		{"worké", IntentDefault},
		{"tyś", IntentDefault},
		{"hi_there", IntentDefault},
		{"日本hi", IntentDefault},
		{"über-skills", IntentSkills},
		{"naïve hi", IntentGreeting},
		{"ciao, hi!", IntentGreeting},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			intent, _ := m.Classify(tc.in, doc)
			assert.Equal(t, tc.intent, intent)
		})
	}
}

func TestMatcher_FAQKeywordNeedsUnicodeBoundary(t *testing.T) {
	doc := &knowledge.Document{
		FAQs: []knowledge.FAQ{{Question: "Are you available for hire?", Answer: "Yes"}},
	}
	m := NewMatcher()

	intent, _ := m.Classify("unavailableé availableñ", doc)
	assert.Equal(t, IntentDefault, intent)

	intent, out := m.Classify("available!", doc)
	assert.Equal(t, IntentFAQ, intent)
	assert.Equal(t, "Yes", out)
}

func TestContainsWord(t *testing.T) {
	assert.True(t, containsWord("see you soon", "see you"))
	assert.True(t, containsWord("hihi hi", "hi"))
	assert.False(t, containsWord("hire?", "hire?"))
	assert.True(t, containsWord("hire?x", "hire?"))
	assert.False(t, containsWord("anything", ""))
}
