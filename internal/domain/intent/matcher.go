package intent

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"portfolio-api/internal/domain/knowledge"
)

type Intent string

const (
	IntentThanks      Intent = "thanks"
	IntentFarewell    Intent = "farewell"
	IntentHowAreYou   Intent = "how_are_you"
	IntentAffirmative Intent = "affirmative"
	IntentNegative    Intent = "negative"
	IntentGreeting    Intent = "greeting"
	IntentSkills      Intent = "skills"
	IntentProjects    Intent = "projects"
	IntentEducation   Intent = "education"
	IntentContact     Intent = "contact"
	IntentLocation    Intent = "location"
	IntentAbout       Intent = "about"
	IntentHelp        Intent = "help"
	IntentFAQ         Intent = "faq"
	IntentDefault     Intent = "default"
)

// faqKeywordMinRunes: question words must be longer than this to count as keywords.
const faqKeywordMinRunes = 3

// Rule pairs a predicate over the normalized message with the responder used
// when it matches. Rules are evaluated in slice order and the first match wins.
type Rule struct {
	Intent  Intent
	Match   func(msg string, doc *knowledge.Document) bool
	Respond func(msg string, doc *knowledge.Document) string
}

// DefaultRules returns the assistant's rule table. Order is part of the
// behavior: an input naming both skills and projects gets the skills answer.
func DefaultRules() []Rule {
	return []Rule{
		keywordRule(IntentThanks, thanksResponse, "thank", "thanks", "thx", "ty"),
		keywordRule(IntentFarewell, farewellResponse, "bye", "goodbye", "see you", "farewell"),
		keywordRule(IntentHowAreYou, howAreYouResponse, "how are you", "how's it going", "how do you do", "what's up"),
		exactRule(IntentAffirmative, affirmativeResponse, "yes", "yeah", "yep", "sure"),
		exactRule(IntentNegative, negativeResponse, "no", "nope", "not now"),

		keywordRule(IntentGreeting, greetingResponse, "hello", "hi", "hey", "greetings", "howdy"),

		keywordRule(IntentSkills, skillsResponse,
			"skill", "skills", "technologies", "tech stack", "programming", "languages", "tools", "frameworks", "what can you do"),
		keywordRule(IntentProjects, projectsResponse,
			"project", "projects", "portfolio", "work", "built", "developed", "created", "application", "applications", "app", "apps"),
		keywordRule(IntentEducation, educationResponse,
			"education", "degree", "university", "college", "school", "academic", "background", "study", "studied"),
		keywordRule(IntentContact, contactResponse,
			"contact", "hire", "job", "opportunity", "email", "reach", "get in touch"),
		keywordRule(IntentLocation, locationResponse,
			"location", "based", "live", "city", "country", "where"),
		keywordRule(IntentAbout, aboutResponse,
			"about", "who", "tell me about", "introduction", "background", "person", "yourself"),
		keywordRule(IntentHelp, helpResponse,
			"help", "assist", "support", "what can you do", "commands", "options"),

		{
			Intent: IntentFAQ,
			Match: func(msg string, doc *knowledge.Document) bool {
				_, ok := matchFAQ(msg, doc)
				return ok
			},
			Respond: func(msg string, doc *knowledge.Document) string {
				faq, _ := matchFAQ(msg, doc)
				return faq.Answer
			},
		},
	}
}

type Matcher struct {
	rules []Rule
}

// NewMatcher builds a matcher over the given rules, or over DefaultRules when
// none are passed.
func NewMatcher(rules ...Rule) *Matcher {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Matcher{rules: rules}
}

// Rules returns a copy of the rule table in evaluation order.
func (m *Matcher) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// Respond maps free text to the answer of the first matching rule.
func (m *Matcher) Respond(text string, doc *knowledge.Document) string {
	_, out := m.Classify(text, doc)
	return out
}

// Classify is Respond that also reports which intent produced the answer.
// The returned answer is never empty.
func (m *Matcher) Classify(text string, doc *knowledge.Document) (Intent, string) {
	msg := Normalize(text)
	for _, r := range m.rules {
		if r.Match == nil || r.Respond == nil {
			continue
		}
		if !r.Match(msg, doc) {
			continue
		}
		if out := r.Respond(msg, doc); out != "" {
			return r.Intent, out
		}
	}
	return IntentDefault, DefaultResponse(doc)
}

func Normalize(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}

func keywordRule(intent Intent, respond func(*knowledge.Document) string, keywords ...string) Rule {
	return Rule{
		Intent: intent,
		Match: func(msg string, _ *knowledge.Document) bool {
			for _, kw := range keywords {
				if containsWord(msg, kw) {
					return true
				}
			}
			return false
		},
		Respond: func(_ string, doc *knowledge.Document) string { return respond(doc) },
	}
}

func exactRule(intent Intent, respond func(*knowledge.Document) string, phrases ...string) Rule {
	set := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		set[p] = struct{}{}
	}
	return Rule{
		Intent: intent,
		Match: func(msg string, _ *knowledge.Document) bool {
			_, ok := set[msg]
			return ok
		},
		Respond: func(_ string, doc *knowledge.Document) string { return respond(doc) },
	}
}

// containsWord reports whether kw occurs in msg with a word boundary on both
// sides. Word characters are Unicode letters, digits and underscore, so
// "hi" is not found in "hiç".
func containsWord(msg, kw string) bool {
	if kw == "" {
		return false
	}
	for from := 0; from <= len(msg)-len(kw); {
		i := strings.Index(msg[from:], kw)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(kw)
		if isBoundary(msg, start) && isBoundary(msg, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(msg[start:])
		from = start + size
	}
	return false
}

// isBoundary reports whether byte offset i sits between a word and a non-word
// character. The ends of the string count as non-word.
func isBoundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// matchFAQ returns the first FAQ, in store order, sharing a keyword with msg.
// Any single keyword is enough.
func matchFAQ(msg string, doc *knowledge.Document) (knowledge.FAQ, bool) {
	if doc == nil {
		return knowledge.FAQ{}, false
	}
	for _, faq := range doc.FAQs {
		if strings.TrimSpace(faq.Answer) == "" {
			continue
		}
		for _, kw := range FAQKeywords(faq.Question) {
			if containsWord(msg, kw) {
				return faq, true
			}
		}
	}
	return knowledge.FAQ{}, false
}

// FAQKeywords splits a stored question on whitespace and keeps the lowercase
// words longer than three characters. Punctuation stays attached.
func FAQKeywords(question string) []string {
	words := strings.Fields(strings.ToLower(question))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) > faqKeywordMinRunes {
			out = append(out, w)
		}
	}
	return out
}
