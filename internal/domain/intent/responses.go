package intent

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"portfolio-api/internal/domain/knowledge"
)

const fallbackOwner = "the portfolio owner"

func owner(doc *knowledge.Document) string {
	if doc == nil {
		return fallbackOwner
	}
	if n := doc.Profile.FirstName(); n != "" {
		return n
	}
	return fallbackOwner
}

func thanksResponse(doc *knowledge.Document) string {
	return fmt.Sprintf("You're welcome! I'm happy to help. Is there anything else you'd like to know about %s?", owner(doc))
}

func farewellResponse(doc *knowledge.Document) string {
	return fmt.Sprintf("Goodbye! Feel free to chat again if you have more questions about %s's experience or projects.", owner(doc))
}

func howAreYouResponse(doc *knowledge.Document) string {
	return fmt.Sprintf("I'm just a digital assistant, but I'm functioning well! How can I help you learn more about %s today?", owner(doc))
}

func affirmativeResponse(doc *knowledge.Document) string {
	return fmt.Sprintf("Great! What would you like to know? You can ask about %s's skills, projects, education, or work experience.", owner(doc))
}

func negativeResponse(*knowledge.Document) string {
	return "Alright! Feel free to ask if you have questions later."
}

func greetingResponse(doc *knowledge.Document) string {
	return fmt.Sprintf("Hello! I'm an AI assistant for %s's portfolio. How can I help you today?", owner(doc))
}

func skillsResponse(doc *knowledge.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s's key skills include:\n", owner(doc))
	if doc == nil {
		return b.String()
	}
	for _, c := range doc.Skills {
		fmt.Fprintf(&b, "• %s: %s\n", c.Category, strings.Join(c.SkillNames(), ", "))
	}
	return b.String()
}

func projectsResponse(doc *knowledge.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are some of %s's notable projects:\n", owner(doc))
	if doc == nil {
		return b.String()
	}
	for _, p := range doc.Projects {
		fmt.Fprintf(&b, "• %s: %s (Technologies: %s)\n", p.Title, p.Description, strings.Join(p.Technologies, ", "))
	}
	return b.String()
}

func educationResponse(doc *knowledge.Document) string {
	education := "pursuing higher education"
	if doc != nil && strings.TrimSpace(doc.Profile.Education) != "" {
		education = lowerLeadingWord(strings.TrimSpace(doc.Profile.Education))
	}
	return fmt.Sprintf("%s is %s.", owner(doc), strings.TrimSuffix(education, "."))
}

func contactResponse(doc *knowledge.Document) string {
	name := owner(doc)
	out := fmt.Sprintf("You can contact %s through the contact form on this website.", name)
	if doc == nil || strings.TrimSpace(doc.Profile.Title) == "" {
		return out + fmt.Sprintf(" %s is open to discussing new opportunities.", name)
	}
	title := strings.TrimSpace(doc.Profile.Title)
	return out + fmt.Sprintf(" %s is currently working as %s %s but is open to discussing new opportunities.", name, article(title), title)
}

func locationResponse(doc *knowledge.Document) string {
	if doc == nil || strings.TrimSpace(doc.Profile.Location) == "" {
		return fmt.Sprintf("%s hasn't shared a location yet.", owner(doc))
	}
	return fmt.Sprintf("%s is based in %s.", owner(doc), strings.TrimSpace(doc.Profile.Location))
}

func aboutResponse(doc *knowledge.Document) string {
	if doc != nil && strings.TrimSpace(doc.Profile.About) != "" {
		return strings.TrimSpace(doc.Profile.About)
	}
	return fmt.Sprintf("%s is passionate about technology and building innovative solutions.", owner(doc))
}

func helpResponse(doc *knowledge.Document) string {
	return fmt.Sprintf("I can answer questions about %s's:\n"+
		"• Skills and technologies\n"+
		"• Projects and portfolio\n"+
		"• Education and background\n"+
		"• Contact information\n"+
		"• Location\n"+
		"Just ask me anything you'd like to know!", owner(doc))
}

// DefaultResponse is returned when no rule and no FAQ matched.
func DefaultResponse(doc *knowledge.Document) string {
	return fmt.Sprintf("I don't have specific information about that. Feel free to ask about %s's skills, projects, education, or contact information. You can also try rephrasing your question.", owner(doc))
}

// lowerLeadingWord turns "Pursuing a degree" into "pursuing a degree" but
// leaves acronyms such as "MSc" or "MIT" alone.
func lowerLeadingWord(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError || !unicode.IsUpper(first) {
		return s
	}
	second, _ := utf8.DecodeRuneInString(s[size:])
	if !unicode.IsLower(second) {
		return s
	}
	return string(unicode.ToLower(first)) + s[size:]
}

func article(s string) string {
	r, _ := utf8.DecodeRuneInString(strings.ToLower(s))
	if strings.ContainsRune("aeiou", r) {
		return "an"
	}
	return "a"
}
