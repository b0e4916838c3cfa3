package knowledge

import (
	"fmt"
	"strings"
)

// ProfileContext renders the document as plain text for use as grounding
// material in a generative prompt. FAQ pairs are included.
func (d *Document) ProfileContext() string {
	var b strings.Builder

	p := d.Profile
	if p.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", p.Name)
	}
	if p.Title != "" {
		fmt.Fprintf(&b, "Current role: %s\n", p.Title)
	}
	if p.Education != "" {
		fmt.Fprintf(&b, "Education: %s\n", p.Education)
	}
	if p.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", p.Location)
	}
	if p.About != "" {
		fmt.Fprintf(&b, "About: %s\n", p.About)
	}

	if len(d.Skills) > 0 {
		b.WriteString("\nSkills:\n")
		for _, c := range d.Skills {
			fmt.Fprintf(&b, "- %s: %s\n", c.Category, strings.Join(c.SkillNames(), ", "))
		}
	}

	if len(d.Projects) > 0 {
		b.WriteString("\nProjects:\n")
		for _, pr := range d.Projects {
			fmt.Fprintf(&b, "- %s", pr.Title)
			if pr.Description != "" {
				fmt.Fprintf(&b, ": %s", pr.Description)
			}
			if len(pr.Technologies) > 0 {
				fmt.Fprintf(&b, " (Technologies: %s)", strings.Join(pr.Technologies, ", "))
			}
			b.WriteString("\n")
		}
	}

	if len(d.FAQs) > 0 {
		b.WriteString("\nFrequently asked:\n")
		for _, f := range d.FAQs {
			if f.Answer == "" {
				continue
			}
			fmt.Fprintf(&b, "Q: %s\nA: %s\n", f.Question, f.Answer)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
