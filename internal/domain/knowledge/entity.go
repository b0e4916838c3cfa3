package knowledge

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

type Document struct {
	Profile  Profile         `json:"profile" yaml:"profile"`
	Skills   []SkillCategory `json:"skills" yaml:"skills" validate:"dive"`
	Projects []Project       `json:"projects" yaml:"projects" validate:"dive"`
	FAQs     []FAQ           `json:"faqs" yaml:"faqs" validate:"dive"`
}

type Profile struct {
	Name      string `json:"name" yaml:"name"`
	Title     string `json:"title" yaml:"title"`
	Education string `json:"education" yaml:"education"`
	Location  string `json:"location" yaml:"location"`
	About     string `json:"about" yaml:"about"`
}

// FirstName is the name used when the assistant talks about the profile owner.
func (p Profile) FirstName() string {
	fields := strings.Fields(p.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

type SkillCategory struct {
	Category string      `json:"category" yaml:"category" validate:"required"`
	Items    []SkillItem `json:"items" yaml:"items" validate:"dive"`
}

// SkillItem is an entry of a skill category. In a document it may be written
// either as a bare name or as a full object. Decoding gives DefaultProficiency
// to items that leave proficiency out; a value that is present is kept as is.
type SkillItem struct {
	ID          int    `json:"id" yaml:"id" validate:"gte=0"`
	Name        string `json:"name" yaml:"name" validate:"required"`
	Proficiency int    `json:"proficiency" yaml:"proficiency" validate:"min=1,max=5"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type skillItemFields SkillItem

func (s *SkillItem) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		*s = SkillItem{Name: name, Proficiency: DefaultProficiency}
		return nil
	}
	f := skillItemFields{Proficiency: DefaultProficiency}
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*s = SkillItem(f)
	return nil
}

func (s *SkillItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*s = SkillItem{Name: node.Value, Proficiency: DefaultProficiency}
		return nil
	}
	f := skillItemFields{Proficiency: DefaultProficiency}
	if err := node.Decode(&f); err != nil {
		return err
	}
	*s = SkillItem(f)
	return nil
}

// Skill is the flattened catalog view of a SkillItem.
type Skill struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency int    `json:"proficiency"`
	Icon        string `json:"icon,omitempty"`
	Description string `json:"description,omitempty"`
}

type Project struct {
	ID           int      `json:"id" yaml:"id" validate:"gte=0"`
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Description  string   `json:"description" yaml:"description"`
	ImageURL     string   `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	ProjectURL   string   `json:"project_url,omitempty" yaml:"project_url,omitempty"`
	GithubURL    string   `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	StartDate    *Date    `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate      *Date    `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	IsFeatured   bool     `json:"is_featured" yaml:"is_featured"`
}

type FAQ struct {
	Question string `json:"question" yaml:"question" validate:"required"`
	Answer   string `json:"answer" yaml:"answer"`
}

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) *Date {
	return &Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseDate(node.Value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
