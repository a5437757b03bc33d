package candidate

import (
	"strings"

	"github.com/google/uuid"
)

// Candidate is the flattened profile the store returns. Collection fields are
// normalized to non-nil slices at the storage boundary so scoring code never
// has to branch on missing data.
type Candidate struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`

	CurrentRole     string `json:"currentRole"`
	DesiredRole     string `json:"desiredRole"`
	CurrentCompany  string `json:"currentCompany"`
	Location        string `json:"location"`
	TotalExperience string `json:"totalExperience"`

	TechnicalSkills []string `json:"technicalSkills"`
	SoftSkills      []string `json:"softSkills"`
	Certifications  []string `json:"certifications"`
	Languages       []string `json:"languages"`

	Qualification string `json:"qualification"`
	Degree        string `json:"degree"`

	Summary    string `json:"summary"`
	ResumeText string `json:"resumeText"`

	Tags       []string `json:"tags"`
	Status     string   `json:"status"`
	UploadedAt string   `json:"uploadedAt"`
}

// Scored is a candidate plus the ranking signals a strategy computed for it.
type Scored struct {
	Candidate
	RelevanceScore   float64  `json:"relevanceScore"`
	MatchPercentage  int      `json:"matchPercentage"`
	MatchingKeywords []string `json:"matchingKeywords"`
}

func (c *Candidate) Normalize() {
	if c == nil {
		return
	}
	if c.TechnicalSkills == nil {
		c.TechnicalSkills = []string{}
	}
	if c.SoftSkills == nil {
		c.SoftSkills = []string{}
	}
	if c.Certifications == nil {
		c.Certifications = []string{}
	}
	if c.Languages == nil {
		c.Languages = []string{}
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}
}

// SearchText builds the lowercased blob strategies match terms against.
func (c Candidate) SearchText() string {
	parts := make([]string, 0, 7+len(c.TechnicalSkills)+len(c.SoftSkills))
	parts = append(parts,
		c.CurrentRole,
		c.DesiredRole,
		c.CurrentCompany,
		c.Summary,
		c.ResumeText,
	)
	parts = append(parts, c.TechnicalSkills...)
	parts = append(parts, c.SoftSkills...)
	return strings.ToLower(strings.Join(parts, " "))
}

// SkillSet returns the explicit lowercased skills for skill-hit counting.
func (c Candidate) SkillSet() []string {
	out := make([]string, 0, len(c.TechnicalSkills)+len(c.SoftSkills))
	for _, s := range c.TechnicalSkills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	for _, s := range c.SoftSkills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
