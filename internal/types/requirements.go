package types

// Priority represents how strongly a job description asks for a skill.
type Priority string

// Recognized skill priorities.
const (
	PriorityRequired  Priority = "required"
	PriorityPreferred Priority = "preferred"
)

// Rank returns a numeric priority rank. Higher is stronger.
func (p Priority) Rank() int {
	switch p {
	case PriorityRequired:
		return 2
	case PriorityPreferred:
		return 1
	default:
		return 0
	}
}

// SkillRequirement is one skill demanded by a job description.
type SkillRequirement struct {
	Priority Priority `json:"priority"`
	Weight   float64  `json:"weight"`
}

// RequirementSet is the structured output of requirement extraction.
// Skill names are canonical ids; weights sum to 1.0 whenever any skill is
// present. A zero MinExperienceYears means no experience requirement was
// stated, and an empty EducationLevel means no degree requirement was stated.
type RequirementSet struct {
	Skills             map[string]SkillRequirement `json:"skills"`
	MinExperienceYears float64                     `json:"min_experience_years,omitempty"`
	EducationLevel     EducationLevel              `json:"education_level,omitempty"`
	Keywords           []string                    `json:"keywords"`
	JobTitle           string                      `json:"job_title,omitempty"`
	Location           string                      `json:"location,omitempty"`
	Underspecified     bool                        `json:"is_underspecified"`
}

// RequiredSkills returns the canonical ids of skills with required priority.
func (rs *RequirementSet) RequiredSkills() []string {
	var out []string
	for name, req := range rs.Skills {
		if req.Priority == PriorityRequired {
			out = append(out, name)
		}
	}
	return out
}
