package types

// SkillEvidence records how a skill shows up in a resume.
type SkillEvidence struct {
	EvidenceCount int      `json:"evidence_count"`
	Contexts      []string `json:"contexts"`
}

// CandidateProfile is the structured output of resume extraction.
// Skill names are canonical ids. ExperienceYears is a best-effort aggregate;
// when it could not be detected it is 0.0 and ExperienceUnverifiable is set,
// so a zero must never be read as "no experience".
type CandidateProfile struct {
	Skills                 map[string]SkillEvidence  `json:"skills"`
	ExperienceYears        float64                   `json:"experience_years"`
	ExperienceUnverifiable bool                      `json:"experience_unverifiable"`
	EducationLevel         EducationLevel            `json:"education_level,omitempty"`
	Sections               map[string]NormalizedText `json:"-"`
	Text                   NormalizedText            `json:"-"`

	// Contact details pulled from the resume header, when present.
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// HasSkill reports whether the profile carries evidence for a canonical skill id.
func (cp *CandidateProfile) HasSkill(canonical string) bool {
	_, ok := cp.Skills[canonical]
	return ok
}
