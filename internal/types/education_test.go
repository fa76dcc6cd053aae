package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEducationLevel_Rank_Ordering(t *testing.T) {
	assert.Less(t, EducationNone.Rank(), EducationAssociate.Rank())
	assert.Less(t, EducationAssociate.Rank(), EducationBachelor.Rank())
	assert.Less(t, EducationBachelor.Rank(), EducationMaster.Rank())
	assert.Less(t, EducationMaster.Rank(), EducationDoctorate.Rank())
}

func TestEducationLevel_AtLeast(t *testing.T) {
	tests := []struct {
		name     string
		have     EducationLevel
		need     EducationLevel
		expected bool
	}{
		{"equal levels", EducationBachelor, EducationBachelor, true},
		{"above requirement", EducationDoctorate, EducationMaster, true},
		{"below requirement", EducationAssociate, EducationBachelor, false},
		{"none below everything", EducationNone, EducationAssociate, false},
		{"unknown level ranks as none", EducationLevel("unknown"), EducationAssociate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.have.AtLeast(tt.need))
		})
	}
}

func TestEducationLevel_Valid(t *testing.T) {
	assert.True(t, EducationMaster.Valid())
	assert.True(t, EducationNone.Valid())
	assert.False(t, EducationLevel("mba").Valid())
}

func TestHigherEducation(t *testing.T) {
	assert.Equal(t, EducationMaster, HigherEducation(EducationBachelor, EducationMaster))
	assert.Equal(t, EducationMaster, HigherEducation(EducationMaster, EducationBachelor))
	assert.Equal(t, EducationDoctorate, HigherEducation(EducationDoctorate, EducationDoctorate))
}

func TestPriority_Rank(t *testing.T) {
	assert.Greater(t, PriorityRequired.Rank(), PriorityPreferred.Rank())
	assert.Greater(t, PriorityPreferred.Rank(), Priority("").Rank())
}

func TestRequirementSet_RequiredSkills(t *testing.T) {
	rs := &RequirementSet{
		Skills: map[string]SkillRequirement{
			"python": {Priority: PriorityRequired, Weight: 0.6},
			"docker": {Priority: PriorityPreferred, Weight: 0.4},
		},
	}

	required := rs.RequiredSkills()
	assert.Equal(t, []string{"python"}, required)
}
