// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// EducationLevel represents a degree level on a fixed ordinal scale.
type EducationLevel string

// Recognized education levels, lowest to highest.
const (
	EducationNone      EducationLevel = "none"
	EducationAssociate EducationLevel = "associate"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationDoctorate EducationLevel = "doctorate"
)

// educationRank maps levels to numeric ranks for comparison.
var educationRank = map[EducationLevel]int{
	EducationNone:      0,
	EducationAssociate: 1,
	EducationBachelor:  2,
	EducationMaster:    3,
	EducationDoctorate: 4,
}

// Rank returns the ordinal rank of the level. Unknown levels rank as none.
func (l EducationLevel) Rank() int {
	return educationRank[l]
}

// AtLeast reports whether the level meets or exceeds the other level.
func (l EducationLevel) AtLeast(other EducationLevel) bool {
	return l.Rank() >= other.Rank()
}

// Valid reports whether the level is one of the recognized values.
func (l EducationLevel) Valid() bool {
	_, ok := educationRank[l]
	return ok
}

// HigherEducation returns the higher-ranked of two levels.
func HigherEducation(a, b EducationLevel) EducationLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}
