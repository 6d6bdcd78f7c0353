package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidSection(t *testing.T) {
	for _, s := range []string{SectionHero, SectionAbout, SectionSkills, SectionProjects, SectionContact} {
		assert.True(t, ValidSection(s), s)
	}
	assert.False(t, ValidSection("footer"))
	assert.False(t, ValidSection(""))
}

func TestValidContentType(t *testing.T) {
	for _, ct := range []string{TypeText, TypeHTML, TypeArray, TypeObject, TypeImage} {
		assert.True(t, ValidContentType(ct), ct)
	}
	assert.False(t, ValidContentType("blob"))
}

func TestProjectInput_ValidateMessages(t *testing.T) {
	in := ProjectInput{}
	err := in.Validate()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "title is required")
	assert.Contains(t, vErr.Message, "description is required")
}

func TestSkillInput_ValidateMessages(t *testing.T) {
	err := (&SkillInput{Name: "Go", Category: "devops", Level: 12}).Validate()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "category must be one of")
	assert.Contains(t, vErr.Message, "level must be at most 10")

	err = (&SkillInput{Name: "Go", Category: CategoryBackend, Level: 7}).Validate()
	assert.NoError(t, err)
}

func TestExperienceInput_ValidateMessages(t *testing.T) {
	err := (&ExperienceInput{}).Validate()

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "company is required")
	assert.Contains(t, vErr.Message, "position is required")
	assert.Contains(t, vErr.Message, "startDate is required")
}
