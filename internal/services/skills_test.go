package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAnnotator returns canned annotations so the sources can be tested in
// isolation from the real tagging model.
type fakeAnnotator struct {
	entities []Entity
	nouns    []string
	err      error
}

func (f *fakeAnnotator) Entities(text string) ([]Entity, error) {
	return f.entities, f.err
}

func (f *fakeAnnotator) Nouns(text string) ([]string, error) {
	return f.nouns, f.err
}

func TestExtractFromJDKeywordSource(t *testing.T) {
	svc := NewSkillService(&fakeAnnotator{})

	skills, err := svc.ExtractFromJD("looking python developer sql machine learning experience")
	require.NoError(t, err)

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "sql")
	// Multiword vocabulary entries never match a single token.
	assert.NotContains(t, skills, "machine learning")
	assert.NotContains(t, skills, "keras")
}

func TestExtractFromJDEntitySource(t *testing.T) {
	svc := NewSkillService(&fakeAnnotator{
		entities: []Entity{
			{Text: "TensorFlow", Label: "PRODUCT"},
			{Text: "Google", Label: "ORG"},
			{Text: "John Smith", Label: "PERSON"},
			{Text: "London", Label: "GPE"},
		},
	})

	skills, err := svc.ExtractFromJD("")
	require.NoError(t, err)

	assert.Contains(t, skills, "tensorflow")
	assert.Contains(t, skills, "google")
	// Only ORG/SKILL/PRODUCT/LANGUAGE spans count as skills.
	assert.NotContains(t, skills, "john smith")
	assert.NotContains(t, skills, "london")
}

func TestExtractFromJDNounSource(t *testing.T) {
	svc := NewSkillService(&fakeAnnotator{
		nouns: []string{"developer", "Experience", "pipelines"},
	})

	skills, err := svc.ExtractFromJD("")
	require.NoError(t, err)

	assert.Contains(t, skills, "developer")
	assert.Contains(t, skills, "experience")
	assert.Contains(t, skills, "pipelines")
}

func TestExtractFromJDUnionDeduplicatedSorted(t *testing.T) {
	svc := NewSkillService(&fakeAnnotator{
		entities: []Entity{{Text: "Python", Label: "LANGUAGE"}},
		nouns:    []string{"python", "data"},
	})

	skills, err := svc.ExtractFromJD("python data")
	require.NoError(t, err)

	// "python" arrives from all three sources, "data" from two; each appears
	// once and enumeration order is deterministic.
	assert.Equal(t, []string{"data", "python"}, skills)
}

func TestExtractFromJDAnnotatorError(t *testing.T) {
	svc := NewSkillService(&fakeAnnotator{err: assert.AnError})

	_, err := svc.ExtractFromJD("python")
	assert.Error(t, err)
}

func TestMatchSkillsSubstring(t *testing.T) {
	svc := NewSkillService(&fakeAnnotator{})

	tests := []struct {
		name   string
		skills []string
		resume string
		want   []string
	}{
		{
			name:   "exact presence",
			skills: []string{"python", "sql"},
			resume: "python developer sql experience",
			want:   []string{"python", "sql"},
		},
		{
			name:   "substring match is deliberate",
			skills: []string{"java"},
			resume: "senior javascript engineer",
			want:   []string{"java"},
		},
		{
			name:   "no matches",
			skills: []string{"flutter", "kotlin"},
			resume: "python developer",
			want:   nil,
		},
		{
			name:   "empty resume matches nothing",
			skills: []string{"python"},
			resume: "",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.MatchSkills(tt.skills, tt.resume)
			assert.Equal(t, tt.want, got)
		})
	}
}
