package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilaritySelf(t *testing.T) {
	doc := Normalize("Looking for a Python developer with SQL and machine learning experience")
	got := CosineSimilarity(doc, doc)
	assert.InDelta(t, 1.0, got, 1e-9, "a document against itself must score 1.0")
}

func TestCosineSimilarityEmpty(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{name: "empty resume", a: "", b: "python developer"},
		{name: "empty jd", a: "python developer", b: ""},
		{name: "both empty", a: "", b: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, CosineSimilarity(tt.a, tt.b))
		})
	}
}

func TestCosineSimilarityNoOverlap(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity("python sql", "flutter android"))
}

func TestCosineSimilarityPartialOverlap(t *testing.T) {
	got := CosineSimilarity("python sql", "python flutter")
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 1.0)
	// Two two-term vectors sharing one term: 1/(sqrt(2)*sqrt(2)).
	assert.InDelta(t, 0.5, got, 1e-9)
}

// The vector space is rebuilt for every (JD, resume) pair, so a pair's score
// never depends on what other resumes were part of the request. This pins the
// per-pair vocabulary design rather than a shared request-wide term space.
func TestCosineSimilarityPerPairVocabulary(t *testing.T) {
	jd := "python sql machine learning"
	resume := "python sql"

	alone := CosineSimilarity(resume, jd)

	// Score other resumes in between; the original pair must be unaffected.
	_ = CosineSimilarity("flutter android ios mobile", jd)
	_ = CosineSimilarity("", jd)
	again := CosineSimilarity(resume, jd)

	assert.Equal(t, alone, again)
}
