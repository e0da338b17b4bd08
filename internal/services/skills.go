package services

import (
	"fmt"
	"sort"
	"strings"
)

// skillKeywords is the fixed fallback vocabulary of domain terms matched
// against the job description's word list. Matching is exact whole-token
// membership, so the multiword and punctuated entries ("machine learning",
// "node.js") can never match a single normalized token; they are kept for
// parity with the source vocabulary.
var skillKeywords = []string{
	"data", "analysis", "machine learning", "visualization", "pipeline",
	"algorithm", "python", "sql", "statistics", "deep learning", "ai",
	"mobile development", "android", "ios", "flutter", "react native",
	"mern stack", "mongodb", "express", "react", "node.js",
	"data science", "pandas", "numpy", "scikit-learn", "tensorflow", "keras",
}

// entityLabels are the annotator categories likely to represent skills.
var entityLabels = map[string]struct{}{
	"ORG":      {},
	"SKILL":    {},
	"PRODUCT":  {},
	"LANGUAGE": {},
}

type SkillService interface {
	// ExtractFromJD produces the deduplicated set of candidate skill terms
	// found in a normalized job description, sorted for deterministic
	// enumeration.
	ExtractFromJD(jd string) ([]string, error)

	// MatchSkills returns the JD skills that occur in the resume's normalized
	// text. Matching is substring-based, deliberately looser than the
	// whole-token keyword source: "java" matches inside "javascript".
	MatchSkills(skills []string, resume string) []string
}

type skillService struct {
	annotator Annotator
}

func NewSkillService(annotator Annotator) SkillService {
	return &skillService{annotator: annotator}
}

// ExtractFromJD unions three independent sources: entity spans, the fixed
// keyword vocabulary, and every common-noun token. The noun source is
// intentionally broad and dominates the set size. No ranking or confidence
// weighting; all sources contribute equally.
func (s *skillService) ExtractFromJD(jd string) ([]string, error) {
	entities, err := s.annotator.Entities(jd)
	if err != nil {
		return nil, fmt.Errorf("failed to extract entities from job description: %w", err)
	}

	nouns, err := s.annotator.Nouns(jd)
	if err != nil {
		return nil, fmt.Errorf("failed to extract nouns from job description: %w", err)
	}

	set := make(map[string]struct{})
	for _, skill := range entitySkills(entities) {
		set[skill] = struct{}{}
	}
	for _, skill := range keywordSkills(jd) {
		set[skill] = struct{}{}
	}
	for _, skill := range nounSkills(nouns) {
		set[skill] = struct{}{}
	}

	skills := make([]string, 0, len(set))
	for skill := range set {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	return skills, nil
}

func (s *skillService) MatchSkills(skills []string, resume string) []string {
	var matched []string
	for _, skill := range skills {
		if strings.Contains(resume, skill) {
			matched = append(matched, skill)
		}
	}
	return matched
}

// entitySkills keeps the spans whose label suggests a skill, lowercased.
func entitySkills(entities []Entity) []string {
	var skills []string
	for _, ent := range entities {
		if _, ok := entityLabels[ent.Label]; ok {
			skills = append(skills, strings.ToLower(ent.Text))
		}
	}
	return skills
}

// keywordSkills includes a vocabulary term when it appears as a whole token in
// the job description's word list.
func keywordSkills(jd string) []string {
	words := make(map[string]struct{})
	for _, word := range strings.Fields(jd) {
		words[word] = struct{}{}
	}

	var skills []string
	for _, keyword := range skillKeywords {
		if _, ok := words[keyword]; ok {
			skills = append(skills, keyword)
		}
	}
	return skills
}

// nounSkills passes every common-noun token through verbatim, lowercased.
func nounSkills(nouns []string) []string {
	skills := make([]string, 0, len(nouns))
	for _, noun := range nouns {
		skills = append(skills, strings.ToLower(noun))
	}
	return skills
}
