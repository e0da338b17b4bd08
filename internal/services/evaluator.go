package services

import (
	"fmt"
	"log"
	"math"
	"sort"

	"hirelens/resume-screener/internal/models"
)

type EvaluatorService interface {
	// Evaluate scores every resume against the job description and returns
	// the results sorted by descending similarity score. Resumes are
	// processed strictly sequentially; a resume whose text cannot be
	// extracted scores 0.0 instead of failing the request.
	Evaluate(jobDescription string, resumes []models.Document) ([]models.ScoreResult, error)
}

type evaluatorService struct {
	extractor ExtractorService
	skills    SkillService
}

func NewEvaluatorService(extractor ExtractorService, skills SkillService) EvaluatorService {
	return &evaluatorService{
		extractor: extractor,
		skills:    skills,
	}
}

func (e *evaluatorService) Evaluate(jobDescription string, resumes []models.Document) ([]models.ScoreResult, error) {
	// Step 1: Normalize the JD and extract its skill set once per request.
	jdClean := Normalize(jobDescription)

	jdSkills, err := e.skills.ExtractFromJD(jdClean)
	if err != nil {
		return nil, fmt.Errorf("failed to extract skills from job description: %w", err)
	}
	log.Printf("🧠 Extracted %d candidate skills from job description", len(jdSkills))

	// Step 2: Score each resume against the JD.
	results := make([]models.ScoreResult, 0, len(resumes))
	for _, doc := range resumes {
		log.Printf("📄 Processing %s (%s)", doc.Filename, doc.ID)

		raw := e.extractor.ExtractText(doc)
		if raw == "" {
			log.Printf("⚠️  No text extracted from %s; scoring as empty", doc.Filename)
		}
		resumeClean := Normalize(raw)

		matched := e.skills.MatchSkills(jdSkills, resumeClean)
		// Categorization sees the unrounded score; only the reported (and
		// sorted) value is rounded to two decimals.
		similarity := CosineSimilarity(resumeClean, jdClean)
		category, highlight := Categorize(similarity, len(matched))
		score := roundScore(similarity)

		log.Printf("✅ %s scored %.2f (%s, %d skills matched)", doc.Filename, score, category, len(matched))

		results = append(results, models.ScoreResult{
			Filename:      doc.Filename,
			Score:         score,
			Category:      category,
			MatchedSkills: matched,
			Highlight:     highlight,
		})
	}

	// Step 3: Sort by descending score; ties keep upload order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
