package services

import "hirelens/resume-screener/internal/models"

// Categorize maps a similarity score and matched-skill count to a hiring
// category and display highlight. First matching rule wins.
//
// Scores in (0.7, 0.8], and scores in [0.3, 0.7] with fewer than 10 matched
// skills, fall through to Not Good. That coverage gap is part of the
// observable contract and is kept as-is.
func Categorize(score float64, matchedSkills int) (models.Category, models.Highlight) {
	switch {
	case score > 0.8:
		return models.CategoryBestForHire, models.HighlightGreen
	case score >= 0.3 && score <= 0.7 && matchedSkills >= 10:
		return models.CategoryInterview, models.HighlightYellow
	case score < 0.3 && score < 0.5 && matchedSkills >= 10:
		// The score < 0.5 clause is dead logic carried over from the source
		// rule set (score < 0.3 already implies it); kept so the observable
		// behavior stays identical.
		return models.CategoryInterview, models.HighlightYellow
	default:
		return models.CategoryNotGood, models.HighlightRed
	}
}
