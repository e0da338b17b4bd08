package models

type Category string

const (
	CategoryBestForHire Category = "Best for Hire"
	CategoryInterview   Category = "Can Consider for Interview"
	CategoryNotGood     Category = "Not Good"
)

type Highlight string

const (
	HighlightGreen  Highlight = "green"
	HighlightYellow Highlight = "yellow"
	HighlightRed    Highlight = "red"
)

// NoSkillsMatched is returned in place of the matched_skills array when a
// resume matched nothing. The literal string, rather than an empty array, is
// part of the response contract.
const NoSkillsMatched = "No skills matched."

// ScoreResult is the outcome of scoring one resume against the job
// description. Score is already rounded to two decimals.
type ScoreResult struct {
	Filename      string
	Score         float64
	Category      Category
	MatchedSkills []string
	Highlight     Highlight
}

type EvaluateResult struct {
	Filename              string  `json:"filename"`
	Prediction            string  `json:"prediction"`
	CosineSimilarityScore float64 `json:"cosine_similarity_score"`
	MatchedSkills         any     `json:"matched_skills"`
	Highlight             string  `json:"highlight"`
}

func (r ScoreResult) Response() EvaluateResult {
	result := EvaluateResult{
		Filename:              r.Filename,
		Prediction:            string(r.Category),
		CosineSimilarityScore: r.Score,
		Highlight:             string(r.Highlight),
	}

	if len(r.MatchedSkills) > 0 {
		result.MatchedSkills = r.MatchedSkills
	} else {
		result.MatchedSkills = NoSkillsMatched
	}

	return result
}

func NewEvaluateResponse(results []ScoreResult) []EvaluateResult {
	response := make([]EvaluateResult, 0, len(results))
	for _, r := range results {
		response = append(response, r.Response())
	}
	return response
}
