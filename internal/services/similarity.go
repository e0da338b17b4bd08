package services

import (
	"math"
	"strings"
)

// CosineSimilarity computes the cosine of the angle between the term-frequency
// vectors of two normalized documents. The vector space is built from the
// vocabulary of exactly these two documents — pure term counts, no IDF
// weighting, no external corpus. Because the space is rebuilt per pair, scores
// for different resumes in one request are not computed on a shared frequency
// model; only the job description side is constant.
//
// Returns a value in [0, 1]. Either document being empty, or the pair sharing
// no terms, yields 0.0 rather than an error.
func CosineSimilarity(a, b string) float64 {
	countsA := termCounts(a)
	countsB := termCounts(b)

	var dot float64
	for term, countA := range countsA {
		if countB, ok := countsB[term]; ok {
			dot += float64(countA) * float64(countB)
		}
	}

	denominator := magnitude(countsA) * magnitude(countsB)
	if denominator == 0 {
		return 0.0
	}

	return dot / denominator
}

func termCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, term := range strings.Fields(text) {
		counts[term]++
	}
	return counts
}

func magnitude(counts map[string]int) float64 {
	var sum float64
	for _, count := range counts {
		sum += float64(count) * float64(count)
	}
	return math.Sqrt(sum)
}
