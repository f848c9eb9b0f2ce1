package services

import (
	"strings"

	"github.com/eduniti/ai-engine/internal/models"
)

// interestCategory is one row of the interest taxonomy. The taxonomy is a
// static table so categories and keywords can be tuned without touching the
// scoring code.
type interestCategory struct {
	Name     string
	Keywords []string
}

// interestCategories is the fixed five-category taxonomy used to bucket
// free-text interests.
var interestCategories = []interestCategory{
	{Name: "technical", Keywords: []string{"programming", "mathematics", "science", "technology", "computer"}},
	{Name: "creative", Keywords: []string{"art", "design", "music", "writing", "photography"}},
	{Name: "social", Keywords: []string{"leadership", "communication", "public speaking", "teamwork"}},
	{Name: "analytical", Keywords: []string{"research", "problem solving", "data analysis", "statistics"}},
	{Name: "practical", Keywords: []string{"hands-on", "mechanical", "construction", "engineering"}},
}

// InterestAnalyzer scores free-text interests against the category taxonomy.
type InterestAnalyzer struct{}

func NewInterestAnalyzer() *InterestAnalyzer {
	return &InterestAnalyzer{}
}

// AnalyzeInterests maps a list of interest strings to per-category scores.
// An interest counts toward a category when it contains any of the
// category's keywords (case-insensitive substring match). Scores are
// normalized by the number of interests, so each lands in [0,1]. An empty
// interest list yields all zeros.
func (a *InterestAnalyzer) AnalyzeInterests(interests []string) models.InterestScores {
	scores := make(models.InterestScores, len(interestCategories))

	for _, category := range interestCategories {
		count := 0
		for _, interest := range interests {
			interestLower := strings.ToLower(interest)
			for _, keyword := range category.Keywords {
				if strings.Contains(interestLower, keyword) {
					count++
					break
				}
			}
		}

		if len(interests) == 0 {
			scores[category.Name] = 0
		} else {
			scores[category.Name] = float64(count) / float64(len(interests))
		}
	}

	return scores
}
