package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eduniti/ai-engine/internal/catalog"
	"github.com/eduniti/ai-engine/internal/models"
)

// ErrInvalidRecommendationType is returned for request types with no
// recommender behind them, scholarship included.
var ErrInvalidRecommendationType = errors.New("invalid recommendation type")

// streamFormula combines exactly two interest-category scores into a stream
// score. The order of this table is the tie break when streams score equal.
type streamFormula struct {
	Stream    string
	CategoryA string
	CategoryB string
}

// Note: medical and commerce share the same two-term formula. That matches
// the original weighting scheme; do not differentiate them without a
// product decision.
var streamFormulas = []streamFormula{
	{Stream: "science", CategoryA: "technical", CategoryB: "analytical"},
	{Stream: "engineering", CategoryA: "technical", CategoryB: "practical"},
	{Stream: "medical", CategoryA: "analytical", CategoryB: "social"},
	{Stream: "arts", CategoryA: "creative", CategoryB: "social"},
	{Stream: "commerce", CategoryA: "analytical", CategoryB: "social"},
}

const (
	maxRecommendations = 3

	confidenceWithResults = 0.8
	confidenceNoResults   = 0.3
)

// RecommendationEngine produces stream, career and college recommendations
// from a user profile against the static catalog.
type RecommendationEngine struct {
	catalog  *catalog.Catalog
	analyzer *InterestAnalyzer
	logger   *zap.Logger
}

func NewRecommendationEngine(cat *catalog.Catalog, analyzer *InterestAnalyzer, log *zap.Logger) *RecommendationEngine {
	return &RecommendationEngine{
		catalog:  cat,
		analyzer: analyzer,
		logger:   log,
	}
}

// RecommendStreams ranks the five streams against the user's interest
// profile and returns the top three.
func (e *RecommendationEngine) RecommendStreams(profile models.UserProfile) []models.StreamRecommendation {
	interestScores := e.analyzer.AnalyzeInterests(profile.Interests)

	type streamScore struct {
		stream string
		score  float64
	}
	scored := make([]streamScore, 0, len(streamFormulas))
	for _, f := range streamFormulas {
		scored = append(scored, streamScore{
			stream: f.Stream,
			score:  interestScores[f.CategoryA] + interestScores[f.CategoryB],
		})
	}

	// Stable keeps the formula-table order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	topInterests := profile.Interests
	if len(topInterests) > 3 {
		topInterests = topInterests[:3]
	}

	recommendations := make([]models.StreamRecommendation, 0, maxRecommendations)
	for _, s := range scored[:maxRecommendations] {
		recommendations = append(recommendations, models.StreamRecommendation{
			Stream:          s.stream,
			ConfidenceScore: s.score,
			Reasoning: fmt.Sprintf("Based on your interests in %s, %s stream aligns well with your profile.",
				strings.Join(topInterests, ", "), s.stream),
		})
	}

	return recommendations
}

// RecommendCareers filters catalog pathways by the user's top stream and
// ranks them by how many required skills overlap the user's interests.
func (e *RecommendationEngine) RecommendCareers(profile models.UserProfile) []models.CareerMatch {
	recommendedStream := "science"
	if streams := e.RecommendStreams(profile); len(streams) > 0 {
		recommendedStream = streams[0].Stream
	}

	matches := make([]models.CareerMatch, 0)
	for _, pathway := range e.catalog.CareerPathways() {
		if pathway.Stream != recommendedStream {
			continue
		}

		count := 0
		for _, skill := range pathway.SkillsRequired {
			skillLower := strings.ToLower(skill)
			for _, interest := range profile.Interests {
				if strings.Contains(skillLower, strings.ToLower(interest)) {
					count++
					break
				}
			}
		}

		score := 0.0
		if len(pathway.SkillsRequired) > 0 {
			score = float64(count) / float64(len(pathway.SkillsRequired))
		}

		matches = append(matches, models.CareerMatch{
			CareerPathway: pathway,
			MatchScore:    score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if len(matches) > maxRecommendations {
		matches = matches[:maxRecommendations]
	}
	return matches
}

// RecommendColleges returns colleges in the user's state or city, falling
// back to the first three catalog entries when nothing is local.
func (e *RecommendationEngine) RecommendColleges(profile models.UserProfile) []models.College {
	all := e.catalog.Colleges()

	relevant := make([]models.College, 0)
	for _, college := range all {
		if college.Location.State == profile.Location.State ||
			college.Location.City == profile.Location.City {
			relevant = append(relevant, college)
		}
	}

	if len(relevant) == 0 {
		if len(all) > maxRecommendations {
			all = all[:maxRecommendations]
		}
		relevant = all
	}

	return relevant
}

// Recommend dispatches a request to the recommender for its type and wraps
// the result with reasoning, a confidence score and a timestamp.
func (e *RecommendationEngine) Recommend(req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	profile := req.UserProfile

	// Always a non-nil slice so an empty result serializes as [] not null.
	recommendations := make([]any, 0, maxRecommendations)
	var reasoning string

	switch req.RecommendationType {
	case models.RecommendationTypeStream:
		for _, r := range e.RecommendStreams(profile) {
			recommendations = append(recommendations, r)
		}
		reasoning = fmt.Sprintf("Based on your interests and class level (%s), we recommend these streams.", profile.ClassLevel)

	case models.RecommendationTypeCareer:
		for _, r := range e.RecommendCareers(profile) {
			recommendations = append(recommendations, r)
		}
		reasoning = "Based on your profile and interests, these career paths align with your strengths."

	case models.RecommendationTypeCollege:
		for _, r := range e.RecommendColleges(profile) {
			recommendations = append(recommendations, r)
		}
		reasoning = "Based on your location and academic profile, these colleges are suitable for you."

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRecommendationType, req.RecommendationType)
	}

	confidence := confidenceNoResults
	if len(recommendations) > 0 {
		confidence = confidenceWithResults
	}

	e.logger.Info("recommendations generated",
		zap.String("user_id", profile.UserID),
		zap.String("type", string(req.RecommendationType)),
		zap.Int("count", len(recommendations)),
		zap.Float64("confidence", confidence),
	)

	return &models.RecommendationResponse{
		ID:              uuid.NewString(),
		Recommendations: recommendations,
		ConfidenceScore: confidence,
		Reasoning:       reasoning,
		GeneratedAt:     time.Now(),
	}, nil
}
