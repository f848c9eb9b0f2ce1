package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduniti/ai-engine/internal/catalog"
	"github.com/eduniti/ai-engine/internal/logger"
	"github.com/eduniti/ai-engine/internal/models"
)

func createTestEngine(t *testing.T) *RecommendationEngine {
	t.Helper()
	return NewRecommendationEngine(catalog.New(), NewInterestAnalyzer(), logger.NewTestLogger(t))
}

func createProfile(interests []string, state, city string) models.UserProfile {
	return models.UserProfile{
		UserID:     "user-123",
		FirstName:  "Asha",
		LastName:   "Verma",
		ClassLevel: "10",
		Location:   models.Location{State: state, City: city},
		Interests:  interests,
	}
}

func TestRecommendStreams(t *testing.T) {
	engine := createTestEngine(t)

	tests := []struct {
		name      string
		interests []string
		topStream string
	}{
		{
			// technical scores from "mathematics"; science and engineering
			// tie and science wins by enumeration order.
			name:      "mathematics and physics pick science first",
			interests: []string{"mathematics", "physics"},
			topStream: "science",
		},
		{
			name:      "creative interests pick arts",
			interests: []string{"music", "painting art", "design"},
			topStream: "arts",
		},
		{
			name:      "no interests still ranks three streams",
			interests: nil,
			topStream: "science",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := engine.RecommendStreams(createProfile(tt.interests, "Delhi", "New Delhi"))

			require.Len(t, recs, 3, "always exactly three stream recommendations")
			assert.Equal(t, tt.topStream, recs[0].Stream)

			for i := 1; i < len(recs); i++ {
				assert.GreaterOrEqual(t, recs[i-1].ConfidenceScore, recs[i].ConfidenceScore,
					"scores must be non-increasing")
			}
			for _, r := range recs {
				assert.NotEmpty(t, r.Reasoning)
			}
		})
	}
}

func TestRecommendStreams_ReasoningNamesInterests(t *testing.T) {
	engine := createTestEngine(t)

	recs := engine.RecommendStreams(createProfile([]string{"mathematics", "physics", "music", "cricket"}, "", ""))

	require.Len(t, recs, 3)
	// Only the first three interests appear in the reasoning text.
	assert.Contains(t, recs[0].Reasoning, "mathematics, physics, music")
	assert.NotContains(t, recs[0].Reasoning, "cricket")
}

func TestRecommendCareers(t *testing.T) {
	engine := createTestEngine(t)

	t.Run("returns at most three with bounded scores", func(t *testing.T) {
		matches := engine.RecommendCareers(createProfile([]string{"programming", "statistics"}, "", ""))

		assert.LessOrEqual(t, len(matches), 3)
		require.NotEmpty(t, matches)
		for _, m := range matches {
			assert.GreaterOrEqual(t, m.MatchScore, 0.0)
			assert.LessOrEqual(t, m.MatchScore, 1.0)
		}
	})

	t.Run("pathways filtered by top stream", func(t *testing.T) {
		// "programming" scores science and engineering equally; science wins
		// the tie, so only science pathways may appear.
		matches := engine.RecommendCareers(createProfile([]string{"programming"}, "", ""))

		require.NotEmpty(t, matches)
		for _, m := range matches {
			assert.Equal(t, "science", m.Stream)
		}
		assert.Equal(t, "Data Scientist", matches[0].Title)
	})

	t.Run("sorted non-increasing by match score", func(t *testing.T) {
		matches := engine.RecommendCareers(createProfile([]string{"hands-on", "mechanical", "mathematics"}, "", ""))

		for i := 1; i < len(matches); i++ {
			assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
		}
	})
}

func TestRecommendColleges(t *testing.T) {
	engine := createTestEngine(t)

	tests := []struct {
		name          string
		state         string
		city          string
		expectedNames []string
	}{
		{
			name:          "state match returns all local colleges",
			state:         "Delhi",
			city:          "Gurgaon",
			expectedNames: []string{"Delhi University", "IIT Delhi"},
		},
		{
			name:          "city match alone is enough",
			state:         "Haryana",
			city:          "New Delhi",
			expectedNames: []string{"Delhi University", "IIT Delhi"},
		},
		{
			name:  "no match falls back to the first catalog entries",
			state: "Kerala",
			city:  "Kochi",
			// Catalog has two entries, both under the fallback cap of three.
			expectedNames: []string{"Delhi University", "IIT Delhi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			colleges := engine.RecommendColleges(createProfile(nil, tt.state, tt.city))

			require.Len(t, colleges, len(tt.expectedNames))
			for i, name := range tt.expectedNames {
				assert.Equal(t, name, colleges[i].Name)
			}
		})
	}
}

func TestRecommend_Dispatch(t *testing.T) {
	engine := createTestEngine(t)

	t.Run("stream type", func(t *testing.T) {
		resp, err := engine.Recommend(models.RecommendationRequest{
			UserProfile:        createProfile([]string{"mathematics", "physics"}, "Delhi", "New Delhi"),
			RecommendationType: models.RecommendationTypeStream,
		})

		require.NoError(t, err)
		require.Len(t, resp.Recommendations, 3)
		top, ok := resp.Recommendations[0].(models.StreamRecommendation)
		require.True(t, ok)
		assert.Equal(t, "science", top.Stream)
		assert.Equal(t, 0.8, resp.ConfidenceScore)
		assert.Contains(t, resp.Reasoning, "class level (10)")
		assert.NotEmpty(t, resp.ID)
		assert.False(t, resp.GeneratedAt.IsZero())
	})

	t.Run("career type", func(t *testing.T) {
		resp, err := engine.Recommend(models.RecommendationRequest{
			UserProfile:        createProfile([]string{"programming"}, "", ""),
			RecommendationType: models.RecommendationTypeCareer,
		})

		require.NoError(t, err)
		require.NotEmpty(t, resp.Recommendations)
		assert.Equal(t, 0.8, resp.ConfidenceScore)
	})

	t.Run("college type includes both Delhi colleges", func(t *testing.T) {
		resp, err := engine.Recommend(models.RecommendationRequest{
			UserProfile:        createProfile(nil, "Delhi", "New Delhi"),
			RecommendationType: models.RecommendationTypeCollege,
		})

		require.NoError(t, err)
		require.Len(t, resp.Recommendations, 2)
	})

	t.Run("scholarship type is rejected", func(t *testing.T) {
		resp, err := engine.Recommend(models.RecommendationRequest{
			UserProfile:        createProfile(nil, "", ""),
			RecommendationType: models.RecommendationTypeScholarship,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidRecommendationType)
		assert.Nil(t, resp)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := engine.Recommend(models.RecommendationRequest{
			UserProfile:        createProfile(nil, "", ""),
			RecommendationType: "horoscope",
		})

		assert.ErrorIs(t, err, ErrInvalidRecommendationType)
	})
}

func TestRecommend_Idempotent(t *testing.T) {
	engine := createTestEngine(t)
	req := models.RecommendationRequest{
		UserProfile:        createProfile([]string{"mathematics", "research"}, "Delhi", "New Delhi"),
		RecommendationType: models.RecommendationTypeStream,
	}

	first, err := engine.Recommend(req)
	require.NoError(t, err)
	second, err := engine.Recommend(req)
	require.NoError(t, err)

	// Same payload yields the same ranking and confidence; only the
	// response id and timestamp differ.
	assert.Equal(t, first.Recommendations, second.Recommendations)
	assert.Equal(t, first.ConfidenceScore, second.ConfidenceScore)
	assert.Equal(t, first.Reasoning, second.Reasoning)
	assert.NotEqual(t, first.ID, second.ID)
}
