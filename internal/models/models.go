package models

import (
	"time"
)

// RecommendationType selects which recommender handles a request.
type RecommendationType string

const (
	RecommendationTypeStream      RecommendationType = "stream"
	RecommendationTypeCareer      RecommendationType = "career"
	RecommendationTypeCollege     RecommendationType = "college"
	RecommendationTypeScholarship RecommendationType = "scholarship" // accepted on the wire, not implemented
)

// Valid reports whether the type has a recommender behind it.
// Scholarship is part of the request vocabulary but intentionally unsupported.
func (t RecommendationType) Valid() bool {
	switch t {
	case RecommendationTypeStream, RecommendationTypeCareer, RecommendationTypeCollege:
		return true
	}
	return false
}

type QuizResponse struct {
	QuestionID     string `json:"question_id"`
	SelectedAnswer int    `json:"selected_answer"`
	TimeTaken      int    `json:"time_taken"`
	IsCorrect      *bool  `json:"is_correct,omitempty"`
}

type Location struct {
	State string `json:"state"`
	City  string `json:"city"`
}

// UserProfile is the immutable input for a single recommendation request.
type UserProfile struct {
	UserID        string         `json:"user_id"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	ClassLevel    string         `json:"class_level"`
	Stream        string         `json:"stream,omitempty"`
	Location      Location       `json:"location"`
	Interests     []string       `json:"interests"`
	QuizResponses []QuizResponse `json:"quiz_responses"`
}

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// CareerPathway is a static catalog record. Never mutated after startup.
type CareerPathway struct {
	ID                    string      `json:"id"`
	Title                 string      `json:"title"`
	Stream                string      `json:"stream"`
	EducationRequirements []string    `json:"education_requirements"`
	SkillsRequired        []string    `json:"skills_required"`
	JobOpportunities      []string    `json:"job_opportunities"`
	SalaryRange           SalaryRange `json:"salary_range"`
	GrowthProspects       string      `json:"growth_prospects"`
	RelatedExams          []string    `json:"related_exams"`
}

type Fees struct {
	Annual   int    `json:"annual"`
	Currency string `json:"currency"`
}

// College is a static catalog record. Never mutated after startup.
type College struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Location   Location       `json:"location"`
	Programs   []string       `json:"programs"`
	CutOffData map[string]int `json:"cut_off_data"`
	Fees       Fees           `json:"fees"`
	Facilities []string       `json:"facilities"`
}

// InterestScores maps an interest category to a score in [0,1].
type InterestScores map[string]float64

// StreamRecommendation is one ranked stream suggestion.
type StreamRecommendation struct {
	Stream          string  `json:"stream"`
	ConfidenceScore float64 `json:"confidence_score"`
	Reasoning       string  `json:"reasoning"`
}

// CareerMatch is a catalog pathway augmented with how well it fits the user.
type CareerMatch struct {
	CareerPathway
	MatchScore float64 `json:"match_score"`
}

type RecommendationRequest struct {
	UserProfile        UserProfile        `json:"user_profile"`
	RecommendationType RecommendationType `json:"recommendation_type"`
}

// RecommendationResponse wraps a recommender's output. The recommendations
// slice holds StreamRecommendation, CareerMatch or College values depending
// on the request type.
type RecommendationResponse struct {
	ID              string    `json:"id"`
	Recommendations []any     `json:"recommendations"`
	ConfidenceScore float64   `json:"confidence_score"`
	Reasoning       string    `json:"reasoning"`
	GeneratedAt     time.Time `json:"generated_at"`
}
