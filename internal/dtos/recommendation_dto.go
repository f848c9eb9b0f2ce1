package dtos

import "github.com/eduniti/ai-engine/internal/models"

type RecommendationRequest struct {
	UserProfile        models.UserProfile        `json:"user_profile" binding:"required"`
	RecommendationType models.RecommendationType `json:"recommendation_type" binding:"required"`
}

// ToModel converts the wire request into the engine's request type.
func (r *RecommendationRequest) ToModel() models.RecommendationRequest {
	return models.RecommendationRequest{
		UserProfile:        r.UserProfile,
		RecommendationType: r.RecommendationType,
	}
}

type InterestScoresResponse struct {
	InterestScores models.InterestScores `json:"interest_scores"`
}

type CareerPathwaysResponse struct {
	CareerPathways []models.CareerPathway `json:"career_pathways"`
}

type CollegesResponse struct {
	Colleges []models.College `json:"colleges"`
}
