package domain

import "fmt"

// RecommendedInvestment is one suggested position of a daily recommendation.
type RecommendedInvestment struct {
	ID                 int64              `json:"id"`
	IndustryName       string             `json:"industryName"`
	CompanyName        string             `json:"companyName"`
	StockSymbol        string             `json:"stockSymbol,omitempty"`
	RecommendationType RecommendationType `json:"recommendationType"`
	ConfidenceScore    Score              `json:"confidenceScore"`
	Rationale          string             `json:"rationale"`
}

// DailyInvestmentRecommendation is the recommendation synthesized for one day.
type DailyInvestmentRecommendation struct {
	ID                     int64                   `json:"id"`
	Date                   Date                    `json:"date"`
	Summary                string                  `json:"summary"`
	OverallSentiment       Sentiment               `json:"overallSentiment"`
	RecommendedInvestments []RecommendedInvestment `json:"recommendedInvestments"`
}

// Validate checks the sentiment and every investment's action and score.
func (r DailyInvestmentRecommendation) Validate() error {
	if !r.OverallSentiment.Valid() {
		return invalidf("overallSentiment: %q", r.OverallSentiment)
	}
	for i, inv := range r.RecommendedInvestments {
		path := fmt.Sprintf("recommendedInvestments[%d]", i)
		if !inv.RecommendationType.Valid() {
			return invalidf("%s: recommendation type %q", path, inv.RecommendationType)
		}
		if err := checkScore(path, inv.ConfidenceScore); err != nil {
			return err
		}
	}
	return nil
}
