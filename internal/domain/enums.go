package domain

import "fmt"

// ImpactType is the direction of an impact on an industry or company.
type ImpactType string

const (
	ImpactPositive ImpactType = "POSITIVE"
	ImpactNegative ImpactType = "NEGATIVE"
	ImpactNeutral  ImpactType = "NEUTRAL"
)

// Valid reports whether t is one of the known impact directions.
func (t ImpactType) Valid() bool {
	switch t {
	case ImpactPositive, ImpactNegative, ImpactNeutral:
		return true
	}
	return false
}

// UnmarshalText rejects unknown impact directions.
func (t *ImpactType) UnmarshalText(b []byte) error {
	v := ImpactType(b)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown impact type %q", ErrInvalid, string(b))
	}
	*t = v
	return nil
}

// RecommendationType is the suggested action for an investment.
type RecommendationType string

const (
	RecommendBuy  RecommendationType = "BUY"
	RecommendSell RecommendationType = "SELL"
	RecommendHold RecommendationType = "HOLD"
)

// Valid reports whether t is one of the known actions.
func (t RecommendationType) Valid() bool {
	switch t {
	case RecommendBuy, RecommendSell, RecommendHold:
		return true
	}
	return false
}

// UnmarshalText rejects unknown actions.
func (t *RecommendationType) UnmarshalText(b []byte) error {
	v := RecommendationType(b)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown recommendation type %q", ErrInvalid, string(b))
	}
	*t = v
	return nil
}

// Sentiment is the overall market sentiment of a daily recommendation.
type Sentiment string

const (
	SentimentBullish Sentiment = "BULLISH"
	SentimentBearish Sentiment = "BEARISH"
	SentimentNeutral Sentiment = "NEUTRAL"
)

// Valid reports whether s is one of the known sentiments.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentBullish, SentimentBearish, SentimentNeutral:
		return true
	}
	return false
}

// UnmarshalText rejects unknown sentiments.
func (s *Sentiment) UnmarshalText(b []byte) error {
	v := Sentiment(b)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown sentiment %q", ErrInvalid, string(b))
	}
	*s = v
	return nil
}
