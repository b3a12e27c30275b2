package domain

import "fmt"

// CompanyImpact is the expected effect of a news item on one company.
type CompanyImpact struct {
	ID          int64      `json:"id"`
	CompanyName string     `json:"companyName"`
	StockSymbol string     `json:"stockSymbol,omitempty"`
	ImpactType  ImpactType `json:"impactType"`
	ImpactScore Score      `json:"impactScore"`
}

// IndustryImpact is the expected effect on an industry together with the
// affected companies, in server order.
type IndustryImpact struct {
	ID             int64           `json:"id"`
	IndustryName   string          `json:"industryName"`
	ImpactType     ImpactType      `json:"impactType"`
	ImpactScore    Score           `json:"impactScore"`
	CompanyImpacts []CompanyImpact `json:"companyImpacts"`
}

// NewsAnalysis is the AI-generated analysis of a single news item.
type NewsAnalysis struct {
	ID              int64            `json:"id"`
	News            News             `json:"news"`
	AnalysisContent string           `json:"analysisContent"`
	IndustryImpacts []IndustryImpact `json:"industryImpacts"`
	AnalyzedAt      DateTime         `json:"analyzedAt"`
}

// Validate checks every enum and score reachable from the analysis.
func (a NewsAnalysis) Validate() error {
	for i, ind := range a.IndustryImpacts {
		path := fmt.Sprintf("industryImpacts[%d]", i)
		if !ind.ImpactType.Valid() {
			return invalidf("%s: impact type %q", path, ind.ImpactType)
		}
		if err := checkScore(path, ind.ImpactScore); err != nil {
			return err
		}
		for j, c := range ind.CompanyImpacts {
			cpath := fmt.Sprintf("%s.companyImpacts[%d]", path, j)
			if !c.ImpactType.Valid() {
				return invalidf("%s: impact type %q", cpath, c.ImpactType)
			}
			if err := checkScore(cpath, c.ImpactScore); err != nil {
				return err
			}
		}
	}
	return nil
}
