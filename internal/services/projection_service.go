package services

import (
	"fmt"
	"math"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// projectionLookback is how many trailing points the extrapolation uses.
const projectionLookback = 3

type projectionService struct{}

// NewProjectionService creates the forward estimator. The projection is a
// deliberately simple recent-average-plus-momentum extrapolation; it is a
// hint for the dashboard, not a forecast model.
func NewProjectionService() ProjectionServiceInterface {
	return &projectionService{}
}

// Project extrapolates the next period from the trailing points: the average
// of the last three plus the average period-over-period delta, floored at
// zero. Confidence shrinks as the recent deltas get noisier relative to the
// average level. Fewer than two points is not projectable.
func (s *projectionService) Project(points []models.TrendPoint, analysisType models.AnalysisType) *models.Projection {
	if len(points) < 2 {
		projection := &models.Projection{
			NextPeriod: decimal.Zero,
			Confidence: 0,
			Factors:    []string{"Not enough history to project."},
			BasedOn:    len(points),
		}
		if len(points) == 1 {
			projection.NextPeriod = points[0].Amount
		}
		return projection
	}

	recent := points
	if len(recent) > projectionLookback {
		recent = recent[len(recent)-projectionLookback:]
	}

	var sum decimal.Decimal
	for _, point := range recent {
		sum = sum.Add(point.Amount)
	}
	average := sum.Div(decimal.NewFromInt(int64(len(recent))))

	deltas := make([]float64, 0, len(recent)-1)
	var deltaSum decimal.Decimal
	for i := 1; i < len(recent); i++ {
		delta := recent[i].Amount.Sub(recent[i-1].Amount)
		deltaSum = deltaSum.Add(delta)
		deltas = append(deltas, delta.InexactFloat64())
	}
	averageDelta := deltaSum.Div(decimal.NewFromInt(int64(len(deltas))))

	next := average.Add(averageDelta)
	if next.IsNegative() {
		next = decimal.Zero
	}

	return &models.Projection{
		NextPeriod: models.RoundMoney(next),
		Confidence: s.confidence(average, deltas),
		Factors:    s.factors(averageDelta, analysisType),
		BasedOn:    len(recent),
	}
}

// confidence maps delta volatility to an integer in [0,100]. A flat series
// scores 100; deltas swinging as large as the average level itself score 0.
func (s *projectionService) confidence(average decimal.Decimal, deltas []float64) int {
	if average.IsZero() {
		return 0
	}

	_, stddev := meanStdDev(deltas)
	ratio := stddev / math.Abs(average.InexactFloat64())
	confidence := int(math.Round(100 * (1 - ratio)))
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

func (s *projectionService) factors(averageDelta decimal.Decimal, analysisType models.AnalysisType) []string {
	unit := "period"
	switch analysisType {
	case models.AnalysisMonthly:
		unit = "month"
	case models.AnalysisWeekly:
		unit = "week"
	case models.AnalysisDaily:
		unit = "day"
	}

	switch {
	case averageDelta.IsPositive():
		return []string{fmt.Sprintf("Spending has been rising by $%s per %s on average.", models.RoundMoney(averageDelta).StringFixed(2), unit)}
	case averageDelta.IsNegative():
		return []string{fmt.Sprintf("Spending has been falling by $%s per %s on average.", models.RoundMoney(averageDelta.Abs()).StringFixed(2), unit)}
	default:
		return []string{fmt.Sprintf("Spending has been flat %s over %s.", unit, unit)}
	}
}
