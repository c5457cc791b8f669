package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"finsight/internal/config"
	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAnalysisType marks an unsupported trend analysis selector.
	ErrInvalidAnalysisType = errors.New("invalid analysis type")
)

// seasonOrder fixes the seasonal bucket order regardless of which season the
// date range starts in.
var seasonOrder = []string{"Spring", "Summer", "Fall", "Winter"}

type trendService struct {
	engineConfig *config.EngineConfig
}

// NewTrendService creates the trend analyzer. Only completed expense
// transactions inside the requested date range take part in any analysis.
func NewTrendService(engineConfig *config.EngineConfig) TrendServiceInterface {
	return &trendService{engineConfig: engineConfig}
}

func (s *trendService) AnalyzeTrends(transactions []models.Transaction, analysisType models.AnalysisType, dateRange models.DateRange) (*models.TrendResult, error) {
	if !models.IsValidAnalysisType(analysisType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAnalysisType, analysisType)
	}

	expenses := s.filterExpenses(transactions, dateRange)

	result := &models.TrendResult{Type: analysisType}
	switch analysisType {
	case models.AnalysisMonthly:
		result.Points = s.bucketByPeriod(expenses, monthKey)
		result.Insights = s.periodInsights(result.Points, "month")
	case models.AnalysisWeekly:
		result.Points = s.bucketByPeriod(expenses, weekKey)
		result.Insights = s.periodInsights(result.Points, "week")
	case models.AnalysisDaily:
		result.Points = s.bucketByPeriod(expenses, dayKey)
		result.Insights = s.periodInsights(result.Points, "day")
	case models.AnalysisCategory:
		result.Points = s.bucketByCategory(expenses)
		result.Insights = s.categoryInsights(result.Points)
	case models.AnalysisSeasonal:
		result.Points = s.bucketBySeason(expenses)
		result.Insights = s.seasonalInsights(result.Points)
	case models.AnalysisAnomaly:
		result.Points = s.detectAnomalies(expenses)
		result.Insights = s.anomalyInsights(result.Points)
	}

	return result, nil
}

func (s *trendService) filterExpenses(transactions []models.Transaction, dateRange models.DateRange) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.IsCompleted() && txn.IsExpense() && dateRange.Contains(txn.Date) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

type bucketTotal struct {
	amount decimal.Decimal
	count  int
}

// bucketByPeriod groups expenses by the key function and returns points in
// chronological order with period-over-period percent change. The change is
// nil when the previous bucket was zero so the series never carries Inf.
func (s *trendService) bucketByPeriod(expenses []models.Transaction, key func(time.Time) string) []models.TrendPoint {
	buckets := make(map[string]*bucketTotal)
	for _, txn := range expenses {
		period := key(txn.Date)
		bucket, ok := buckets[period]
		if !ok {
			bucket = &bucketTotal{}
			buckets[period] = bucket
		}
		bucket.amount = bucket.amount.Add(txn.Amount)
		bucket.count++
	}

	periods := make([]string, 0, len(buckets))
	for period := range buckets {
		periods = append(periods, period)
	}
	sort.Strings(periods)

	points := make([]models.TrendPoint, 0, len(periods))
	for i, period := range periods {
		bucket := buckets[period]
		point := models.TrendPoint{
			Period:           period,
			Amount:           models.RoundMoney(bucket.amount),
			TransactionCount: bucket.count,
		}
		if i > 0 {
			point.PercentChange = percentChange(points[i-1].Amount, point.Amount)
		}
		points = append(points, point)
	}
	return points
}

// bucketByCategory returns per-category totals sorted by amount descending,
// with the category name as tiebreaker so equal amounts order stably.
func (s *trendService) bucketByCategory(expenses []models.Transaction) []models.TrendPoint {
	buckets := make(map[string]*bucketTotal)
	for _, txn := range expenses {
		bucket, ok := buckets[txn.Category]
		if !ok {
			bucket = &bucketTotal{}
			buckets[txn.Category] = bucket
		}
		bucket.amount = bucket.amount.Add(txn.Amount)
		bucket.count++
	}

	points := make([]models.TrendPoint, 0, len(buckets))
	for category, bucket := range buckets {
		points = append(points, models.TrendPoint{
			Period:           category,
			Amount:           models.RoundMoney(bucket.amount),
			TransactionCount: bucket.count,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if !points[i].Amount.Equal(points[j].Amount) {
			return points[i].Amount.GreaterThan(points[j].Amount)
		}
		return points[i].Period < points[j].Period
	})
	return points
}

// bucketBySeason groups expenses into the four meteorological seasons, always
// emitted in Spring/Summer/Fall/Winter order. Seasons with no spending are
// included at zero so the comparison is complete.
func (s *trendService) bucketBySeason(expenses []models.Transaction) []models.TrendPoint {
	buckets := make(map[string]*bucketTotal, len(seasonOrder))
	for _, season := range seasonOrder {
		buckets[season] = &bucketTotal{}
	}
	for _, txn := range expenses {
		bucket := buckets[seasonOf(txn.Date.Month())]
		bucket.amount = bucket.amount.Add(txn.Amount)
		bucket.count++
	}

	points := make([]models.TrendPoint, 0, len(seasonOrder))
	for _, season := range seasonOrder {
		bucket := buckets[season]
		points = append(points, models.TrendPoint{
			Period:           season,
			Amount:           models.RoundMoney(bucket.amount),
			TransactionCount: bucket.count,
		})
	}
	return points
}

// detectAnomalies flags days whose spending exceeds mean + k*stddev over the
// days that had any spending at all. The comparison is strict, so a flat
// series (stddev zero) never flags anything. Fewer than two spending days is
// not enough signal to call anything unusual.
func (s *trendService) detectAnomalies(expenses []models.Transaction) []models.TrendPoint {
	days := s.bucketByPeriod(expenses, dayKey)
	if len(days) < 2 {
		return nil
	}

	values := make([]float64, len(days))
	for i, day := range days {
		values[i] = day.Amount.InexactFloat64()
	}
	mean, stddev := meanStdDev(values)
	threshold := mean + s.engineConfig.AnomalyStdDevMultiplier*stddev

	anomalies := make([]models.TrendPoint, 0)
	for i, day := range days {
		if values[i] > threshold {
			day.Anomaly = true
			day.PercentChange = nil
			anomalies = append(anomalies, day)
		}
	}
	sort.Slice(anomalies, func(i, j int) bool {
		if !anomalies[i].Amount.Equal(anomalies[j].Amount) {
			return anomalies[i].Amount.GreaterThan(anomalies[j].Amount)
		}
		return anomalies[i].Period < anomalies[j].Period
	})
	return anomalies
}

func (s *trendService) periodInsights(points []models.TrendPoint, unit string) []string {
	if len(points) == 0 {
		return []string{"No spending recorded in this period."}
	}

	insights := make([]string, 0, 2)

	highest := points[0]
	for _, point := range points[1:] {
		if point.Amount.GreaterThan(highest.Amount) {
			highest = point
		}
	}
	insights = append(insights, fmt.Sprintf("Highest spending %s: %s ($%s).", unit, highest.Period, highest.Amount.StringFixed(2)))

	if len(points) > 1 {
		first, last := points[0].Amount, points[len(points)-1].Amount
		switch {
		case first.IsZero():
			// No baseline to compare against.
		case last.GreaterThan(first):
			insights = append(insights, fmt.Sprintf("Spending is trending up: from $%s to $%s per %s.", first.StringFixed(2), last.StringFixed(2), unit))
		case last.LessThan(first):
			insights = append(insights, fmt.Sprintf("Spending is trending down: from $%s to $%s per %s.", first.StringFixed(2), last.StringFixed(2), unit))
		default:
			insights = append(insights, fmt.Sprintf("Spending is holding steady at $%s per %s.", last.StringFixed(2), unit))
		}
	}

	return insights
}

func (s *trendService) categoryInsights(points []models.TrendPoint) []string {
	if len(points) == 0 {
		return []string{"No categorized spending recorded in this period."}
	}
	top := points[0]
	insights := []string{
		fmt.Sprintf("Top spending category: %s ($%s across %d transactions).", top.Period, top.Amount.StringFixed(2), top.TransactionCount),
	}
	if len(points) > 1 {
		insights = append(insights, fmt.Sprintf("Spending spread across %d categories.", len(points)))
	}
	return insights
}

func (s *trendService) seasonalInsights(points []models.TrendPoint) []string {
	highest := points[0]
	for _, point := range points[1:] {
		if point.Amount.GreaterThan(highest.Amount) {
			highest = point
		}
	}
	if highest.Amount.IsZero() {
		return []string{"No spending recorded in any season."}
	}
	return []string{
		fmt.Sprintf("%s is your highest-spending season ($%s).", highest.Period, highest.Amount.StringFixed(2)),
	}
}

func (s *trendService) anomalyInsights(points []models.TrendPoint) []string {
	if len(points) == 0 {
		return []string{"No unusual spending days detected."}
	}
	top := points[0]
	return []string{
		fmt.Sprintf("%d unusual spending day(s) detected.", len(points)),
		fmt.Sprintf("Largest spike: $%s on %s.", top.Amount.StringFixed(2), top.Period),
	}
}

func monthKey(d time.Time) string { return d.Format("2006-01") }

func dayKey(d time.Time) string { return d.Format(models.DateLayout) }

// weekKey maps a date to the Monday that starts its week.
func weekKey(d time.Time) string {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset).Format(models.DateLayout)
}

func seasonOf(m time.Month) string {
	switch m {
	case time.March, time.April, time.May:
		return "Spring"
	case time.June, time.July, time.August:
		return "Summer"
	case time.September, time.October, time.November:
		return "Fall"
	default:
		return "Winter"
	}
}

// percentChange returns the period-over-period change in percent, or nil
// when the previous amount was zero.
func percentChange(prev, current decimal.Decimal) *float64 {
	if prev.IsZero() {
		return nil
	}
	change := current.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	return &change
}

// meanStdDev computes the population mean and standard deviation.
func meanStdDev(values []float64) (float64, float64) {
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
