package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"finsight/internal/config"
	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

var decimalHundred = decimal.NewFromInt(100)

// narrativeService asks a language model to phrase the computed numbers as
// short dashboard insights. The model only ever rewords figures the engine
// already computed; it never produces numbers of its own.
type narrativeService struct {
	client          *genai.Client
	narrativeConfig *config.NarrativeConfig
}

// NewNarrativeService creates the model-backed insight generator. When the
// feature is disabled, the rule-based generator is returned instead so
// callers never need a nil check.
func NewNarrativeService(ctx context.Context, narrativeConfig *config.NarrativeConfig) (NarrativeGeneratorInterface, error) {
	if !narrativeConfig.Enabled {
		return NewRuleBasedNarrativeService(), nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create narrative client: %w", err)
	}

	return &narrativeService{
		client:          client,
		narrativeConfig: narrativeConfig,
	}, nil
}

// GenerateInsights returns two to four short sentences about the summary.
// Any model failure, including malformed output, is returned as an error;
// callers fall back to rule-based insights and the request still succeeds.
func (s *narrativeService) GenerateInsights(ctx context.Context, summary *models.MetricsSummary, trend *models.TrendResult) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.narrativeConfig.Timeout)
	defer cancel()

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: s.buildPrompt(summary, trend)},
			},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.narrativeConfig.Model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("narrative generation failed: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("narrative generation returned empty response")
	}

	var insights []string
	if err := json.Unmarshal([]byte(cleanModelJSON(rawText)), &insights); err != nil {
		return nil, fmt.Errorf("narrative response is not a JSON string array: %w", err)
	}
	if len(insights) == 0 {
		return nil, fmt.Errorf("narrative response contained no insights")
	}

	return insights, nil
}

func (s *narrativeService) buildPrompt(summary *models.MetricsSummary, trend *models.TrendResult) string {
	var b strings.Builder
	b.WriteString("You are a personal finance assistant. Write 2 to 4 short, friendly insight sentences about the figures below.\n")
	b.WriteString("Use ONLY the numbers given; do not invent or recalculate anything.\n")
	b.WriteString("Output STRICT JSON only: a JSON array of strings, no Markdown, no code fences.\n\n")

	fmt.Fprintf(&b, "Net worth: $%s\n", summary.NetWorth.StringFixed(2))
	fmt.Fprintf(&b, "Total assets: $%s\n", summary.TotalAssets.StringFixed(2))
	fmt.Fprintf(&b, "Total liabilities: $%s\n", summary.TotalLiabilities.StringFixed(2))
	fmt.Fprintf(&b, "Monthly income: $%s\n", summary.MonthlyIncome.StringFixed(2))
	fmt.Fprintf(&b, "Monthly expenses: $%s\n", summary.MonthlyExpenses.StringFixed(2))
	fmt.Fprintf(&b, "Monthly cash flow: $%s\n", summary.MonthlyCashFlow.StringFixed(2))

	if trend != nil && len(trend.Insights) > 0 {
		b.WriteString("\nSpending observations:\n")
		for _, insight := range trend.Insights {
			fmt.Fprintf(&b, "- %s\n", insight)
		}
	}

	return b.String()
}

// cleanModelJSON strips Markdown fences and surrounding junk the model may
// emit despite instructions, keeping the outermost JSON array.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "["); start != -1 {
		if end := strings.LastIndex(s, "]"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}

// ruleBasedNarrativeService is the deterministic fallback. It is also the
// full generator when the model integration is disabled.
type ruleBasedNarrativeService struct{}

func NewRuleBasedNarrativeService() NarrativeGeneratorInterface {
	return &ruleBasedNarrativeService{}
}

func (s *ruleBasedNarrativeService) GenerateInsights(_ context.Context, summary *models.MetricsSummary, trend *models.TrendResult) ([]string, error) {
	return RuleBasedInsights(summary, trend), nil
}

// RuleBasedInsights builds deterministic insight sentences from the summary
// and trend figures. The same inputs always produce the same sentences.
func RuleBasedInsights(summary *models.MetricsSummary, trend *models.TrendResult) []string {
	insights := make([]string, 0, 4)

	if summary != nil {
		if summary.Status == models.MetricsStatusNoData {
			return []string{"Link an account or add a manual asset to see your financial picture."}
		}

		insights = append(insights, fmt.Sprintf("Your net worth is $%s.", summary.NetWorth.StringFixed(2)))

		switch {
		case summary.MonthlyCashFlow.IsPositive():
			insights = append(insights, fmt.Sprintf("You saved $%s over the last 30 days.", summary.MonthlyCashFlow.StringFixed(2)))
		case summary.MonthlyCashFlow.IsNegative():
			insights = append(insights, fmt.Sprintf("You spent $%s more than you earned over the last 30 days.", summary.MonthlyCashFlow.Abs().StringFixed(2)))
		}

		if summary.TotalLiabilities.IsPositive() && summary.TotalAssets.IsPositive() {
			ratio := summary.TotalLiabilities.Div(summary.TotalAssets).Mul(decimalHundred).Round(0)
			insights = append(insights, fmt.Sprintf("Your debts are %s%% of your assets.", ratio.String()))
		}
	}

	if trend != nil {
		insights = append(insights, trend.Insights...)
	}

	if len(insights) == 0 {
		insights = append(insights, "Not enough data yet for insights.")
	}
	return insights
}
