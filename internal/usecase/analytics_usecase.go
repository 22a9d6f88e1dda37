package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"

	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/repository"
)

// trendWindow bounds the performance trend to the most recent attempts.
const trendWindow = 10

// AnalyticsUsecase derives performance views from stored results. It keeps no
// state of its own; every call recomputes from the result store.
type AnalyticsUsecase interface {
	// Compute summarises one student's results. A student with no results
	// yields the zero-valued summary, not an error.
	Compute(ctx context.Context, studentID string) (entity.PerformanceSummary, error)
	// Overview aggregates across all students for the master dashboard.
	Overview(ctx context.Context) (entity.Overview, error)
}

// NewAnalyticsUsecase wires the result repository.
func NewAnalyticsUsecase(results repository.ResultRepository) AnalyticsUsecase {
	return &analyticsUsecase{results: results}
}

type analyticsUsecase struct {
	results repository.ResultRepository
}

func (a *analyticsUsecase) Compute(ctx context.Context, studentID string) (entity.PerformanceSummary, error) {
	// Newest first, matching the store's read order.
	results, err := a.results.ListByStudent(ctx, studentID)
	if err != nil {
		return entity.PerformanceSummary{}, err
	}
	if len(results) == 0 {
		return entity.EmptySummary(), nil
	}

	summary := entity.EmptySummary()
	summary.TotalTests = len(results)

	score := func(r *entity.TestResult) int { return r.Score }
	summary.AverageScore = round2(float64(lo.SumBy(results, score)) / float64(len(results)))

	grouped := lo.GroupBy(results, func(r *entity.TestResult) string { return r.CategoryOrDefault() })
	categories := lo.Keys(grouped)
	sort.Strings(categories)

	for _, category := range categories {
		scores := grouped[category]
		mean := float64(lo.SumBy(scores, score)) / float64(len(scores))

		summary.TestsByCategory[category] = len(scores)
		summary.CategoryAverages[category] = round2(mean)

		// Classification uses the unrounded mean: >= 80 is a strength,
		// < 60 needs work, in between is neutral.
		switch {
		case mean >= entity.StrengthThreshold:
			summary.Strengths = append(summary.Strengths, formatCategoryAvg(category, mean))
		case mean < entity.ImprovementThreshold:
			summary.AreasForImprovement = append(summary.AreasForImprovement, formatCategoryAvg(category, mean))
		}
	}

	// Trend: the ten most recent scores, oldest first within the window.
	window := results
	if len(window) > trendWindow {
		window = window[:trendWindow]
	}
	for i := len(window) - 1; i >= 0; i-- {
		summary.PerformanceTrend = append(summary.PerformanceTrend, window[i].Score)
	}

	return summary, nil
}

func (a *analyticsUsecase) Overview(ctx context.Context) (entity.Overview, error) {
	overview := entity.Overview{
		CategoryPerformance:   []entity.CategoryStat{},
		DifficultyPerformance: []entity.DifficultyStat{},
		StudentSummary:        []entity.StudentStat{},
	}

	categories, err := a.results.CategoryStats(ctx)
	if err != nil {
		return overview, err
	}
	for _, stat := range categories {
		stat.AverageScore = round2(stat.AverageScore)
		overview.CategoryPerformance = append(overview.CategoryPerformance, stat)
	}

	difficulties, err := a.results.DifficultyStats(ctx)
	if err != nil {
		return overview, err
	}
	for _, stat := range difficulties {
		stat.AverageScore = round2(stat.AverageScore)
		overview.DifficultyPerformance = append(overview.DifficultyPerformance, stat)
	}

	students, err := a.results.StudentStats(ctx)
	if err != nil {
		return overview, err
	}
	for _, stat := range students {
		stat.AverageScore = round2(stat.AverageScore)
		overview.StudentSummary = append(overview.StudentSummary, stat)
	}

	return overview, nil
}

func formatCategoryAvg(category string, mean float64) string {
	return fmt.Sprintf("%s (avg: %.1f%%)", category, mean)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
