package entity

// Classification thresholds for per-category averages. Categories between the
// two bounds are neutral and appear in neither list.
const (
	StrengthThreshold    = 80.0
	ImprovementThreshold = 60.0
)

// PerformanceSummary is the derived view of one student's results.
type PerformanceSummary struct {
	TotalTests          int                `json:"total_tests"`
	AverageScore        float64            `json:"average_score"`
	TestsByCategory     map[string]int     `json:"tests_by_category"`
	CategoryAverages    map[string]float64 `json:"category_averages"`
	PerformanceTrend    []int              `json:"performance_trend"`
	Strengths           []string           `json:"strengths"`
	AreasForImprovement []string           `json:"areas_for_improvement"`
}

// EmptySummary returns the zero-valued summary for students with no results.
func EmptySummary() PerformanceSummary {
	return PerformanceSummary{
		TestsByCategory:     map[string]int{},
		CategoryAverages:    map[string]float64{},
		PerformanceTrend:    []int{},
		Strengths:           []string{},
		AreasForImprovement: []string{},
	}
}

// CategoryStat aggregates results sharing a topic category.
type CategoryStat struct {
	Category     string  `json:"category"`
	AverageScore float64 `json:"avg_score"`
	TestCount    int     `json:"test_count"`
}

// DifficultyStat aggregates results by the owning topic's difficulty level.
type DifficultyStat struct {
	Difficulty   Difficulty `json:"difficulty"`
	AverageScore float64    `json:"avg_score"`
	TestCount    int        `json:"test_count"`
}

// StudentStat summarises one student's activity for the master overview.
type StudentStat struct {
	StudentID    string  `json:"student_id"`
	TotalTests   int     `json:"total_tests"`
	AverageScore float64 `json:"avg_score"`
	BestScore    int     `json:"best_score"`
}

// Overview is the cross-student analytics view shown to the master.
type Overview struct {
	CategoryPerformance   []CategoryStat   `json:"category_performance"`
	DifficultyPerformance []DifficultyStat `json:"difficulty_performance"`
	StudentSummary        []StudentStat    `json:"student_summary"`
}
