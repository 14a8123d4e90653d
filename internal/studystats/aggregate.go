// Package studystats turns a user's ended study sessions into the summary,
// pie-chart, trend and detail structures the dashboard charts consume. Like
// recommend, it is pure over already-loaded data.
package studystats

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"campuspulse-backend/internal/models"
)

const (
	// A pie chart with more than 8 slices is unreadable; everything past
	// the top 7 groups is merged into one bucket.
	chartSliceCap = 8
	detailCap     = 10
	trendDays     = 7

	noteLabelMax  = 30
	noteLabelTrim = 27

	labelDeletedTask = "deleted task"
	labelFreeStudy   = "free study"
	labelUnnamed     = "unnamed study"
	labelOtherTasks  = "other tasks"
	labelNoData      = "no study data yet"

	// Placeholder slice value so an empty pie still renders as a full
	// circle, same trick the chart widget expects.
	placeholderValue = 100
)

type Summary struct {
	TotalStudy   int     `json:"total_study"`
	WeekStudy    int     `json:"week_study"`
	TodayStudy   int     `json:"today_study"`
	AvgFocus     float64 `json:"avg_focus"`
	SessionCount int     `json:"session_count"`
	TaskCount    int     `json:"task_count"`
}

type ChartSlice struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

type TrendPoint struct {
	Date     string `json:"date"`
	Duration int    `json:"duration"`
}

type TaskDetail struct {
	Task       string  `json:"task"`
	Duration   int     `json:"duration"`
	Percentage float64 `json:"percentage"`
}

type Report struct {
	Stats   Summary      `json:"stats"`
	Chart   []ChartSlice `json:"chart"`
	Trend   []TrendPoint `json:"trend"`
	Details []TaskDetail `json:"details"`
}

// Aggregate summarizes ended sessions. tasksByID is the user's current task
// set; sessions referencing a task missing from it are grouped under
// "deleted task". now anchors the today/week/trend windows so tests stay
// deterministic.
func Aggregate(sessions []models.StudySession, tasksByID map[uuid.UUID]models.Task, now time.Time) Report {
	report := Report{
		Trend: dailyTrend(sessions, now),
	}
	report.Stats.SessionCount = len(sessions)

	// Group durations by resolved task name; zero-duration sessions count
	// toward session_count only.
	totals := make(map[string]int)
	var order []string
	for _, s := range sessions {
		if s.DurationMinutes <= 0 {
			continue
		}
		name := resolveTaskName(s, tasksByID)
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += s.DurationMinutes
	}

	if len(totals) == 0 {
		report.Chart = []ChartSlice{{Label: labelNoData, Minutes: placeholderValue}}
		return report
	}

	groups := make([]ChartSlice, 0, len(totals))
	for _, name := range order {
		groups = append(groups, ChartSlice{Label: name, Minutes: totals[name]})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Minutes > groups[j].Minutes
	})

	total := 0
	for _, g := range groups {
		total += g.Minutes
	}

	report.Chart = capSlices(groups)
	report.Stats.TotalStudy = total
	report.Stats.TaskCount = len(groups)
	report.Stats.WeekStudy = sumSince(sessions, now.Add(-trendDays*24*time.Hour))
	report.Stats.TodayStudy = sumOnDay(sessions, now)
	report.Stats.AvgFocus = averageFocus(sessions)

	detailCount := len(groups)
	if detailCount > detailCap {
		detailCount = detailCap
	}
	report.Details = make([]TaskDetail, 0, detailCount)
	for _, g := range groups[:detailCount] {
		report.Details = append(report.Details, TaskDetail{
			Task:       g.Label,
			Duration:   g.Minutes,
			Percentage: percentage(g.Minutes, total),
		})
	}

	return report
}

func resolveTaskName(s models.StudySession, tasksByID map[uuid.UUID]models.Task) string {
	var name string
	switch {
	case s.TaskID != nil:
		if task, ok := tasksByID[*s.TaskID]; ok {
			name = task.Title
		} else {
			name = labelDeletedTask
		}
	case strings.TrimSpace(s.Note) != "":
		name = strings.TrimSpace(s.Note)
		// Character counts, not bytes, so multi-byte notes are never
		// cut mid-rune.
		if runes := []rune(name); len(runes) > noteLabelMax {
			name = string(runes[:noteLabelTrim]) + "..."
		}
	default:
		name = labelFreeStudy
	}

	if strings.TrimSpace(name) == "" {
		return labelUnnamed
	}
	return name
}

func capSlices(groups []ChartSlice) []ChartSlice {
	if len(groups) <= chartSliceCap {
		chart := make([]ChartSlice, len(groups))
		copy(chart, groups)
		return chart
	}

	chart := make([]ChartSlice, 0, chartSliceCap)
	chart = append(chart, groups[:chartSliceCap-1]...)

	other := 0
	for _, g := range groups[chartSliceCap-1:] {
		other += g.Minutes
	}
	return append(chart, ChartSlice{Label: labelOtherTasks, Minutes: other})
}

func dailyTrend(sessions []models.StudySession, now time.Time) []TrendPoint {
	trend := make([]TrendPoint, 0, trendDays)
	for i := trendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		trend = append(trend, TrendPoint{
			Date:     day.Format("01-02"),
			Duration: sumOnDay(sessions, day),
		})
	}
	return trend
}

func sumSince(sessions []models.StudySession, cutoff time.Time) int {
	total := 0
	for _, s := range sessions {
		if !s.StartTime.Before(cutoff) {
			total += s.DurationMinutes
		}
	}
	return total
}

func sumOnDay(sessions []models.StudySession, day time.Time) int {
	y, m, d := day.Date()
	total := 0
	for _, s := range sessions {
		sy, sm, sd := s.StartTime.Date()
		if sy == y && sm == m && sd == d {
			total += s.DurationMinutes
		}
	}
	return total
}

func averageFocus(sessions []models.StudySession) float64 {
	sum, count := 0, 0
	for _, s := range sessions {
		if s.FocusScore > 0 {
			sum += s.FocusScore
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}

func percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}
