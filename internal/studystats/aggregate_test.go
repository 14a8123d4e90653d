package studystats

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"campuspulse-backend/internal/models"
)

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func endedSession(taskID *uuid.UUID, start time.Time, minutes, focus int, note string) models.StudySession {
	end := start.Add(time.Duration(minutes) * time.Minute)
	return models.StudySession{
		ID:              uuid.New(),
		TaskID:          taskID,
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: minutes,
		FocusScore:      focus,
		Note:            note,
	}
}

func TestAggregate_NoSessions(t *testing.T) {
	report := Aggregate(nil, nil, testNow)

	if report.Stats.TotalStudy != 0 || report.Stats.WeekStudy != 0 || report.Stats.TodayStudy != 0 {
		t.Errorf("Expected zeroed summary, got %+v", report.Stats)
	}
	if report.Stats.AvgFocus != 0 {
		t.Errorf("Expected avg_focus 0, got %v", report.Stats.AvgFocus)
	}
	if len(report.Chart) != 1 || report.Chart[0].Label != "no study data yet" {
		t.Fatalf("Expected single placeholder slice, got %+v", report.Chart)
	}
	if len(report.Trend) != 7 {
		t.Errorf("Expected 7 trend entries even with no data, got %d", len(report.Trend))
	}
	for _, p := range report.Trend {
		if p.Duration != 0 {
			t.Errorf("Expected zero-filled trend, got %+v", p)
		}
	}
}

func TestAggregate_AllZeroDurations(t *testing.T) {
	sessions := []models.StudySession{
		endedSession(nil, testNow, 0, 3, ""),
		endedSession(nil, testNow, 0, 4, ""),
	}

	report := Aggregate(sessions, nil, testNow)

	if report.Stats.SessionCount != 2 {
		t.Errorf("Expected session_count 2, got %d", report.Stats.SessionCount)
	}
	if report.Stats.TaskCount != 0 || report.Stats.TotalStudy != 0 {
		t.Errorf("Expected no task groups, got %+v", report.Stats)
	}
	if len(report.Chart) != 1 || report.Chart[0].Label != "no study data yet" {
		t.Errorf("Expected placeholder chart, got %+v", report.Chart)
	}
}

// Mirrors the documented worked example: durations [30,45,0,20] on tasks
// [A, A, B, deleted] all today.
func TestAggregate_WorkedExample(t *testing.T) {
	taskA := models.Task{ID: uuid.New(), Title: "A"}
	taskB := models.Task{ID: uuid.New(), Title: "B"}
	deletedID := uuid.New()
	tasksByID := map[uuid.UUID]models.Task{taskA.ID: taskA, taskB.ID: taskB}

	sessions := []models.StudySession{
		endedSession(&taskA.ID, testNow.Add(-4*time.Hour), 30, 4, ""),
		endedSession(&taskA.ID, testNow.Add(-3*time.Hour), 45, 5, ""),
		endedSession(&taskB.ID, testNow.Add(-2*time.Hour), 0, 3, ""),
		endedSession(&deletedID, testNow.Add(-1*time.Hour), 20, 3, ""),
	}

	report := Aggregate(sessions, tasksByID, testNow)

	if report.Stats.TotalStudy != 95 {
		t.Errorf("Expected total_study 95, got %d", report.Stats.TotalStudy)
	}
	if report.Stats.TodayStudy != 95 {
		t.Errorf("Expected today_study 95, got %d", report.Stats.TodayStudy)
	}
	if report.Stats.SessionCount != 4 {
		t.Errorf("Expected session_count 4, got %d", report.Stats.SessionCount)
	}

	byLabel := make(map[string]int)
	for _, slice := range report.Chart {
		byLabel[slice.Label] = slice.Minutes
	}
	if byLabel["A"] != 75 {
		t.Errorf("Expected task A total 75, got %d", byLabel["A"])
	}
	if _, ok := byLabel["B"]; ok {
		t.Errorf("Zero-duration task B must be excluded from the chart")
	}
	if byLabel["deleted task"] != 20 {
		t.Errorf("Expected deleted-task bucket of 20, got %d", byLabel["deleted task"])
	}
}

func TestAggregate_ChartSumEqualsTotal(t *testing.T) {
	var sessions []models.StudySession
	tasksByID := make(map[uuid.UUID]models.Task)
	for i := 0; i < 12; i++ {
		task := models.Task{ID: uuid.New(), Title: fmt.Sprintf("task %d", i)}
		tasksByID[task.ID] = task
		sessions = append(sessions, endedSession(&task.ID, testNow.Add(-time.Duration(i)*time.Hour), (i+1)*7, 3, ""))
	}

	report := Aggregate(sessions, tasksByID, testNow)

	sum := 0
	for _, slice := range report.Chart {
		sum += slice.Minutes
	}
	if sum != report.Stats.TotalStudy {
		t.Errorf("Chart sum %d != total_study %d", sum, report.Stats.TotalStudy)
	}
}

func TestAggregate_CapsChartAtEightSlices(t *testing.T) {
	var sessions []models.StudySession
	tasksByID := make(map[uuid.UUID]models.Task)
	for i := 0; i < 12; i++ {
		task := models.Task{ID: uuid.New(), Title: fmt.Sprintf("task %d", i)}
		tasksByID[task.ID] = task
		// Descending durations so task 0 is the largest group.
		sessions = append(sessions, endedSession(&task.ID, testNow, (12-i)*10, 3, ""))
	}

	report := Aggregate(sessions, tasksByID, testNow)

	if len(report.Chart) != 8 {
		t.Fatalf("Expected 8 chart slices, got %d", len(report.Chart))
	}
	last := report.Chart[7]
	if last.Label != "other tasks" {
		t.Errorf("Expected final slice 'other tasks', got %q", last.Label)
	}
	// Groups 8..12 have durations 50+40+30+20+10.
	if last.Minutes != 150 {
		t.Errorf("Expected other-tasks bucket of 150, got %d", last.Minutes)
	}
	if report.Stats.TaskCount != 12 {
		t.Errorf("Expected task_count 12 (pre-merge groups), got %d", report.Stats.TaskCount)
	}
}

func TestResolveTaskName(t *testing.T) {
	task := models.Task{ID: uuid.New(), Title: "Linear Algebra"}
	tasksByID := map[uuid.UUID]models.Task{task.ID: task}
	deletedID := uuid.New()
	longNote := strings.Repeat("x", 40)
	mixedNote := strings.Repeat("a", 26) + "学习复习五"
	cjkNote := "一二三四五六七八九十一"

	tests := []struct {
		name     string
		session  models.StudySession
		expected string
	}{
		{"existing task title", models.StudySession{TaskID: &task.ID}, "Linear Algebra"},
		{"deleted task", models.StudySession{TaskID: &deletedID}, "deleted task"},
		{"note label", models.StudySession{Note: "exam prep"}, "exam prep"},
		{"long note truncated", models.StudySession{Note: longNote}, longNote[:27] + "..."},
		{"mixed-script note cut on character boundary", models.StudySession{Note: mixedNote}, strings.Repeat("a", 26) + "学..."},
		{"short multi-byte note passes through", models.StudySession{Note: cjkNote}, cjkNote},
		{"blank note falls back", models.StudySession{Note: "   "}, "free study"},
		{"no task no note", models.StudySession{}, "free study"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveTaskName(tc.session, tasksByID); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestResolveTaskName_BlankResolvedName(t *testing.T) {
	blank := models.Task{ID: uuid.New(), Title: "   "}
	tasksByID := map[uuid.UUID]models.Task{blank.ID: blank}

	if got := resolveTaskName(models.StudySession{TaskID: &blank.ID}, tasksByID); got != "unnamed study" {
		t.Errorf("Expected 'unnamed study' for blank title, got %q", got)
	}
}

func TestAggregate_WeekAndTodayWindows(t *testing.T) {
	taskID := uuid.New()
	tasksByID := map[uuid.UUID]models.Task{taskID: {ID: taskID, Title: "reading"}}

	sessions := []models.StudySession{
		endedSession(&taskID, testNow.Add(-2*time.Hour), 30, 3, ""),           // today
		endedSession(&taskID, testNow.AddDate(0, 0, -3), 40, 3, ""),           // this week
		endedSession(&taskID, testNow.AddDate(0, 0, -10), 60, 3, ""),          // older
		endedSession(&taskID, testNow.Add(-7*24*time.Hour).Add(time.Minute), 15, 3, ""), // window edge
	}

	report := Aggregate(sessions, tasksByID, testNow)

	if report.Stats.TotalStudy != 145 {
		t.Errorf("Expected total 145, got %d", report.Stats.TotalStudy)
	}
	if report.Stats.WeekStudy != 85 {
		t.Errorf("Expected week 85, got %d", report.Stats.WeekStudy)
	}
	if report.Stats.TodayStudy != 30 {
		t.Errorf("Expected today 30, got %d", report.Stats.TodayStudy)
	}
}

func TestAggregate_TrendOldestFirst(t *testing.T) {
	taskID := uuid.New()
	tasksByID := map[uuid.UUID]models.Task{taskID: {ID: taskID, Title: "notes"}}

	sessions := []models.StudySession{
		endedSession(&taskID, testNow.AddDate(0, 0, -6), 25, 3, ""),
		endedSession(&taskID, testNow, 10, 3, ""),
	}

	report := Aggregate(sessions, tasksByID, testNow)

	if len(report.Trend) != 7 {
		t.Fatalf("Expected 7 trend points, got %d", len(report.Trend))
	}
	if report.Trend[0].Duration != 25 {
		t.Errorf("Expected oldest day first with 25 minutes, got %+v", report.Trend[0])
	}
	if report.Trend[6].Duration != 10 {
		t.Errorf("Expected today last with 10 minutes, got %+v", report.Trend[6])
	}
	if report.Trend[6].Date != testNow.Format("01-02") {
		t.Errorf("Expected today's label %q, got %q", testNow.Format("01-02"), report.Trend[6].Date)
	}
	for i, p := range report.Trend[1:6] {
		if p.Duration != 0 {
			t.Errorf("Expected empty middle day %d, got %+v", i+1, p)
		}
	}
}

func TestAggregate_AvgFocusRounding(t *testing.T) {
	taskID := uuid.New()
	tasksByID := map[uuid.UUID]models.Task{taskID: {ID: taskID, Title: "drill"}}

	sessions := []models.StudySession{
		endedSession(&taskID, testNow, 10, 4, ""),
		endedSession(&taskID, testNow, 10, 5, ""),
		endedSession(&taskID, testNow, 10, 5, ""),
		endedSession(&taskID, testNow, 10, 0, ""), // unscored, excluded
	}

	report := Aggregate(sessions, tasksByID, testNow)

	if report.Stats.AvgFocus != 4.7 {
		t.Errorf("Expected avg_focus 4.7, got %v", report.Stats.AvgFocus)
	}
}

func TestAggregate_DetailPercentages(t *testing.T) {
	taskA := models.Task{ID: uuid.New(), Title: "A"}
	taskB := models.Task{ID: uuid.New(), Title: "B"}
	tasksByID := map[uuid.UUID]models.Task{taskA.ID: taskA, taskB.ID: taskB}

	sessions := []models.StudySession{
		endedSession(&taskA.ID, testNow, 75, 3, ""),
		endedSession(&taskB.ID, testNow, 25, 3, ""),
	}

	report := Aggregate(sessions, tasksByID, testNow)

	if len(report.Details) != 2 {
		t.Fatalf("Expected 2 detail rows, got %d", len(report.Details))
	}
	if report.Details[0].Task != "A" || report.Details[0].Percentage != 75.0 {
		t.Errorf("Expected A at 75%%, got %+v", report.Details[0])
	}
	if report.Details[1].Task != "B" || report.Details[1].Percentage != 25.0 {
		t.Errorf("Expected B at 25%%, got %+v", report.Details[1])
	}
}
