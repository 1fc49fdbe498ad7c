package services

import (
	"testing"
	"time"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
)

func fixedTimelineService(now time.Time) *TimelineService {
	s := NewTimelineService()
	s.now = func() time.Time { return now }
	return s
}

func TestSimulateStatusBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	service := fixedTimelineService(now)

	tests := []struct {
		name        string
		playtime    float64
		weeks       int
		weeklyHours int
		wantStatus  string
		wantRatio   float64
	}{
		{
			// ratio ровно 0.8 — включительно ok
			name:     "ratio at lower boundary is ok",
			playtime: 8, weeks: 10, weeklyHours: 1,
			wantStatus: TimelineStatusOK, wantRatio: 0.8,
		},
		{
			name:     "ratio below lower boundary is relaxed",
			playtime: 7.9, weeks: 10, weeklyHours: 1,
			wantStatus: TimelineStatusRelaxed, wantRatio: 0.79,
		},
		{
			// ratio ровно 1.2 — включительно ok
			name:     "ratio at upper boundary is ok",
			playtime: 12, weeks: 10, weeklyHours: 1,
			wantStatus: TimelineStatusOK, wantRatio: 1.2,
		},
		{
			// Классификация идет по неокругленному ratio
			name:     "ratio just above upper boundary is tight",
			playtime: 12.001, weeks: 10, weeklyHours: 1,
			wantStatus: TimelineStatusTight, wantRatio: 1.2,
		},
		{
			name:     "comfortable budget is relaxed",
			playtime: 20, weeks: 10, weeklyHours: 10,
			wantStatus: TimelineStatusRelaxed, wantRatio: 0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &models.Course{
				Week:           tt.weeks,
				CoursePlaytime: tt.playtime,
			}

			result := service.Simulate(course, tt.weeklyHours)

			if result.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", result.Status, tt.wantStatus)
			}
			if result.Ratio != tt.wantRatio {
				t.Errorf("Ratio = %v, want %v", result.Ratio, tt.wantRatio)
			}
		})
	}
}

func TestSimulateMissingMetadata(t *testing.T) {
	service := fixedTimelineService(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		playtime float64
		weeks    int
	}{
		{name: "zero weeks", playtime: 20, weeks: 0},
		{name: "zero playtime", playtime: 0, weeks: 10},
		{name: "no metadata at all", playtime: 0, weeks: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course := &models.Course{Week: tt.weeks, CoursePlaytime: tt.playtime}

			result := service.Simulate(course, 10)

			// Статус undetermined, числовые поля нейтральные, схема полная
			want := models.TimelineResult{Status: TimelineStatusUndetermined}
			if result != want {
				t.Errorf("Simulate() = %+v, want %+v", result, want)
			}
		})
	}
}

func TestSimulateStudyEnd(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	service := fixedTimelineService(now)

	t.Run("course already ended is finished", func(t *testing.T) {
		ended := now.Add(-24 * time.Hour)
		course := &models.Course{
			Week:           10,
			CoursePlaytime: 12,
			StudyEnd:       &ended,
		}

		result := service.Simulate(course, 1)

		if result.Status != TimelineStatusFinished {
			t.Errorf("Status = %q, want %q", result.Status, TimelineStatusFinished)
		}
		if result.RemainingWeeks != 0 {
			t.Errorf("RemainingWeeks = %v, want 0", result.RemainingWeeks)
		}
	})

	t.Run("remaining weeks derived from study end", func(t *testing.T) {
		// Ровно три недели до конца обучения
		end := now.Add(3 * 7 * 24 * time.Hour)
		course := &models.Course{
			Week:           10,
			CoursePlaytime: 10,
			StudyEnd:       &end,
		}

		result := service.Simulate(course, 1)

		if result.RemainingWeeks != 3 {
			t.Errorf("RemainingWeeks = %v, want 3", result.RemainingWeeks)
		}
		if result.Status != TimelineStatusOK {
			t.Errorf("Status = %q, want %q", result.Status, TimelineStatusOK)
		}
	})

	t.Run("remaining weeks capped by total weeks", func(t *testing.T) {
		end := now.Add(52 * 7 * 24 * time.Hour)
		course := &models.Course{
			Week:           10,
			CoursePlaytime: 10,
			StudyEnd:       &end,
		}

		result := service.Simulate(course, 1)

		if result.RemainingWeeks != 10 {
			t.Errorf("RemainingWeeks = %v, want 10", result.RemainingWeeks)
		}
	})

	t.Run("no study end uses full course length", func(t *testing.T) {
		course := &models.Course{Week: 8, CoursePlaytime: 16}

		result := service.Simulate(course, 2)

		if result.RemainingWeeks != 8 {
			t.Errorf("RemainingWeeks = %v, want 8", result.RemainingWeeks)
		}
		if result.MinHoursPerWeek != 2 {
			t.Errorf("MinHoursPerWeek = %v, want 2", result.MinHoursPerWeek)
		}
		if result.Status != TimelineStatusOK {
			t.Errorf("Status = %q, want %q", result.Status, TimelineStatusOK)
		}
	})
}
