package services

import (
	"testing"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
)

func TestCalculateMatchScore(t *testing.T) {
	service := NewScoreService()

	tests := []struct {
		name     string
		aiReview *models.CourseAIReview
		prefs    models.UserPreferences
		expected float64
	}{
		{
			name: "identical vectors give 100",
			aiReview: &models.CourseAIReview{
				TheoryRating: 3, PracticalRating: 3, DifficultyRating: 3, DurationRating: 3,
			},
			prefs:    models.UserPreferences{Theory: 3, Practical: 3, Difficulty: 3, Duration: 3},
			expected: 100.0,
		},
		{
			name: "maximal divergence on all axes gives 0",
			aiReview: &models.CourseAIReview{
				TheoryRating: 5, PracticalRating: 5, DifficultyRating: 5, DurationRating: 5,
			},
			prefs:    models.UserPreferences{Theory: 0, Practical: 0, Difficulty: 0, Duration: 0},
			expected: 0.0,
		},
		{
			// distance = 5, maxDistance = 10 => 100 * (1 - 0.5) = 50
			name: "single axis off by five gives 50",
			aiReview: &models.CourseAIReview{
				TheoryRating: 0, PracticalRating: 0, DifficultyRating: 0, DurationRating: 0,
			},
			prefs:    models.UserPreferences{Theory: 5, Practical: 0, Difficulty: 0, Duration: 0},
			expected: 50.0,
		},
		{
			// distance = 1 => 100 * (1 - 0.1) = 90
			name: "single axis off by one gives 90",
			aiReview: &models.CourseAIReview{
				TheoryRating: 4, PracticalRating: 3, DifficultyRating: 2, DurationRating: 5,
			},
			prefs:    models.UserPreferences{Theory: 5, Practical: 3, Difficulty: 2, Duration: 5},
			expected: 90.0,
		},
		{
			// Отсутствующая оценка трактуется как нулевой вектор
			name:     "nil review defaults to zero vector",
			aiReview: nil,
			prefs:    models.UserPreferences{Theory: 5, Practical: 0, Difficulty: 0, Duration: 0},
			expected: 50.0,
		},
		{
			// distance = sqrt(1+4+1+0.25) = 2.5 => 75.0
			name: "fractional ratings are rounded to one decimal",
			aiReview: &models.CourseAIReview{
				TheoryRating: 4, PracticalRating: 2, DifficultyRating: 3, DurationRating: 4.5,
			},
			prefs:    models.UserPreferences{Theory: 5, Practical: 4, Difficulty: 2, Duration: 4},
			expected: 75.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.CalculateMatchScore(tt.aiReview, tt.prefs)
			if got != tt.expected {
				t.Errorf("CalculateMatchScore() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCalculateMatchScoreBounds(t *testing.T) {
	service := NewScoreService()

	// Любая комбинация входов остается в диапазоне [0, 100]
	for theory := 0; theory <= 5; theory++ {
		for duration := 0; duration <= 5; duration++ {
			review := &models.CourseAIReview{
				TheoryRating:   float64(theory),
				DurationRating: float64(duration),
			}
			prefs := models.UserPreferences{Theory: 5 - theory, Duration: 5 - duration}

			score := service.CalculateMatchScore(review, prefs)
			if score < 0 || score > 100 {
				t.Fatalf("score %v out of range for theory=%d duration=%d", score, theory, duration)
			}
		}
	}
}
