package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
)

// fakeReviewStore отдает заранее заданные тексты отзывов.
type fakeReviewStore struct {
	texts    map[int][]string
	countErr error
	fetchErr error
}

func (f *fakeReviewStore) CountReviewTexts(_ context.Context, courseID int) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.texts[courseID]), nil
}

func (f *fakeReviewStore) GetReviewTexts(_ context.Context, courseID int) ([]string, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.texts[courseID], nil
}

// fakeClassifier помечает тексты с подстрокой "good" как позитивные
// и считает количество вызовов.
type fakeClassifier struct {
	calls int
	err   error
}

func (f *fakeClassifier) AnalyzeBatch(texts []string) ([]models.SentimentPrediction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	predictions := make([]models.SentimentPrediction, len(texts))
	for i, text := range texts {
		label := LabelNegative
		if strings.Contains(text, "good") {
			label = LabelPositive
		}
		predictions[i] = models.SentimentPrediction{Label: label, Score: 0.9}
	}
	return predictions, nil
}

func reviewTexts(positive, negative int) []string {
	texts := make([]string, 0, positive+negative)
	for i := 0; i < positive; i++ {
		texts = append(texts, "good course")
	}
	for i := 0; i < negative; i++ {
		texts = append(texts, "boring course")
	}
	return texts
}

func TestAnalyzeCourseReviews(t *testing.T) {
	tests := []struct {
		name      string
		positive  int
		negative  int
		want      models.SentimentResult
		wantCalls int
	}{
		{
			// Без отзывов модель не вызывается вовсе
			name:     "no reviews returns default without inference",
			positive: 0, negative: 0,
			want:      models.SentimentResult{PositiveRatio: 0.0, ReviewCount: 0, Reliability: ReliabilityLow},
			wantCalls: 0,
		},
		{
			name:     "12 reviews with 9 positive",
			positive: 9, negative: 3,
			want:      models.SentimentResult{PositiveRatio: 75.0, ReviewCount: 12, Reliability: ReliabilityHigh},
			wantCalls: 1,
		},
		{
			// Граница надежности: 9 отзывов еще low
			name:     "nine reviews are low reliability",
			positive: 5, negative: 4,
			want:      models.SentimentResult{PositiveRatio: 55.6, ReviewCount: 9, Reliability: ReliabilityLow},
			wantCalls: 1,
		},
		{
			// Граница надежности: 10 отзывов уже high
			name:     "ten reviews are high reliability",
			positive: 10, negative: 0,
			want:      models.SentimentResult{PositiveRatio: 100.0, ReviewCount: 10, Reliability: ReliabilityHigh},
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeReviewStore{texts: map[int][]string{
				1: reviewTexts(tt.positive, tt.negative),
			}}
			classifier := &fakeClassifier{}
			service := NewSentimentService(store, classifier)

			got, err := service.AnalyzeCourseReviews(context.Background(), 1)
			if err != nil {
				t.Fatalf("AnalyzeCourseReviews() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AnalyzeCourseReviews() = %+v, want %+v", got, tt.want)
			}
			if classifier.calls != tt.wantCalls {
				t.Errorf("classifier calls = %d, want %d", classifier.calls, tt.wantCalls)
			}
		})
	}
}

func TestAnalyzeCourseReviewsErrors(t *testing.T) {
	storeErr := errors.New("db down")
	inferErr := errors.New("model unavailable")

	t.Run("count error propagates", func(t *testing.T) {
		store := &fakeReviewStore{countErr: storeErr}
		service := NewSentimentService(store, &fakeClassifier{})

		if _, err := service.AnalyzeCourseReviews(context.Background(), 1); !errors.Is(err, storeErr) {
			t.Errorf("error = %v, want wrapped %v", err, storeErr)
		}
	})

	t.Run("inference error propagates instead of default", func(t *testing.T) {
		// Отзывы есть, но модель недоступна: это сбой, а не отсутствие данных
		store := &fakeReviewStore{texts: map[int][]string{1: reviewTexts(3, 0)}}
		service := NewSentimentService(store, &fakeClassifier{err: inferErr})

		if _, err := service.AnalyzeCourseReviews(context.Background(), 1); !errors.Is(err, inferErr) {
			t.Errorf("error = %v, want wrapped %v", err, inferErr)
		}
	})
}
