package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
	"github.com/akozadaev/go_course_comparison_system/internal/storage"
)

// fakeCourseStore хранит курсы и AI-оценки в памяти.
type fakeCourseStore struct {
	courses   map[int]*models.Course
	aiReviews map[int]*models.CourseAIReview
	batchErr  error
}

func (f *fakeCourseStore) GetCourse(_ context.Context, id int) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, fmt.Errorf("course %d: %w", id, storage.ErrNotFound)
	}
	clone := *course
	return &clone, nil
}

func (f *fakeCourseStore) GetCoursesByIDs(_ context.Context, ids []int) ([]*models.Course, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	// Возвращаем в обратном порядке: выборка из БД порядок не обещает
	var result []*models.Course
	for i := len(ids) - 1; i >= 0; i-- {
		if course, ok := f.courses[ids[i]]; ok {
			clone := *course
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (f *fakeCourseStore) GetAIReview(_ context.Context, courseID int) (*models.CourseAIReview, error) {
	review, ok := f.aiReviews[courseID]
	if !ok {
		return nil, fmt.Errorf("ai review for course %d: %w", courseID, storage.ErrNotFound)
	}
	return review, nil
}

// fakeVectorIndex возвращает заранее заданные ID или ошибку.
type fakeVectorIndex struct {
	ids    []int
	err    error
	called bool
}

func (f *fakeVectorIndex) KNNSearchCourseIDs(_ context.Context, _ []float64, _ int) ([]int, error) {
	f.called = true
	return f.ids, f.err
}

func storeWithCourses(ids ...int) *fakeCourseStore {
	store := &fakeCourseStore{courses: map[int]*models.Course{}}
	for _, id := range ids {
		store.courses[id] = &models.Course{
			ID:        id,
			Name:      fmt.Sprintf("Course %d", id),
			Embedding: []float64{0.1, 0.2, 0.3},
		}
	}
	return store
}

func resultIDs(courses []models.Course) []int {
	ids := make([]int, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}

func TestRecommendSimilarCourses(t *testing.T) {
	t.Run("filters query course and keeps similarity order", func(t *testing.T) {
		store := storeWithCourses(1, 2, 3, 4, 5)
		index := &fakeVectorIndex{ids: []int{1, 4, 2, 5, 3}}
		service := NewRecommendationService(store, index)

		got := service.RecommendSimilarCourses(context.Background(), 1)

		want := []int{4, 2, 5, 3}
		gotIDs := resultIDs(got)
		if len(gotIDs) != len(want) {
			t.Fatalf("got %v, want %v", gotIDs, want)
		}
		for i := range want {
			if gotIDs[i] != want[i] {
				t.Fatalf("got %v, want %v", gotIDs, want)
			}
		}
	})

	t.Run("caps result at four courses", func(t *testing.T) {
		store := storeWithCourses(1, 2, 3, 4, 5, 6)
		index := &fakeVectorIndex{ids: []int{2, 3, 4, 5, 6}}
		service := NewRecommendationService(store, index)

		got := service.RecommendSimilarCourses(context.Background(), 1)

		if len(got) != 4 {
			t.Fatalf("len = %d, want 4", len(got))
		}
	})

	t.Run("drops ids missing in the course store", func(t *testing.T) {
		store := storeWithCourses(1, 2, 5)
		index := &fakeVectorIndex{ids: []int{2, 3, 5}}
		service := NewRecommendationService(store, index)

		got := resultIDs(service.RecommendSimilarCourses(context.Background(), 1))

		if len(got) != 2 || got[0] != 2 || got[1] != 5 {
			t.Fatalf("got %v, want [2 5]", got)
		}
	})

	t.Run("index failure degrades to empty list", func(t *testing.T) {
		store := storeWithCourses(1, 2)
		index := &fakeVectorIndex{err: errors.New("connection refused")}
		service := NewRecommendationService(store, index)

		got := service.RecommendSimilarCourses(context.Background(), 1)

		if got == nil || len(got) != 0 {
			t.Fatalf("got %v, want empty non-nil slice", got)
		}
	})

	t.Run("course without embedding has no recommendations", func(t *testing.T) {
		store := storeWithCourses(1)
		store.courses[1].Embedding = nil
		index := &fakeVectorIndex{ids: []int{2, 3}}
		service := NewRecommendationService(store, index)

		got := service.RecommendSimilarCourses(context.Background(), 1)

		if len(got) != 0 {
			t.Fatalf("got %v, want empty", got)
		}
		if index.called {
			t.Error("index must not be queried without an embedding")
		}
	})

	t.Run("unknown course yields empty list", func(t *testing.T) {
		store := storeWithCourses(1)
		index := &fakeVectorIndex{ids: []int{1}}
		service := NewRecommendationService(store, index)

		got := service.RecommendSimilarCourses(context.Background(), 42)

		if len(got) != 0 {
			t.Fatalf("got %v, want empty", got)
		}
	})

	t.Run("batch fetch failure degrades to empty list", func(t *testing.T) {
		store := storeWithCourses(1, 2)
		store.batchErr = errors.New("db down")
		index := &fakeVectorIndex{ids: []int{2}}
		service := NewRecommendationService(store, index)

		got := service.RecommendSimilarCourses(context.Background(), 1)

		if len(got) != 0 {
			t.Fatalf("got %v, want empty", got)
		}
	})
}
