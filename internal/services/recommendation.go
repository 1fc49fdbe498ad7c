package services

import (
	"context"
	"log"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
)

// Параметры kNN подбора похожих курсов.
const (
	knnCandidates      = 5 // Запрашиваем с запасом: сам курс попадает в своих соседей
	maxRecommendations = 4 // Максимум курсов в ответе
)

// CourseStore описывает доступ к авторитетным записям курсов и их AI-оценкам.
type CourseStore interface {
	GetCourse(ctx context.Context, id int) (*models.Course, error)
	GetCoursesByIDs(ctx context.Context, ids []int) ([]*models.Course, error)
	GetAIReview(ctx context.Context, courseID int) (*models.CourseAIReview, error)
}

// VectorIndex описывает approximate kNN поиск по embedding векторам курсов.
type VectorIndex interface {
	KNNSearchCourseIDs(ctx context.Context, embedding []float64, k int) ([]int, error)
}

// RecommendationService подбирает похожие курсы через kNN поиск
// по векторному индексу.
//
// Рекомендации — best-effort: любой сбой индекса, отсутствие embedding
// или самого курса превращаются в пустой список, а не в ошибку.
// Блок рекомендаций не должен ронять страницу курса.
type RecommendationService struct {
	courses CourseStore
	index   VectorIndex
}

// NewRecommendationService создает новый экземпляр RecommendationService.
func NewRecommendationService(courses CourseStore, index VectorIndex) *RecommendationService {
	return &RecommendationService{
		courses: courses,
		index:   index,
	}
}

// RecommendSimilarCourses возвращает до четырех курсов, похожих на заданный,
// в порядке убывания похожести. Сам курс из результата исключается.
// Возвращаемый срез всегда не nil.
func (s *RecommendationService) RecommendSimilarCourses(ctx context.Context, courseID int) []models.Course {
	empty := []models.Course{}

	// 1. Embedding берем из авторитетной записи курса
	course, err := s.courses.GetCourse(ctx, courseID)
	if err != nil {
		log.Printf("Recommendations unavailable for course %d: %v", courseID, err)
		return empty
	}
	if len(course.Embedding) == 0 {
		// Курс без embedding — просто нет рекомендаций
		return empty
	}

	// 2. kNN запрос к векторному индексу
	hitIDs, err := s.index.KNNSearchCourseIDs(ctx, course.Embedding, knnCandidates)
	if err != nil {
		log.Printf("Recommendations unavailable for course %d: %v", courseID, err)
		return empty
	}

	// 3. Отфильтровываем сам курс, ограничиваем размер
	ids := make([]int, 0, maxRecommendations)
	for _, id := range hitIDs {
		if id == courseID {
			continue
		}
		ids = append(ids, id)
		if len(ids) == maxRecommendations {
			break
		}
	}
	if len(ids) == 0 {
		return empty
	}

	// 4. Батчевая выборка из PostgreSQL
	fetched, err := s.courses.GetCoursesByIDs(ctx, ids)
	if err != nil {
		log.Printf("Recommendations unavailable for course %d: %v", courseID, err)
		return empty
	}

	// 5. Восстанавливаем порядок похожести: выборка из БД его не сохраняет
	byID := make(map[int]*models.Course, len(fetched))
	for _, c := range fetched {
		byID[c.ID] = c
	}

	ordered := make([]models.Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			ordered = append(ordered, *c)
		}
	}

	return ordered
}
