package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
	"github.com/akozadaev/go_course_comparison_system/internal/storage"
)

// ComparisonService оркестрирует сравнительный анализ курсов:
// для каждого курса собирает матчинг-оценку, тональность отзывов
// и симуляцию таймлайна в единый результат.
type ComparisonService struct {
	courses   CourseStore
	score     *ScoreService
	sentiment *SentimentService
	timeline  *TimelineService
}

// NewComparisonService создает новый экземпляр ComparisonService.
func NewComparisonService(courses CourseStore, score *ScoreService, sentiment *SentimentService, timeline *TimelineService) *ComparisonService {
	return &ComparisonService{
		courses:   courses,
		score:     score,
		sentiment: sentiment,
		timeline:  timeline,
	}
}

// Analyze выполняет сравнительный анализ запрошенных курсов.
//
// Дубликаты ID схлопываются с сохранением порядка первого вхождения.
// Расчеты по курсам независимы и выполняются параллельно (не больше трех).
// Результат отсортирован по match_score по убыванию; курсы без AI-оценки
// остаются в ответе без оценки и идут в конце. Сортировка стабильная:
// при равных оценках сохраняется порядок из запроса.
func (s *ComparisonService) Analyze(ctx context.Context, req *models.ComparisonRequest) (*models.ComparisonResponse, error) {
	ids := dedupeCourseIDs(req.CourseIDs)

	results := make([]models.ComparisonResult, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			result, err := s.analyzeCourse(ctx, id, req)
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// nil оценки идут в конец, остальные по убыванию
	sort.SliceStable(results, func(i, j int) bool {
		si, sj := results[i].MatchScore, results[j].MatchScore
		if si == nil {
			return false
		}
		if sj == nil {
			return true
		}
		return *si > *sj
	})

	return &models.ComparisonResponse{Results: results}, nil
}

// analyzeCourse собирает результат анализа одного курса.
func (s *ComparisonService) analyzeCourse(ctx context.Context, courseID int, req *models.ComparisonRequest) (*models.ComparisonResult, error) {
	course, err := s.courses.GetCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load course %d: %w", courseID, err)
	}

	result := models.ComparisonResult{Course: *course}
	// Embedding нужен только рекомендациям, в ответе сравнения он лишний
	result.Course.Embedding = nil

	// Курс без AI-оценки остается в ответе без match_score:
	// нулевой вектор здесь не подставляется.
	aiReview, err := s.courses.GetAIReview(ctx, courseID)
	switch {
	case err == nil:
		result.AIReview = aiReview
		score := s.score.CalculateMatchScore(aiReview, req.UserPreferences)
		result.MatchScore = &score
	case errors.Is(err, storage.ErrNotFound):
		// Оценки еще нет — не ошибка
	default:
		return nil, fmt.Errorf("failed to load ai review for course %d: %w", courseID, err)
	}

	sentiment, err := s.sentiment.AnalyzeCourseReviews(ctx, courseID)
	if err != nil {
		return nil, err
	}
	result.Sentiment = sentiment

	result.Timeline = s.timeline.Simulate(course, req.WeeklyHours)

	return &result, nil
}

// dedupeCourseIDs убирает дубликаты, сохраняя порядок первого вхождения.
func dedupeCourseIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	unique := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
