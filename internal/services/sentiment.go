package services

import (
	"context"
	"fmt"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
)

// Политика надежности оценки тональности.
const (
	reliabilityThreshold = 10 // Минимум отзывов для высокой надежности (включительно)
	ReliabilityHigh      = "high"
	ReliabilityLow       = "low"
)

// ReviewStore описывает двухфазный доступ к текстам отзывов:
// сначала дешевый COUNT, затем — только при необходимости — полная выборка.
type ReviewStore interface {
	CountReviewTexts(ctx context.Context, courseID int) (int, error)
	GetReviewTexts(ctx context.Context, courseID int) ([]string, error)
}

// SentimentService агрегирует тональность отзывов курса в сервисные метрики:
// долю позитивных отзывов, их количество и надежность оценки.
// Инференс делегируется классификатору, загрузка модели — его забота.
type SentimentService struct {
	reviews   ReviewStore
	processor Classifier
}

// NewSentimentService создает новый экземпляр SentimentService.
func NewSentimentService(reviews ReviewStore, processor Classifier) *SentimentService {
	return &SentimentService{
		reviews:   reviews,
		processor: processor,
	}
}

// AnalyzeCourseReviews анализирует тональность отзывов курса.
//
// При нуле отзывов возвращается дефолтный результат без обращения к модели:
// отсутствие данных — не ошибка. Сбой классификатора при имеющихся отзывах,
// наоборот, пробрасывается наверх — молчаливая подмена дефолтом исказила бы
// реальные, но не проанализированные данные.
func (s *SentimentService) AnalyzeCourseReviews(ctx context.Context, courseID int) (models.SentimentResult, error) {
	// 1. Количество отзывов с непустым текстом (только COUNT запрос)
	reviewCount, err := s.reviews.CountReviewTexts(ctx, courseID)
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("failed to count reviews for course %d: %w", courseID, err)
	}

	// 2. Early return: без отзывов не тратим инференс
	if reviewCount == 0 {
		return defaultSentimentResult(), nil
	}

	// 3. Полная выборка текстов и батчевый инференс
	texts, err := s.reviews.GetReviewTexts(ctx, courseID)
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("failed to fetch reviews for course %d: %w", courseID, err)
	}

	predictions, err := s.processor.AnalyzeBatch(texts)
	if err != nil {
		return models.SentimentResult{}, fmt.Errorf("failed to analyze reviews for course %d: %w", courseID, err)
	}

	// 4. Подсчет позитивных меток
	positiveCount := 0
	for _, prediction := range predictions {
		if prediction.Label == LabelPositive {
			positiveCount++
		}
	}

	// 5. Метрики и надежность
	positiveRatio := roundTo(float64(positiveCount)/float64(reviewCount)*100, 1)

	reliability := ReliabilityLow
	if reviewCount >= reliabilityThreshold {
		reliability = ReliabilityHigh
	}

	return models.SentimentResult{
		PositiveRatio: positiveRatio,
		ReviewCount:   reviewCount,
		Reliability:   reliability,
	}, nil
}

// defaultSentimentResult возвращает результат для курса без отзывов.
// Схема ответа та же, что и при наличии данных.
func defaultSentimentResult() models.SentimentResult {
	return models.SentimentResult{
		PositiveRatio: 0.0,
		ReviewCount:   0,
		Reliability:   ReliabilityLow,
	}
}
