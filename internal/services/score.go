// Package services содержит доменные сервисы сравнительного анализа курсов:
// расчет матчинг-оценки, анализ тональности отзывов, симуляцию таймлайна,
// подбор похожих курсов и оркестрацию сравнения.
package services

import (
	"math"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
)

// maxRating — максимальное значение по каждой оси оценки.
const maxRating = 5.0

// ScoreService вычисляет, насколько курс соответствует предпочтениям пользователя.
// Оценка курса и предпочтения рассматриваются как точки в четырехмерном
// пространстве осей theory / practical / difficulty / duration,
// расстояние между ними переводится в оценку 0-100.
type ScoreService struct{}

// NewScoreService создает новый экземпляр ScoreService.
// Сервис не имеет состояния, один экземпляр можно переиспользовать.
func NewScoreService() *ScoreService {
	return &ScoreService{}
}

// CalculateMatchScore вычисляет матчинг-оценку курса по евклидову расстоянию.
// Полное совпадение векторов дает 100.0, максимальное расхождение
// по всем четырем осям (разница 5 на каждой) дает 0.0.
// Результат ограничен диапазоном [0, 100] и округлен до одного знака.
func (s *ScoreService) CalculateMatchScore(aiReview *models.CourseAIReview, prefs models.UserPreferences) float64 {
	// Пары (оценка курса, предпочтение пользователя) по четырем осям.
	// Отсутствующая оценка (nil review) трактуется как 0 по всем осям.
	var ratings [4]float64
	if aiReview != nil {
		ratings = [4]float64{
			aiReview.TheoryRating,
			aiReview.PracticalRating,
			aiReview.DifficultyRating,
			aiReview.DurationRating,
		}
	}
	preferences := [4]float64{
		float64(prefs.Theory),
		float64(prefs.Practical),
		float64(prefs.Difficulty),
		float64(prefs.Duration),
	}

	// 1. Сумма квадратов разностей по осям
	sumOfSquares := 0.0
	for i := range ratings {
		diff := ratings[i] - preferences[i]
		sumOfSquares += diff * diff
	}

	// 2. Евклидово расстояние в четырехмерном пространстве
	distance := math.Sqrt(sumOfSquares)

	// 3. Максимально возможное расстояние: sqrt(4 * 5^2) = 10
	maxDistance := math.Sqrt(float64(len(ratings)) * maxRating * maxRating)
	if maxDistance == 0 {
		return 0.0
	}

	// 4. Перевод расстояния в оценку и ограничение диапазона
	score := 100 * (1 - distance/maxDistance)
	score = math.Max(0.0, math.Min(100.0, score))

	return roundTo(score, 1)
}

// roundTo округляет x до заданного числа знаков после запятой.
func roundTo(x float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(x*pow) / pow
}
