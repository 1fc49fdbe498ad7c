package services

import (
	"time"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
)

// Статусы симуляции таймлайна.
const (
	TimelineStatusOK           = "ok"           // Нагрузка соответствует бюджету времени
	TimelineStatusRelaxed      = "relaxed"      // Времени с запасом
	TimelineStatusTight        = "tight"        // Времени заметно не хватает
	TimelineStatusFinished     = "finished"     // Курс уже завершился
	TimelineStatusUndetermined = "undetermined" // Недостаточно метаданных для оценки
)

// Пороги классификации по ratio = необходимые часы / доступные часы.
// Граничные значения 0.8 и 1.2 включительно относятся к статусу ok.
const (
	ratioRelaxedBelow = 0.8
	ratioTightAbove   = 1.2
)

const hoursPerWeek = 24 * 7

// TimelineService отвечает на вопрос "успеет ли пользователь пройти курс"
// при заданном бюджете часов в неделю. Чистая арифметика над метаданными
// курса, без обращений к внешним зависимостям.
type TimelineService struct {
	now func() time.Time // Источник текущего времени, подменяется в тестах
}

// NewTimelineService создает новый экземпляр TimelineService.
func NewTimelineService() *TimelineService {
	return &TimelineService{now: time.Now}
}

// Simulate вычисляет таймлайн прохождения курса при weeklyHours часах в неделю.
// Валидация weeklyHours (1-168) выполняется на границе API, здесь значение
// считается корректным.
//
// Классификация:
//   - метаданные длительности отсутствуют -> undetermined, числовые поля нейтральные
//   - курс уже завершился -> finished независимо от ratio
//   - ratio > 1.2 -> tight, ratio < 0.8 -> relaxed, иначе ok
func (s *TimelineService) Simulate(course *models.Course, weeklyHours int) models.TimelineResult {
	// Без недель или без времени материала оценка невозможна.
	// Поля заполняются нулями, чтобы схема ответа оставалась стабильной.
	if course.Week <= 0 || course.CoursePlaytime <= 0 {
		return models.TimelineResult{
			Status: TimelineStatusUndetermined,
		}
	}

	totalWeeks := float64(course.Week)
	minHoursPerWeek := course.CoursePlaytime / totalWeeks
	ratio := minHoursPerWeek / float64(weeklyHours)

	// Осталось недель до конца обучения. Без даты окончания считаем,
	// что доступен полный срок курса.
	remainingWeeks := totalWeeks
	finished := false
	if course.StudyEnd != nil {
		remaining := course.StudyEnd.Sub(s.now())
		if remaining <= 0 {
			finished = true
			remainingWeeks = 0
		} else {
			remainingWeeks = remaining.Hours() / hoursPerWeek
			if remainingWeeks > totalWeeks {
				remainingWeeks = totalWeeks
			}
		}
	}

	status := TimelineStatusOK
	switch {
	case finished:
		status = TimelineStatusFinished
	case ratio > ratioTightAbove:
		status = TimelineStatusTight
	case ratio < ratioRelaxedBelow:
		status = TimelineStatusRelaxed
	}

	return models.TimelineResult{
		MinHoursPerWeek: roundTo(minHoursPerWeek, 1),
		TotalWeeks:      totalWeeks,
		RemainingWeeks:  roundTo(remainingWeeks, 1),
		Status:          status,
		Ratio:           roundTo(ratio, 2),
	}
}
