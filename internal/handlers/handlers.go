// Package handlers содержит HTTP обработчики для REST API сравнения курсов.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
	"github.com/akozadaev/go_course_comparison_system/internal/storage"
	"github.com/gorilla/mux"
)

// ComparisonAnalyzer описывает сравнительный анализ курсов.
type ComparisonAnalyzer interface {
	Analyze(ctx context.Context, req *models.ComparisonRequest) (*models.ComparisonResponse, error)
}

// CourseRecommender описывает best-effort подбор похожих курсов.
type CourseRecommender interface {
	RecommendSimilarCourses(ctx context.Context, courseID int) []models.Course
}

// CourseReader описывает чтение курсов, отзывов и AI-оценок.
type CourseReader interface {
	GetCourse(ctx context.Context, id int) (*models.Course, error)
	GetCourseReviews(ctx context.Context, courseID int) ([]*models.CourseReview, error)
	GetAIReview(ctx context.Context, courseID int) (*models.CourseAIReview, error)
}

// Handlers содержит зависимости для обработки HTTP запросов.
type Handlers struct {
	comparison  ComparisonAnalyzer
	recommender CourseRecommender
	courses     CourseReader
}

// NewHandlers создает новый экземпляр Handlers с заданными сервисами.
func NewHandlers(comparison ComparisonAnalyzer, recommender CourseRecommender, courses CourseReader) *Handlers {
	return &Handlers{
		comparison:  comparison,
		recommender: recommender,
		courses:     courses,
	}
}

// AnalyzeComparison обрабатывает POST запрос на сравнительный анализ курсов.
// Принимает ComparisonRequest в теле запроса и возвращает результаты,
// отсортированные по match_score по убыванию.
// Эндпоинт: POST /api/v1/comparisons/analyze
//
// @Summary      Сравнительный анализ курсов
// @Description  Сравнивает от 1 до 3 курсов по предпочтениям пользователя: матчинг-оценка по AI-вектору, тональность отзывов и симуляция таймлайна прохождения. Результаты отсортированы по match_score по убыванию.
// @Tags         comparisons
// @Accept       json
// @Produce      json
// @Param        request  body      models.ComparisonRequest  true  "Запрос на сравнение"
// @Success      200      {object}  models.ComparisonResponse
// @Failure      400      {object}  map[string]string  "Неверный запрос"
// @Failure      404      {object}  map[string]string  "Курс не найден"
// @Failure      500      {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/v1/comparisons/analyze [post]
func (h *Handlers) AnalyzeComparison(w http.ResponseWriter, r *http.Request) {
	var req models.ComparisonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация до запуска любых расчетов
	if err := validateComparisonRequest(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, err := h.comparison.Analyze(r.Context(), &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		log.Printf("Error analyzing comparison: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, response)
}

// GetCourse обрабатывает GET запрос на получение детальной информации о курсе.
// Эндпоинт: GET /api/v1/courses/{id}
//
// @Summary      Получить детали курса
// @Description  Возвращает полную информацию о курсе по его идентификатору
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Идентификатор курса"
// @Success      200  {object}  models.Course
// @Failure      400  {object}  map[string]string  "Неверный идентификатор"
// @Failure      404  {object}  map[string]string  "Курс не найден"
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/v1/courses/{id} [get]
func (h *Handlers) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := courseIDFromPath(w, r)
	if !ok {
		return
	}

	course, err := h.courses.GetCourse(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "Course not found", http.StatusNotFound)
			return
		}
		log.Printf("Error getting course: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	// Embedding — внутренняя деталь, наружу не отдаем
	course.Embedding = nil

	writeJSON(w, course)
}

// GetCourseReviews обрабатывает GET запрос на получение отзывов курса.
// Эндпоинт: GET /api/v1/courses/{id}/reviews
//
// @Summary      Получить отзывы курса
// @Description  Возвращает отзывы курса, новые первыми
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Идентификатор курса"
// @Success      200  {array}   models.CourseReview
// @Failure      400  {object}  map[string]string  "Неверный идентификатор"
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/v1/courses/{id}/reviews [get]
func (h *Handlers) GetCourseReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := courseIDFromPath(w, r)
	if !ok {
		return
	}

	reviews, err := h.courses.GetCourseReviews(r.Context(), id)
	if err != nil {
		log.Printf("Error getting reviews: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Преобразуем указатели в значения для JSON
	reviewValues := make([]models.CourseReview, len(reviews))
	for i, review := range reviews {
		reviewValues[i] = *review
	}

	writeJSON(w, reviewValues)
}

// GetRecommendations обрабатывает GET запрос на получение похожих курсов.
// Всегда отвечает 200: при любом внутреннем сбое возвращается пустой список,
// блок рекомендаций не должен превращаться в ошибку страницы.
// Эндпоинт: GET /api/v1/courses/{id}/recommendations
//
// @Summary      Получить похожие курсы
// @Description  Возвращает до 4 курсов, похожих на заданный, по kNN поиску в векторном индексе. При сбое индекса или отсутствии embedding возвращается пустой список.
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Идентификатор курса"
// @Success      200  {object}  models.RecommendationResponse
// @Failure      400  {object}  map[string]string  "Неверный идентификатор"
// @Router       /api/v1/courses/{id}/recommendations [get]
func (h *Handlers) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := courseIDFromPath(w, r)
	if !ok {
		return
	}

	courses := h.recommender.RecommendSimilarCourses(r.Context(), id)

	writeJSON(w, models.RecommendationResponse{
		Courses: courses,
		Total:   len(courses),
	})
}

// GetAIReview обрабатывает GET запрос на получение AI-оценки курса.
// Эндпоинт: GET /api/v1/comparisons/courses/{id}/ai-review
//
// @Summary      Получить AI-оценку курса
// @Description  Возвращает заранее сгенерированный LLM вектор оценок курса вместе с метаданными генерации (версия модели, версия промпта, таймстемпы)
// @Tags         comparisons
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Идентификатор курса"
// @Success      200  {object}  models.CourseAIReview
// @Failure      400  {object}  map[string]string  "Неверный идентификатор"
// @Failure      404  {object}  map[string]string  "Оценка не найдена"
// @Failure      500  {object}  map[string]string  "Внутренняя ошибка сервера"
// @Router       /api/v1/comparisons/courses/{id}/ai-review [get]
func (h *Handlers) GetAIReview(w http.ResponseWriter, r *http.Request) {
	id, ok := courseIDFromPath(w, r)
	if !ok {
		return
	}

	aiReview, err := h.courses.GetAIReview(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "AI review not found", http.StatusNotFound)
			return
		}
		log.Printf("Error getting ai review: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, aiReview)
}

// HealthCheck обрабатывает GET запрос на проверку работоспособности сервиса.
// Эндпоинт: GET /health
//
// @Summary      Проверка работоспособности сервиса
// @Description  Возвращает статус сервиса. Используется для мониторинга и проверки доступности.
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
	})
}

// validateComparisonRequest проверяет запрос на сравнение до запуска расчетов.
func validateComparisonRequest(req *models.ComparisonRequest) error {
	if len(req.CourseIDs) < models.MinCourseComparisonCount || len(req.CourseIDs) > models.MaxCourseComparisonCount {
		return fmt.Errorf("course_ids must contain from %d to %d ids",
			models.MinCourseComparisonCount, models.MaxCourseComparisonCount)
	}
	for _, id := range req.CourseIDs {
		if id < 1 {
			return fmt.Errorf("course_ids must contain positive ids")
		}
	}

	if req.WeeklyHours < models.MinWeeklyHours || req.WeeklyHours > models.MaxWeeklyHours {
		return fmt.Errorf("weekly_hours must be in range [%d, %d]",
			models.MinWeeklyHours, models.MaxWeeklyHours)
	}

	prefs := req.UserPreferences
	for _, value := range []int{prefs.Theory, prefs.Practical, prefs.Difficulty, prefs.Duration} {
		if value < models.MinPreferenceValue || value > models.MaxPreferenceValue {
			return fmt.Errorf("user_preferences values must be in range [%d, %d]",
				models.MinPreferenceValue, models.MaxPreferenceValue)
		}
	}

	return nil
}

// courseIDFromPath извлекает идентификатор курса из пути запроса.
// При ошибке пишет 400 и возвращает ok=false.
func courseIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil || id < 1 {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
