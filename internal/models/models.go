package models

import "time"

// Границы валидации входных данных API.
const (
	MinCourseComparisonCount = 1   // Минимальное число сравниваемых курсов
	MaxCourseComparisonCount = 3   // Максимальное число сравниваемых курсов
	MinWeeklyHours           = 1   // Минимум часов обучения в неделю
	MaxWeeklyHours           = 168 // Максимум часов обучения в неделю (24*7)
	MinPreferenceValue       = 0   // Минимальное значение оси предпочтений
	MaxPreferenceValue       = 5   // Максимальное значение оси предпочтений
)

// Course представляет курс в PostgreSQL.
// Embedding заполняется отдельным пайплайном и может отсутствовать.
type Course struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Professor      string     `json:"professor"`
	OrgName        string     `json:"org_name"`
	CourseImage    string     `json:"course_image"`
	URL            string     `json:"url"`
	StudyEnd       *time.Time `json:"study_end,omitempty"`
	Week           int        `json:"week"`            // Общее количество недель
	CoursePlaytime float64    `json:"course_playtime"` // Общее время материала, часы
	Embedding      []float64  `json:"embedding,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CourseDocument представляет документ курса в Elasticsearch.
// Содержит только поля, необходимые для kNN поиска похожих курсов.
type CourseDocument struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	OrgName   string    `json:"org_name"`
	Embedding []float64 `json:"embedding"`
}

// CourseReview представляет пользовательский отзыв о курсе.
type CourseReview struct {
	ID         int       `json:"id"`
	CourseID   int       `json:"course_id"`
	UserName   string    `json:"user_name"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}

// CourseAIReview представляет заранее сгенерированную LLM-оценку курса.
// Вектор из четырех осей: theory / practical / difficulty / duration.
// Данные только для чтения, генерация — вне зоны ответственности этого сервиса.
type CourseAIReview struct {
	CourseID         int       `json:"course_id"`
	CourseSummary    string    `json:"course_summary"`
	AverageRating    float64   `json:"average_rating"`
	TheoryRating     float64   `json:"theory_rating"`
	PracticalRating  float64   `json:"practical_rating"`
	DifficultyRating float64   `json:"difficulty_rating"`
	DurationRating   float64   `json:"duration_rating"`
	ModelVersion     string    `json:"model_version"`
	PromptVersion    string    `json:"prompt_version"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UserPreferences представляет предпочтения пользователя по четырем осям.
// Каждое значение в диапазоне 0-5.
type UserPreferences struct {
	Theory     int `json:"theory"`     // Теоретическая глубина (0: поверхностно, 5: глубоко)
	Practical  int `json:"practical"`  // Практическая применимость (0: низкая, 5: высокая)
	Difficulty int `json:"difficulty"` // Сложность (0: легко, 5: сложно)
	Duration   int `json:"duration"`   // Длительность (0: коротко, 5: долго)
}

// ComparisonRequest представляет запрос на сравнительный анализ курсов.
type ComparisonRequest struct {
	CourseIDs       []int           `json:"course_ids"`
	WeeklyHours     int             `json:"weekly_hours"`
	UserPreferences UserPreferences `json:"user_preferences"`
}

// SentimentResult представляет агрегированный результат анализа тональности
// отзывов одного курса. Структура всегда заполнена, даже при нуле отзывов.
type SentimentResult struct {
	PositiveRatio float64 `json:"positive_ratio"` // Доля позитивных отзывов, %
	ReviewCount   int     `json:"review_count"`   // Количество отзывов
	Reliability   string  `json:"reliability"`    // Надежность оценки: high | low
}

// SentimentPrediction представляет результат классификации одного текста.
type SentimentPrediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// TimelineResult представляет результат симуляции "успею ли я пройти курс".
// При отсутствии метаданных длительности числовые поля нейтральные (0),
// статус undetermined — схема ответа всегда стабильна.
type TimelineResult struct {
	MinHoursPerWeek float64 `json:"min_hours_per_week"` // Необходимые часы в неделю
	TotalWeeks      float64 `json:"total_weeks"`        // Всего недель
	RemainingWeeks  float64 `json:"remaining_weeks"`    // Осталось недель
	Status          string  `json:"status"`             // ok | relaxed | tight | finished | undetermined
	Ratio           float64 `json:"ratio"`              // Необходимое время / доступное время
}

// ComparisonResult представляет результат анализа одного курса.
// AIReview и MatchScore отсутствуют, если курс еще не оценен LLM:
// нулевой вектор не подставляется, чтобы не искажать сортировку.
type ComparisonResult struct {
	Course     Course          `json:"course"`
	AIReview   *CourseAIReview `json:"ai_review,omitempty"`
	MatchScore *float64        `json:"match_score,omitempty"`
	Sentiment  SentimentResult `json:"sentiment"`
	Timeline   TimelineResult  `json:"timeline"`
}

// ComparisonResponse представляет ответ сравнительного анализа.
// Результаты отсортированы по match_score по убыванию.
type ComparisonResponse struct {
	Results []ComparisonResult `json:"results"`
}

// RecommendationResponse представляет ответ со списком похожих курсов.
type RecommendationResponse struct {
	Courses []Course `json:"courses"`
	Total   int      `json:"total"`
}
