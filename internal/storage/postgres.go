package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
	"github.com/lib/pq"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует в хранилище.
// Отсутствие данных — ожидаемая ситуация, вызывающий код различает её
// через errors.Is, не разбирая текст ошибки.
var ErrNotFound = errors.New("not found")

// PostgresStorage предоставляет методы для работы с курсами, отзывами
// и AI-оценками в PostgreSQL.
type PostgresStorage struct {
	db *sql.DB // Подключение к базе данных PostgreSQL
}

// NewPostgresStorage создает новый экземпляр PostgresStorage и устанавливает подключение к БД.
// DSN должен быть в формате: "host=... port=... user=... password=... dbname=... sslmode=..."
func NewPostgresStorage(dsn string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStorage{db: db}, nil
}

// Close закрывает подключение к базе данных PostgreSQL.
func (ps *PostgresStorage) Close() error {
	return ps.db.Close()
}

const courseColumns = `id, name, professor, org_name, course_image, url, study_end, week, course_playtime, embedding, created_at, updated_at`

func scanCourse(row interface{ Scan(dest ...interface{}) error }) (*models.Course, error) {
	var c models.Course
	var studyEnd sql.NullTime
	var embedding pq.Float64Array
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Professor,
		&c.OrgName,
		&c.CourseImage,
		&c.URL,
		&studyEnd,
		&c.Week,
		&c.CoursePlaytime,
		&embedding,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if studyEnd.Valid {
		t := studyEnd.Time
		c.StudyEnd = &t
	}
	c.Embedding = []float64(embedding)
	return &c, nil
}

// GetCourse возвращает курс по его идентификатору вместе с embedding вектором.
// Возвращает ErrNotFound, если курс не существует.
func (ps *PostgresStorage) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`

	course, err := scanCourse(ps.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("course %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query course: %w", err)
	}

	return course, nil
}

// GetCoursesByIDs возвращает курсы по списку идентификаторов одним запросом.
// Порядок результата не гарантируется, отсутствующие ID молча пропускаются —
// восстановление порядка остается за вызывающим кодом.
func (ps *PostgresStorage) GetCoursesByIDs(ctx context.Context, ids []int) ([]*models.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = ANY($1)`

	rows, err := ps.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// GetCoursesWithEmbeddings возвращает все курсы, у которых заполнен embedding.
// Используется индексатором для наполнения Elasticsearch.
func (ps *PostgresStorage) GetCoursesWithEmbeddings(ctx context.Context) ([]*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE embedding IS NOT NULL ORDER BY id`

	rows, err := ps.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return courses, nil
}

// CountReviewTexts возвращает количество отзывов курса с непустым текстом.
// Отдельный COUNT запрос: при нуле отзывов полная выборка текстов не выполняется.
func (ps *PostgresStorage) CountReviewTexts(ctx context.Context, courseID int) (int, error) {
	query := `SELECT COUNT(*) FROM course_reviews WHERE course_id = $1 AND review_text IS NOT NULL AND review_text <> ''`

	var count int
	if err := ps.db.QueryRowContext(ctx, query, courseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	return count, nil
}

// GetReviewTexts возвращает тексты отзывов курса с непустым текстом.
// Вторая фаза после CountReviewTexts, вызывается только при наличии отзывов.
func (ps *PostgresStorage) GetReviewTexts(ctx context.Context, courseID int) ([]string, error) {
	query := `SELECT review_text FROM course_reviews WHERE course_id = $1 AND review_text IS NOT NULL AND review_text <> ''`

	rows, err := ps.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query review texts: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan review text: %w", err)
		}
		texts = append(texts, text)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return texts, nil
}

// GetCourseReviews возвращает отзывы курса, новые первыми.
func (ps *PostgresStorage) GetCourseReviews(ctx context.Context, courseID int) ([]*models.CourseReview, error) {
	query := `SELECT id, course_id, user_name, review_text, created_at FROM course_reviews WHERE course_id = $1 ORDER BY created_at DESC`

	rows, err := ps.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.CourseReview
	for rows.Next() {
		var r models.CourseReview
		var text sql.NullString
		if err := rows.Scan(
			&r.ID,
			&r.CourseID,
			&r.UserName,
			&text,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		r.ReviewText = text.String
		reviews = append(reviews, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return reviews, nil
}

// GetAIReview возвращает AI-оценку курса.
// Возвращает ErrNotFound, если для курса оценка еще не сгенерирована —
// это нормальная ситуация, а не сбой.
func (ps *PostgresStorage) GetAIReview(ctx context.Context, courseID int) (*models.CourseAIReview, error) {
	query := `SELECT course_id, course_summary, average_rating, theory_rating, practical_rating, difficulty_rating, duration_rating, model_version, prompt_version, created_at, updated_at
		FROM course_ai_reviews WHERE course_id = $1`

	var r models.CourseAIReview
	err := ps.db.QueryRowContext(ctx, query, courseID).Scan(
		&r.CourseID,
		&r.CourseSummary,
		&r.AverageRating,
		&r.TheoryRating,
		&r.PracticalRating,
		&r.DifficultyRating,
		&r.DurationRating,
		&r.ModelVersion,
		&r.PromptVersion,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ai review for course %d: %w", courseID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query ai review: %w", err)
	}

	return &r, nil
}
