package main

import (
	"context"
	"fmt"
	"log"

	"github.com/akozadaev/go_course_comparison_system/internal/config"
	"github.com/akozadaev/go_course_comparison_system/internal/models"
	"github.com/akozadaev/go_course_comparison_system/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
)

// Индексатор переносит embedding векторы курсов из PostgreSQL
// в Elasticsearch/OpenSearch для kNN поиска похожих курсов.
// Запускается после обновления embedding-ов отдельным пайплайном.
func main() {
	cfg := config.Load()

	// Инициализация Elasticsearch клиента
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.ElasticsearchURL},
	}

	esClient, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		log.Fatalf("Error creating Elasticsearch client: %v", err)
	}

	esStorage := storage.NewElasticsearchStorageWithURL(esClient, cfg.CoursesIndex, cfg.ElasticsearchURL)

	// Инициализация PostgreSQL клиента
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresDB,
	)

	pgStorage, err := storage.NewPostgresStorage(dsn)
	if err != nil {
		log.Fatalf("Error creating PostgreSQL client: %v", err)
	}
	defer pgStorage.Close()

	ctx := context.Background()

	// Выбираем только курсы с заполненным embedding:
	// курс без вектора в индексе бесполезен
	courses, err := pgStorage.GetCoursesWithEmbeddings(ctx)
	if err != nil {
		log.Fatalf("Error loading courses: %v", err)
	}

	if len(courses) == 0 {
		log.Println("No courses with embeddings found, nothing to index")
		return
	}

	docs := make([]*models.CourseDocument, 0, len(courses))
	for _, course := range courses {
		docs = append(docs, &models.CourseDocument{
			ID:        course.ID,
			Name:      course.Name,
			OrgName:   course.OrgName,
			Embedding: course.Embedding,
		})
	}

	log.Printf("Indexing %d courses...", len(docs))

	// Индексация данных
	if err := esStorage.BulkIndexCourses(ctx, docs); err != nil {
		log.Fatalf("Error indexing courses: %v", err)
	}

	log.Println("Indexing completed successfully!")
}
