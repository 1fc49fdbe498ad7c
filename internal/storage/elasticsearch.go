// Package storage содержит реализации хранилищ для Elasticsearch/OpenSearch и PostgreSQL.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/akozadaev/go_course_comparison_system/internal/models"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// knnNumCandidates — размер пула кандидатов approximate kNN поиска.
const knnNumCandidates = 200

// ElasticsearchStorage предоставляет методы для работы с векторным индексом курсов.
// Использует прямые HTTP запросы для совместимости с OpenSearch.
type ElasticsearchStorage struct {
	client     *elasticsearch.Client // Официальный клиент Elasticsearch
	index      string                // Имя индекса с курсами
	httpClient *http.Client          // HTTP клиент для прямых запросов
	baseURL    string                // Базовый URL Elasticsearch/OpenSearch
}

// NewElasticsearchStorageWithURL создает новый экземпляр ElasticsearchStorage с указанным URL.
// Используется для поддержки OpenSearch через прямые HTTP запросы.
func NewElasticsearchStorageWithURL(client *elasticsearch.Client, index string, baseURL string) *ElasticsearchStorage {
	return &ElasticsearchStorage{
		client:     client,
		index:      index,
		httpClient: &http.Client{},
		baseURL:    baseURL,
	}
}

// NewElasticsearchStorage создает новый экземпляр ElasticsearchStorage с URL по умолчанию.
// Использует http://localhost:9200 как базовый URL.
func NewElasticsearchStorage(client *elasticsearch.Client, index string) *ElasticsearchStorage {
	// Используем значение по умолчанию, если URL не передан
	return NewElasticsearchStorageWithURL(client, index, "http://localhost:9200")
}

// CreateIndex создает индекс в Elasticsearch/OpenSearch с заданным маппингом.
// Если индекс уже существует, функция возвращает nil без ошибки.
func (es *ElasticsearchStorage) CreateIndex(ctx context.Context, mappingJSON string) error {
	res, err := es.client.Indices.Exists([]string{es.index})
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		// Индекс уже существует
		return nil
	}

	// Создаем индекс с маппингом
	res, err = es.client.Indices.Create(
		es.index,
		es.client.Indices.Create.WithBody(strings.NewReader(mappingJSON)),
		es.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error creating index: %s", string(body))
	}

	return nil
}

// IndexCourse индексирует один документ курса в Elasticsearch/OpenSearch.
// Если документ с таким ID уже существует, он будет обновлен.
func (es *ElasticsearchStorage) IndexCourse(ctx context.Context, doc *models.CourseDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal course document: %w", err)
	}

	req := esapi.IndexRequest{
		Index:      es.index,
		DocumentID: fmt.Sprintf("%d", doc.ID),
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, es.client)
	if err != nil {
		return fmt.Errorf("failed to index course: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error indexing course: %s", string(body))
	}

	return nil
}

// BulkIndexCourses индексирует несколько документов курсов за один запрос.
// Использует Bulk API для эффективной массовой индексации.
// Использует прямые HTTP запросы для совместимости с OpenSearch.
func (es *ElasticsearchStorage) BulkIndexCourses(ctx context.Context, docs []*models.CourseDocument) error {
	var buf bytes.Buffer

	for _, doc := range docs {
		meta := map[string]interface{}{
			"index": map[string]interface{}{
				"_index": es.index,
				"_id":    fmt.Sprintf("%d", doc.ID),
			},
		}

		if err := json.NewEncoder(&buf).Encode(meta); err != nil {
			return fmt.Errorf("failed to encode meta: %w", err)
		}

		if err := json.NewEncoder(&buf).Encode(doc); err != nil {
			return fmt.Errorf("failed to encode course document: %w", err)
		}
	}

	// Используем прямой HTTP запрос для обхода проверки типа сервера
	url := fmt.Sprintf("%s/_bulk", es.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-ndjson")

	res, err := es.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to bulk index: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("error bulk indexing: status %d, body: %s", res.StatusCode, string(body))
	}

	return nil
}

// KNNSearchCourseIDs выполняет approximate kNN поиск по embedding вектору
// и возвращает идентификаторы курсов в порядке убывания похожести.
// Запрашивается k кандидатов с запасом: сам курс обычно оказывается
// среди собственных ближайших соседей и отфильтровывается выше.
// Использует прямые HTTP запросы для совместимости с OpenSearch.
func (es *ElasticsearchStorage) KNNSearchCourseIDs(ctx context.Context, embedding []float64, k int) ([]int, error) {
	query := map[string]interface{}{
		"knn": map[string]interface{}{
			"field":          "embedding",
			"query_vector":   embedding,
			"k":              k,
			"num_candidates": knnNumCandidates,
		},
		"_source": []string{"id"},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	// Используем прямой HTTP запрос для обхода проверки типа сервера
	url := fmt.Sprintf("%s/%s/_search", es.baseURL, es.index)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := es.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("error searching: status %d, body: %s", res.StatusCode, string(body))
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID int `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	ids := make([]int, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		ids = append(ids, hit.Source.ID)
	}

	return ids, nil
}
