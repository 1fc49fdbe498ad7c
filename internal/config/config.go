// Package config предоставляет загрузку конфигурации приложения из переменных окружения.
package config

import (
	"os"
	"strconv"
)

// Config содержит все параметры конфигурации приложения.
// Значения загружаются из переменных окружения с fallback на значения по умолчанию.
type Config struct {
	ElasticsearchURL string // URL для подключения к Elasticsearch/OpenSearch
	CoursesIndex     string // Имя индекса с векторами курсов
	PostgresHost     string // Хост PostgreSQL
	PostgresPort     string // Порт PostgreSQL
	PostgresUser     string // Пользователь PostgreSQL
	PostgresPassword string // Пароль PostgreSQL
	PostgresDB       string // Имя базы данных PostgreSQL
	AppPort          string // Порт для HTTP сервера

	SentimentModelPath     string // Путь к ONNX модели анализа тональности
	SentimentTokenizerPath string // Путь к tokenizer.json модели
	OnnxRuntimePath        string // Путь к библиотеке onnxruntime (пусто — системная)
	SentimentMaxSeqLen     int    // Максимальная длина последовательности токенов
}

// Load загружает конфигурацию из переменных окружения.
// Если переменная не установлена, используется значение по умолчанию.
func Load() *Config {
	return &Config{
		ElasticsearchURL: getEnv("ELASTICSEARCH_URL", "http://localhost:9200"),
		CoursesIndex:     getEnv("COURSES_INDEX", "kmooc_courses"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "course_user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "course_pass"),
		PostgresDB:       getEnv("POSTGRES_DB", "course_db"),
		AppPort:          getEnv("APP_PORT", "8080"),

		SentimentModelPath:     getEnv("SENTIMENT_MODEL_PATH", "models/sentiment.onnx"),
		SentimentTokenizerPath: getEnv("SENTIMENT_TOKENIZER_PATH", "models/tokenizer.json"),
		OnnxRuntimePath:        getEnv("ONNXRUNTIME_PATH", ""),
		SentimentMaxSeqLen:     getEnvInt("SENTIMENT_MAX_SEQ_LEN", 256),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
