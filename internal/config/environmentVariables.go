package config

import (
	"os"
	"strings"
	"time"
)

const (
	TRACE_ID_KEY                = "traceId"
	RATE_LIMIT_PER_SECOND       = 5
	BURST_RATE_LIMIT_PER_SECOND = 10

	//uploads
	MaxUploadSize = 10 << 20 //10mb, matches the documented API limit

	//analysis cache: exact tier (redis) and semantic tier (qdrant)
	AnalysisCacheTTL             = 24 * time.Hour
	CacheSimilarityCutoff        = 0.97
	SemanticCacheCollection      = "analysis-cache"
	EmbeddingOutputDimensionality int32 = 768

	//worker pool
	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//per-request deadline for the full pipeline (extract + oracle + score)
	PipelineTimeout = 60 * time.Second

	ServerListenAddr = ":8000"

	//task queue buffer for the compute pool
	TaskBufferLimit = 100

	//vectorDB
	QdrantGrpcPort = 6334
	QdrantUseTLS   = false
	QdrantPoolSize = 1

	//oracle + embeddings
	ProviderGemini       = "gemini"
	ProviderOpenAI       = "openai"
	GeminiModelName      = "gemini-2.5-flash"
	OpenAIModelName      = "gpt-4o-mini"
	GoogleEmbeddingModel = "gemini-embedding-001"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	RedisAddr     = "127.0.0.1:6379"
	RedisPassword = ""

	//analysis cache lives in its own logical DB
	RedisAnalysisStore = 0
)

// GoogleAPIKey is the one required credential: it backs the embedding model and
// the default oracle provider. Absence is a fatal startup condition.
func GoogleAPIKey() string {
	return strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))
}

func OpenAIAPIKey() string {
	return strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
}

// OracleProvider selects the generator behind the oracle adapter.
func OracleProvider() string {
	p := strings.ToLower(strings.TrimSpace(os.Getenv("ORACLE_PROVIDER")))
	if p == "" {
		return ProviderGemini
	}
	return p
}

func RedisAddress() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return RedisAddr
}

func QdrantHost() string {
	return os.Getenv("QDRANT_HOST")
}
