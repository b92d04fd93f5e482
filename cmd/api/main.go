package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/jaynikam2005/ai-resume-job-matcher/internal/config"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/data/store"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/handlers"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/embedding/googleEmbedding"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/oracle"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/oracle/gemini"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/oracle/openai"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/vectorDB"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/matching/vectorDB/qdrantDB"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/pipeline/parse"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/server"
	"github.com/jaynikam2005/ai-resume-job-matcher/internal/worker"
	"github.com/jaynikam2005/ai-resume-job-matcher/pkg/logger_i"
)

var (
	listenAddr        string
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	_ = godotenv.Load()
	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	apiKey := config.GoogleAPIKey()
	if apiKey == "" {
		logger.Error("GOOGLE_API_KEY is not set. Shutting down.")
		return
	}

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	embedder, err := googleEmbedding.NewGoogleEmbedder(serviceContext, config.GoogleEmbeddingModel, apiKey)
	if err != nil {
		logger.Error("Embedding service failed to initialize. Shutting down.", "error", err)
		return
	}

	generator, err := buildGenerator(serviceContext, apiKey)
	if err != nil {
		logger.Error("Oracle provider failed to initialize. Shutting down.", "error", err, "provider", config.OracleProvider())
		return
	}
	oracleAdapter := oracle.NewAdapter(generator)

	//exact analysis cache: redis when reachable, in-memory otherwise
	var analysisStore store.AnalysisStore
	if redisCache := store.GetRedisAnalysisStore(serviceContext); redisCache != nil {
		analysisStore = redisCache
	} else {
		logger.Error("Redis store is offline, falling back to in-memory analysis cache")
		analysisStore = store.InitInMemoryAnalysisStore(config.AnalysisCacheTTL)
	}

	//semantic analysis cache is optional; nil disables the tier
	var semanticCache vectorDB.AnalysisCache
	if qdrantClient := qdrantDB.NewClient(serviceContext); qdrantClient != nil {
		semanticCache = qdrantClient
	} else {
		logger.Warn("Qdrant is unavailable, semantic cache tier disabled")
	}

	parser := parse.NewParser(parse.NewProseTagger())

	stopWorkerChannel = make(chan bool, 1)
	pool := worker.NewPool(stopWorkerChannel, &workerWaitGroup)

	matchingService := matching.NewService(embedder, oracleAdapter, parser, analysisStore, semanticCache, pool)
	handlers.InitHandlers(matchingService)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

// buildGenerator selects the oracle backend. Gemini is the default and rides
// on the same credential as the embedder; openai needs its own key.
func buildGenerator(ctx context.Context, googleAPIKey string) (oracle.Generator, error) {
	switch config.OracleProvider() {
	case config.ProviderOpenAI:
		return openai.NewGenerator(config.OpenAIAPIKey(), config.OpenAIModelName)
	default:
		return gemini.NewGenerator(ctx, googleAPIKey, config.GeminiModelName)
	}
}
