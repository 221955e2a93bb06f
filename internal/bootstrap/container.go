package bootstrap

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"admissions-chat-be/internal/config"
	"admissions-chat-be/internal/controller"
	"admissions-chat-be/internal/pkg/logger"
	"admissions-chat-be/internal/pkg/mailer"
	"admissions-chat-be/internal/repository"
	"admissions-chat-be/internal/repository/memory"
	redisstore "admissions-chat-be/internal/repository/redis"
	"admissions-chat-be/internal/repository/unitofwork"
	"admissions-chat-be/internal/service"
	"admissions-chat-be/pkg/chat/extract"
	"admissions-chat-be/pkg/embedding"
	"admissions-chat-be/pkg/llm/factory"
	pktNats "admissions-chat-be/pkg/nats"
	"admissions-chat-be/pkg/rag"
	"admissions-chat-be/pkg/rag/answer"
)

type Container struct {
	// Controllers
	ChatController  controller.IChatController
	AdminController controller.IAdminController

	// Background services (exposed for main.go to run)
	ConsumerService  service.IConsumerService
	PublisherService service.IPublisherService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var emailService mailer.IEmailService
	if cfg.SMTP.Host != "" && cfg.SMTP.AdmissionsInbox != "" {
		emailService = mailer.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Email,
			cfg.SMTP.Password,
			cfg.SMTP.Email,
			cfg.SMTP.AdmissionsInbox,
		)
	}

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmBaseURL := cfg.Ai.LLMBaseURL
	if llmBaseURL == "" {
		llmBaseURL = cfg.Ai.OllamaBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL,
		cfg.Keys.OpenAI,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Session storage
	var sessionStore repository.SessionStore
	if cfg.App.SessionBackend == "redis" {
		opt, err := goredis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &goredis.Options{Addr: cfg.App.RedisURL}
		}
		rdb := goredis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		sessionStore = redisstore.NewSessionRepository(rdb, cfg.App.SessionTTL)
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		sessionStore = memory.NewSessionRepository(cfg.App.SessionTTL)
		log.Printf("[INFO] Using Session Backend: MEMORY")
	}

	// 5. NATS (best-effort; a nil publisher disables event emission)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 6. Dialog machinery
	llmLogger := initLLMLogger()

	var extractor extract.Extractor
	if cfg.Ai.ExtractorStrategy == "model" {
		extractor = extract.NewModelExtractor(llmProvider, llmLogger)
		log.Printf("[INFO] Using Extractor: MODEL (%s)", cfg.Ai.LLMModel)
	} else {
		extractor = extract.NewPatternExtractor()
		log.Printf("[INFO] Using Extractor: PATTERN")
	}

	retriever := rag.NewRetriever(embeddingProvider, repository.NewPassageIndex(uowFactory), llmLogger)
	generator := answer.NewGenerator(llmProvider, llmLogger)

	// 7. Services
	auditService := service.NewAuditService(uowFactory, natsPub, emailService, sysLogger)
	chatService := service.NewChatService(
		sessionStore,
		extractor,
		retriever,
		generator,
		auditService,
		sysLogger,
		cfg.Ai.CompletionTimeout,
		cfg.Ai.EmbeddingTimeout,
	)
	adminService := service.NewAdminService(cfg.Admin, uowFactory)

	publisherService := service.NewPublisherService(pubSub, cfg.Keys.EmbedTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		embeddingProvider,
		sysLogger,
	)

	// 8. Controllers
	chatController := controller.NewChatController(chatService)
	adminController := controller.NewAdminController(adminService, cfg.Admin.JWTSecret)

	return &Container{
		ChatController:   chatController,
		AdminController:  adminController,
		ConsumerService:  consumerService,
		PublisherService: publisherService,
		Logger:           sysLogger,
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_rag.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM-RAG] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}
