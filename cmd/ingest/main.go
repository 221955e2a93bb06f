package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/fatih/color"

	"admissions-chat-be/internal/config"
	"admissions-chat-be/internal/dto"
	"admissions-chat-be/internal/pkg/logger"
	"admissions-chat-be/internal/repository/specification"
	"admissions-chat-be/internal/repository/unitofwork"
	"admissions-chat-be/internal/service"
	"admissions-chat-be/pkg/database"
	"admissions-chat-be/pkg/embedding"
	"admissions-chat-be/pkg/ingest"
)

// The ingest CLI loads knowledge-base material into the passage table:
// local documents and crawled web pages are chunked, queued, embedded and
// stored. Re-ingesting a source replaces its previous passages.
func main() {
	files := flag.String("files", "", "comma-separated list of document files to ingest")
	urls := flag.String("urls", "", "comma-separated list of web pages to crawl and ingest")
	timeout := flag.Duration("timeout", 10*time.Minute, "overall deadline for the run")
	flag.Parse()

	if *files == "" && *urls == "" {
		color.Red("nothing to ingest: pass -files and/or -urls")
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		color.Red("database connection failed: %v", err)
		os.Exit(1)
	}
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisher := service.NewPublisherService(pubSub, cfg.Keys.EmbedTopic)
	consumer := service.NewConsumerService(pubSub, cfg.Keys.EmbedTopic, uowFactory, embeddingProvider, sysLogger)

	if err := consumer.Consume(ctx); err != nil {
		color.Red("failed to start embed worker: %v", err)
		os.Exit(1)
	}

	runner := &ingestRunner{
		uowFactory: uowFactory,
		publisher:  publisher,
		crawler:    ingest.NewCrawler(),
	}

	total := 0
	for _, path := range splitList(*files) {
		n, err := runner.ingestFile(ctx, path)
		if err != nil {
			color.Red("✗ %s: %v", path, err)
			continue
		}
		color.Green("✓ %s (%d chunks queued)", path, n)
		total += n
	}
	for _, url := range splitList(*urls) {
		n, err := runner.ingestURL(ctx, url)
		if err != nil {
			color.Red("✗ %s: %v", url, err)
			continue
		}
		color.Green("✓ %s (%d chunks queued)", url, n)
		total += n
	}

	if total == 0 {
		color.Yellow("no chunks queued, nothing to wait for")
		return
	}

	color.Cyan("waiting for %d chunks to be embedded...", total)
	if err := runner.waitForDrain(ctx, total); err != nil {
		color.Red("ingestion incomplete: %v", err)
		os.Exit(1)
	}
	color.Green("done: knowledge base updated")
}

type ingestRunner struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  service.IPublisherService
	crawler    *ingest.Crawler

	// sources replaced in this run; drained counts are scoped to them
	sources []string
}

func (r *ingestRunner) ingestFile(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	source := filepath.Base(path)
	chunks := ingest.SplitText(string(raw), ingest.DocumentChunkSize, ingest.DocumentChunkOverlap)
	return r.replaceSource(ctx, source, chunks)
}

func (r *ingestRunner) ingestURL(ctx context.Context, url string) (int, error) {
	text, err := r.crawler.Crawl(ctx, url)
	if err != nil {
		return 0, err
	}

	chunks := ingest.SplitText(text, ingest.WebChunkSize, ingest.WebChunkOverlap)
	return r.replaceSource(ctx, url, chunks)
}

func (r *ingestRunner) replaceSource(ctx context.Context, source string, chunks []string) (int, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PassageRepository().DeleteBySource(ctx, source); err != nil {
		return 0, err
	}

	for i, chunk := range chunks {
		err := r.publisher.PublishEmbedPassage(&dto.PublishEmbedPassageMessage{
			Source:     source,
			ChunkIndex: i,
			Content:    chunk,
		})
		if err != nil {
			return i, err
		}
	}

	r.sources = append(r.sources, source)
	return len(chunks), nil
}

// waitForDrain polls the passage table until every queued chunk has landed.
func (r *ingestRunner) waitForDrain(ctx context.Context, expected int) error {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			uow := r.uowFactory.NewUnitOfWork(ctx)
			var stored int64
			for _, source := range r.sources {
				count, err := uow.PassageRepository().Count(ctx, specification.BySource{Source: source})
				if err != nil {
					log.Printf("count failed for %s: %v", source, err)
					continue
				}
				stored += count
			}
			if stored >= int64(expected) {
				return nil
			}
			color.White("  %d/%d chunks stored", stored, expected)
		}
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
