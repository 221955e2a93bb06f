package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"admissions-chat-be/internal/dto"
	"admissions-chat-be/internal/entity"
	"admissions-chat-be/internal/pkg/logger"
	"admissions-chat-be/internal/repository/unitofwork"
	"admissions-chat-be/pkg/embedding"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the embed topic: each message is one text chunk that
// needs an embedding before it can serve retrieval.
type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
		logger:            log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedPassageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "failed to unmarshal embed message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages must not retry forever
		return
	}

	result, err := cs.embeddingProvider.Generate(ctx, payload.Content, embedding.TaskRetrievalDocument)
	if err != nil {
		cs.logger.Error("CONSUMER", "embedding failed", map[string]interface{}{
			"source":     payload.Source,
			"chunkIndex": payload.ChunkIndex,
			"error":      err.Error(),
		})
		msg.Nack() // retriable
		return
	}

	passage := &entity.Passage{
		Id:             uuid.New(),
		Content:        payload.Content,
		Source:         payload.Source,
		ChunkIndex:     payload.ChunkIndex,
		EmbeddingValue: result.Embedding.Values,
		CreatedAt:      time.Now(),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.PassageRepository().Create(ctx, passage); err != nil {
		cs.logger.Error("CONSUMER", "failed to store passage", map[string]interface{}{
			"source":     payload.Source,
			"chunkIndex": payload.ChunkIndex,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	cs.logger.Info("CONSUMER", "passage embedded", map[string]interface{}{
		"source":     payload.Source,
		"chunkIndex": payload.ChunkIndex,
	})
	msg.Ack()
}
