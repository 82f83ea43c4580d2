package service

import (
	"context"
	"encoding/json"

	"robotics-rag-be/internal/dto"
	"robotics-rag-be/internal/pkg/logger"
	"robotics-rag-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IIndexerService consumes index-passage events and writes embeddings into
// the vector collection.
type IIndexerService interface {
	Consume(ctx context.Context) error
}

type indexerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	passageRepo contract.PassageRepository
	ragService  IRagService
	sysLogger   logger.ILogger
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	passageRepo contract.PassageRepository,
	ragService IRagService,
	sysLogger logger.ILogger,
) IIndexerService {
	return &indexerService{
		pubSub:      pubSub,
		topicName:   topicName,
		passageRepo: passageRepo,
		ragService:  ragService,
		sysLogger:   sysLogger,
	}
}

func (is *indexerService) Consume(ctx context.Context) error {
	messages, err := is.pubSub.Subscribe(ctx, is.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			is.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (is *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIndexPassageMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		is.sysLogger.Error("indexer", "Failed to unmarshal message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	passage, err := is.passageRepo.FindById(ctx, payload.PassageId)
	if err != nil {
		is.sysLogger.Error("indexer", "Failed to load passage", map[string]interface{}{
			"passage_id": payload.PassageId.String(),
			"error":      err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}
	if passage == nil {
		// Passage deleted before indexing caught up. Ack.
		is.sysLogger.Warn("indexer", "Passage not found, skipping", map[string]interface{}{
			"passage_id": payload.PassageId.String(),
		})
		msg.Ack()
		return
	}

	if err := is.ragService.IndexPassage(ctx, passage); err != nil {
		is.sysLogger.Error("indexer", "Failed to index passage", map[string]interface{}{
			"passage_id": payload.PassageId.String(),
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	is.sysLogger.Info("indexer", "Passage indexed", map[string]interface{}{
		"passage_id": payload.PassageId.String(),
	})
	msg.Ack()
}
