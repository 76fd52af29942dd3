package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/kemet-travel/kemet-api/internal/logger"
	"github.com/kemet-travel/kemet-api/internal/models"
)

// AnalyticsWriter stores usage events.
type AnalyticsWriter interface {
	Save(ctx context.Context, event *models.AnalyticsEventDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AnalyticsService records usage events and publishes them to Kafka.
// Publishing is best effort: a broker outage never fails the request that
// triggered the event.
type AnalyticsService struct {
	writer      AnalyticsWriter
	kafkaWriter KafkaWriter
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(writer AnalyticsWriter, kafkaWriter KafkaWriter) *AnalyticsService {
	return &AnalyticsService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Record stores an event and publishes it to Kafka.
func (s *AnalyticsService) Record(ctx context.Context, eventType string, category *string, userID *uuid.UUID) error {
	event := &models.AnalyticsEventDB{
		EventID:   uuid.New(),
		EventType: eventType,
		Category:  category,
		UserID:    userID,
	}

	if err := s.writer.Save(ctx, event); err != nil {
		logger.Log.Errorw("failed to save analytics event", "event_type", eventType, "error", err)
		return err
	}

	s.publish(ctx, event)
	return nil
}

func (s *AnalyticsService) publish(ctx context.Context, event *models.AnalyticsEventDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal analytics event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID.String()),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish analytics event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("analytics event published to Kafka", "event_id", event.EventID, "event_type", event.EventType)
	}
}
