package service

import (
	"context"
	"time"
)

// RatingSubmittedEvent is emitted after a rating is created or updated.
type RatingSubmittedEvent struct {
	RequestID  string    `json:"requestId,omitempty"` // For distributed tracing
	RatingID   string    `json:"ratingId"`
	UserID     string    `json:"userId"`
	StoreID    string    `json:"storeId"`
	Value      int       `json:"value"`
	Created    bool      `json:"created"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRatingSubmitted publishes a rating event for downstream consumers
	PublishRatingSubmitted(ctx context.Context, event *RatingSubmittedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
