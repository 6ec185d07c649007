package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"damone-orders/internal/domain"
)

// Consumer reads order-created events and folds them into the analytics
// aggregates. Malformed messages are logged and skipped; the stream must
// keep moving.
type Consumer struct {
	Reader *kafka.Reader
	Store  AnalyticsWriter
}

func NewConsumer(reader *kafka.Reader, store AnalyticsWriter) *Consumer {
	return &Consumer{Reader: reader, Store: store}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting order events consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == "order_created" {
			c.ProcessOrder(ctx, event)
		}
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != "order_created" {
		return
	}
	log.Printf("Processing order event: OrderID=%d, Total=%.2f, Items=%d",
		event.OrderID, event.Total, len(event.Items))

	if err := c.Store.ApplyOrder(ctx, event); err != nil {
		log.Printf("Error updating analytics for order %d: %v", event.OrderID, err)
		return
	}

	log.Printf("Successfully processed order %d", event.OrderID)
}
