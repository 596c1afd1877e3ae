package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type Handler func(ctx context.Context, event Event) error

// Subscriber reads the owner events stream through a consumer group, so
// each event is handled by exactly one replica of a group.
type Subscriber struct {
	client   *redis.Client
	group    string
	consumer string
	handler  Handler
}

func NewSubscriber(client *redis.Client, group, consumer string, handler Handler) *Subscriber {
	return &Subscriber{client: client, group: group, consumer: consumer, handler: handler}
}

// Start blocks, dispatching events until ctx is cancelled.
func (s *Subscriber) Start(ctx context.Context) error {
	err := s.client.XGroupCreateMkStream(ctx, OwnerEventsStream, s.group, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	log.Printf("events: subscriber started group=%s consumer=%s", s.group, s.consumer)
	for {
		select {
		case <-ctx.Done():
			log.Printf("events: subscriber stopping")
			return ctx.Err()
		default:
			if err := s.readBatch(ctx); err != nil && ctx.Err() == nil {
				log.Printf("events: read failed: %v", err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (s *Subscriber) readBatch(ctx context.Context) error {
	streams, err := s.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    s.group,
		Consumer: s.consumer,
		Streams:  []string{OwnerEventsStream, ">"},
		Count:    10,
		Block:    5 * time.Second,
	}).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	for _, stream := range streams {
		for _, message := range stream.Messages {
			if err := s.dispatch(ctx, message); err != nil {
				// Unacked messages are redelivered.
				log.Printf("events: handler failed for %s: %v", message.ID, err)
				continue
			}
			if err := s.client.XAck(ctx, OwnerEventsStream, s.group, message.ID).Err(); err != nil {
				log.Printf("events: ack failed for %s: %v", message.ID, err)
			}
		}
	}
	return nil
}

func (s *Subscriber) dispatch(ctx context.Context, message redis.XMessage) error {
	raw, ok := message.Values["event"].(string)
	if !ok {
		return fmt.Errorf("invalid message format")
	}
	var event Event
	if err := json.Unmarshal([]byte(raw), &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}
	return s.handler(ctx, event)
}
