package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"damone-orders/internal/domain"
)

// AnalyticsStore keeps the daily sales aggregates the admin dashboard reads.
// The order worker writes them as order-created events arrive.
type AnalyticsStore struct {
	Client *redis.Client
}

func NewAnalyticsStore(client *redis.Client) *AnalyticsStore {
	return &AnalyticsStore{Client: client}
}

func revenueKey(date string) string {
	return "analytics:revenue:" + date
}

func orderCountKey(date string) string {
	return "analytics:orders:" + date
}

func popularityKey(date string) string {
	return "analytics:popular:" + date
}

func (s *AnalyticsStore) ApplyOrder(ctx context.Context, event domain.OrderEvent) error {
	date := event.Timestamp.Format("2006-01-02")

	if err := s.Client.IncrByFloat(ctx, revenueKey(date), event.Total).Err(); err != nil {
		return err
	}
	if err := s.Client.Incr(ctx, orderCountKey(date)).Err(); err != nil {
		return err
	}
	for _, item := range event.Items {
		if err := s.Client.ZIncrBy(ctx, popularityKey(date), float64(item.Quantity), item.ID).Err(); err != nil {
			return err
		}
	}

	for _, key := range []string{revenueKey(date), orderCountKey(date), popularityKey(date)} {
		s.Client.Expire(ctx, key, 30*24*time.Hour)
	}
	return nil
}

func (s *AnalyticsStore) Summary(ctx context.Context, date string, topN int) (*domain.DailySummary, error) {
	summary := &domain.DailySummary{Date: date, TopItems: []domain.PopularItem{}}

	revenue, err := s.Client.Get(ctx, revenueKey(date)).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if err == nil {
		summary.Revenue, _ = strconv.ParseFloat(revenue, 64)
	}

	count, err := s.Client.Get(ctx, orderCountKey(date)).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	if err == nil {
		summary.OrderCount, _ = strconv.Atoi(count)
	}

	top, err := s.Client.ZRevRangeWithScores(ctx, popularityKey(date), 0, int64(topN)-1).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	for _, z := range top {
		id, _ := z.Member.(string)
		summary.TopItems = append(summary.TopItems, domain.PopularItem{ItemID: id, Quantity: z.Score})
	}
	return summary, nil
}
