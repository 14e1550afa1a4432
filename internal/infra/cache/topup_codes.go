package cache

import (
	"context"
	"encoding/json"
	"time"

	"beautyspace/internal/pkg/errs"
	"beautyspace/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// TopUpCodeStore keeps pending top-up codes until the payment is confirmed or
// the code expires. Expiry is redis-side: an unconfirmed code simply
// disappears and never touches the ledger.
type TopUpCodeStore struct {
	client *redis.Client
}

func NewTopUpCodeStore(client *redis.Client) *TopUpCodeStore {
	return &TopUpCodeStore{client: client}
}

func topUpKey(code string) string {
	return "topup:" + code
}

func (s *TopUpCodeStore) Save(ctx context.Context, code string, pending shared.PendingTopUp, ttl time.Duration) error {
	raw, err := json.Marshal(pending)
	if err != nil {
		return errs.Wrap(err, "failed to encode pending top-up")
	}

	ok, err := s.client.SetNX(ctx, topUpKey(code), raw, ttl).Result()
	if err != nil {
		return errs.Wrap(err, "failed to store top-up code")
	}
	if !ok {
		return errs.New("top-up code already exists")
	}
	return nil
}

// Consume atomically fetches and deletes the code so it cannot be confirmed
// twice. Returns (nil, nil) when the code is unknown or expired.
func (s *TopUpCodeStore) Consume(ctx context.Context, code string) (*shared.PendingTopUp, error) {
	raw, err := s.client.GetDel(ctx, topUpKey(code)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to consume top-up code")
	}

	var pending shared.PendingTopUp
	if err := json.Unmarshal(raw, &pending); err != nil {
		return nil, errs.Wrap(err, "failed to decode pending top-up")
	}
	return &pending, nil
}
