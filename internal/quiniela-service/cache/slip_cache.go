package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache guarda resumos de boletos já montados, evitando bater no Postgres
// a cada GET. Boletos são imutáveis depois de criados (só o status muda),
// então um TTL curto resolve.
type Cache struct{ R *redis.Client }

func New(r *redis.Client) *Cache { return &Cache{R: r} }

const slipTTL = 5 * time.Minute

func keySlip(id string) string { return "quiniela:slip:" + id }

// GetSlip lê o resumo do cache. ok=false quando não está lá.
func (c *Cache) GetSlip(ctx context.Context, id string, dst any) (bool, error) {
	b, err := c.R.Get(ctx, keySlip(id)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

// SetSlip grava o resumo com TTL.
func (c *Cache) SetSlip(ctx context.Context, id string, v any) error {
	b, _ := json.Marshal(v)
	return c.R.Set(ctx, keySlip(id), b, slipTTL).Err()
}

// InvalidateSlip remove o resumo (usado quando o status muda).
func (c *Cache) InvalidateSlip(ctx context.Context, id string) error {
	return c.R.Del(ctx, keySlip(id)).Err()
}
