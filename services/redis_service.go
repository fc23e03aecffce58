package services

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var errStaleGeneration = errors.New("cache generation changed")

// GetFromRedis đọc JSON tại key vào target; found=false khi key không tồn tại
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) (bool, error) {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return false, err
	}
	return true, nil
}

// GetGeneration đọc bộ đếm tại genKey, key chưa có tính là 0
func GetGeneration(ctx context.Context, rdb *redis.Client, genKey string) (int64, error) {
	gen, err := rdb.Get(ctx, genKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return gen, err
}

// SetToRedisIfGeneration chỉ lưu value khi genKey vẫn bằng gen.
// stored=false khi generation đã đổi hoặc WATCH bị huỷ.
func SetToRedisIfGeneration(ctx context.Context, rdb *redis.Client, genKey string, gen int64, key string, value interface{}, ttl time.Duration) (bool, error) {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return false, err
	}

	err = rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && err != redis.Nil {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, dataJSON, ttl)
			return nil
		})
		return err
	}, genKey)

	if errors.Is(err, errStaleGeneration) || errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// BumpAndDelete tăng các generation rồi xóa cache trong cùng một MULTI
func BumpAndDelete(ctx context.Context, rdb *redis.Client, genKeys []string, keys []string) error {
	_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, g := range genKeys {
			pipe.Incr(ctx, g)
		}
		pipe.Del(ctx, keys...)
		return nil
	})
	return err
}
