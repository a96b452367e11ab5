package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"elearning_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	examDetailKeyPrefix = "exam:detail:"
	examDetailTTL       = 10 * time.Minute
)

// ExamCache keeps the rendered exam detail tree in redis. Every mutation of
// an exam's graph goes through Invalidate, so a hit is never stale.
type ExamCache struct {
	Redis *redis.Client
}

func NewExamCache(rdb *redis.Client) *ExamCache {
	return &ExamCache{Redis: rdb}
}

func (c *ExamCache) GetDetail(ctx context.Context, examID uint, out interface{}) bool {
	if c.Redis == nil {
		return false
	}

	val, err := c.Redis.Get(ctx, examDetailKey(examID)).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		logger.Log.Warn("exam cache read failed", zap.Uint("exam_id", examID), zap.Error(err))
		return false
	}

	if err := json.Unmarshal([]byte(val), out); err != nil {
		logger.Log.Warn("exam cache decode failed", zap.Uint("exam_id", examID), zap.Error(err))
		return false
	}
	return true
}

func (c *ExamCache) SetDetail(ctx context.Context, examID uint, detail interface{}) {
	if c.Redis == nil {
		return
	}

	data, err := json.Marshal(detail)
	if err != nil {
		return
	}
	if err := c.Redis.Set(ctx, examDetailKey(examID), data, examDetailTTL).Err(); err != nil {
		logger.Log.Warn("exam cache write failed", zap.Uint("exam_id", examID), zap.Error(err))
	}
}

func (c *ExamCache) Invalidate(ctx context.Context, examID uint) {
	if c.Redis == nil || examID == 0 {
		return
	}
	if err := c.Redis.Del(ctx, examDetailKey(examID)).Err(); err != nil {
		logger.Log.Warn("exam cache invalidate failed", zap.Uint("exam_id", examID), zap.Error(err))
	}
}

func examDetailKey(examID uint) string {
	return fmt.Sprintf("%s%d", examDetailKeyPrefix, examID)
}
