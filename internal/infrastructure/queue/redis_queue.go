package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrEmpty is returned by the blocking reads when the timeout elapsed
// without a message.
var ErrEmpty = errors.New("queue is empty")

// RedisQueue moves jobs and results over two Redis lists: producers LPUSH,
// consumers BRPOP.
type RedisQueue struct {
	rdb       *redis.Client
	jobKey    string
	resultKey string
}

func NewRedisQueue(rdb *redis.Client, jobKey, resultKey string) *RedisQueue {
	return &RedisQueue{rdb: rdb, jobKey: jobKey, resultKey: resultKey}
}

func (q *RedisQueue) Enqueue(ctx context.Context, job Job) error {
	serialized, err := SerializeJob(job)
	if err != nil {
		return err
	}
	if err := q.rdb.LPush(ctx, q.jobKey, serialized).Err(); err != nil {
		return fmt.Errorf("push job %s: %w", job.ID, err)
	}
	return nil
}

// Dequeue blocks for up to timeout waiting for the next job.
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Job, error) {
	val, err := q.pop(ctx, q.jobKey, timeout)
	if err != nil {
		return nil, err
	}
	return DeserializeJob(val)
}

func (q *RedisQueue) PublishResult(ctx context.Context, res ProcessedJob) error {
	serialized, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	if err := q.rdb.LPush(ctx, q.resultKey, serialized).Err(); err != nil {
		return fmt.Errorf("push result %s: %w", res.JobID, err)
	}
	return nil
}

func (q *RedisQueue) NextResult(ctx context.Context, timeout time.Duration) (*ProcessedJob, error) {
	val, err := q.pop(ctx, q.resultKey, timeout)
	if err != nil {
		return nil, err
	}
	return DeserializeResult(val)
}

func (q *RedisQueue) pop(ctx context.Context, key string, timeout time.Duration) (string, error) {
	val, err := q.rdb.BRPop(ctx, timeout, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrEmpty
	}
	if err != nil {
		return "", err
	}
	return val[1], nil
}
