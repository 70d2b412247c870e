package counter

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"
)

const pollInterval = 500 * time.Nanosecond

// New
// 创建计数器
func New() *Counter {
	return new(Counter)
}

type Counter struct {
	n atomic.Int64
}

func (c *Counter) Incr() int64 {
	return c.n.Add(1)
}

func (c *Counter) Decr() int64 {
	return c.n.Add(-1)
}

func (c *Counter) Value() int64 {
	return c.n.Load()
}

// WaitDownTo
// 等待计数降至 n（含）以下。
// 当 context.Context 有错误时提前返回该错误。
func (c *Counter) WaitDownTo(ctx context.Context, n int64) (err error) {
	times := 10
	for c.Value() > n {
		if err = ctx.Err(); err != nil {
			return
		}
		time.Sleep(pollInterval)
		times--
		if times < 1 {
			times = 10
			runtime.Gosched()
		}
	}
	return
}
