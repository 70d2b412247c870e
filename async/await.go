package async

import (
	"context"
)

// Awaitable
// 同步等待器
type Awaitable interface {
	// Await
	// 等待未来定案
	Await() (value any, err error)
}

// AwaitableFuture
// 转换为同步等待
//
// 注意：手动模式的队列需要另一个协程 Drain ，否则会堵塞。
func AwaitableFuture(future Future) Awaitable {
	af := &awaitableFuture{
		future: future,
		ch:     make(chan result, 1),
	}
	future.OnComplete(af.handle)
	return af
}

type awaitableFuture struct {
	future Future
	ch     chan result
}

func (af *awaitableFuture) Await() (value any, err error) {
	r := <-af.ch
	value, err = r.value, r.cause
	return
}

func (af *awaitableFuture) handle(_ context.Context, value any, cause error) {
	af.ch <- result{
		value: value,
		cause: cause,
	}
}
