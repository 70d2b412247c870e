package async

import (
	"context"
	"sync"

	promize "github.com/tdadadavid/Promize"
	"github.com/tdadadavid/Promize/pkg/rate/spin"
)

// NewBarrier
// 创建栅栏
func NewBarrier() Barrier {
	return &barrier{
		locker:  spin.New(),
		callers: nil,
	}
}

// Barrier
// 栅栏
//
// 同键并发的 Do 共享第一个调用构建的未来，执行器只执行一次。
// 定案后键自动遗忘，之后的 Do 会重新执行。
type Barrier interface {
	// Do
	// 以执行器构建或共享 key 对应的未来。
	Do(ctx context.Context, key string, executor Executor) (future Future)
	// Forget
	// 遗忘 key。因定案后会自动遗忘，一般无需调用。
	Forget(key string)
}

type barrier struct {
	locker  sync.Locker
	callers map[string]Future
}

func (b *barrier) Do(ctx context.Context, key string, executor Executor) (future Future) {
	b.locker.Lock()
	if b.callers == nil {
		b.callers = make(map[string]Future)
	}
	if shared, has := b.callers[key]; has {
		b.locker.Unlock()
		future = shared
		return
	}
	origin := newFutureOn(ctx, promize.From(ctx))
	b.callers[key] = origin
	b.locker.Unlock()

	origin.OnComplete(func(_ context.Context, _ any, _ error) {
		b.Forget(key)
	})
	runExecutor(origin, executor)
	future = origin
	return
}

func (b *barrier) Forget(key string) {
	b.locker.Lock()
	delete(b.callers, key)
	b.locker.Unlock()
}
