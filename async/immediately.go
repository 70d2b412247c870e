package async

import (
	"context"

	promize "github.com/tdadadavid/Promize"
)

// Succeeded
// 立刻成功的未来
//
// value 本身是 Future 时采用其最终定案，而不是以未来为内容定案。
func Succeeded(ctx context.Context, value any) Future {
	f := newFutureOn(ctx, promize.From(ctx))
	f.succeed(value)
	return f
}

// Failed
// 立刻失败的未来
//
// 与 fail 能力不同，cause 不做解包，原样作为失败原因。
func Failed(ctx context.Context, cause error) Future {
	f := newFutureOn(ctx, promize.From(ctx))
	_ = f.queue.Schedule(func() {
		if !f.latch() {
			return
		}
		f.commitSettle(Rejected, nil, cause)
	})
	return f
}
