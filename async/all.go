package async

import (
	"context"

	promize "github.com/tdadadavid/Promize"
	"github.com/tdadadavid/Promize/pkg/rate/spin"
)

// All
// 当全部输入成功时，以与输入位置对齐的结果序列成功；
// 任一输入失败时，以第一个失败的原因失败，其余输入的定案不影响结果。
//
// 输入元素可以是普通值或 Future，普通值视为已以自身成功。
// 空输入立刻以空序列成功。
func All(ctx context.Context, inputs []any) Future {
	f := newFutureOn(ctx, promize.From(ctx))
	n := len(inputs)
	if n == 0 {
		f.succeed([]any{})
		return f
	}

	values := make([]any, n)
	locker := spin.New()
	remains := n
	fulfillAt := func(i int, value any) {
		locker.Lock()
		values[i] = value
		remains--
		done := remains == 0
		locker.Unlock()
		if done {
			f.succeed(values)
		}
	}

	for i, input := range inputs {
		inner, ok := input.(Future)
		if !ok {
			fulfillAt(i, input)
			continue
		}
		inner.OnComplete(func(_ context.Context, value any, cause error) {
			if cause != nil {
				f.fail(cause)
				return
			}
			fulfillAt(i, value)
		})
	}
	return f
}
