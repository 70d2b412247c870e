package async

import (
	"context"

	promize "github.com/tdadadavid/Promize"
	"github.com/tdadadavid/Promize/pkg/rate/spin"
)

// AllSettled
// 等待全部输入定案，以与输入位置对齐的定案记录序列成功。
// 永远成功，不会因输入失败而短路。
//
// 输入元素可以是普通值或 Future，普通值视为已成功的记录。
func AllSettled(ctx context.Context, inputs []any) Future {
	f := newFutureOn(ctx, promize.From(ctx))
	n := len(inputs)
	if n == 0 {
		f.succeed([]Result{})
		return f
	}

	records := make([]Result, n)
	locker := spin.New()
	remains := n
	recordAt := func(i int, r Result) {
		locker.Lock()
		records[i] = r
		remains--
		done := remains == 0
		locker.Unlock()
		if done {
			f.succeed(records)
		}
	}

	for i, input := range inputs {
		inner, ok := input.(Future)
		if !ok {
			recordAt(i, result{status: Fulfilled, value: input})
			continue
		}
		inner.OnComplete(func(_ context.Context, value any, cause error) {
			if cause != nil {
				recordAt(i, result{status: Rejected, cause: cause})
				return
			}
			recordAt(i, result{status: Fulfilled, value: value})
		})
	}
	return f
}
