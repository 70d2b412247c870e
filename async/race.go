package async

import (
	"context"

	promize "github.com/tdadadavid/Promize"
)

// Race
// 以最先经由队列定案的输入的定案作为结果，成功失败皆可。
//
// 普通值视为已定案，除非更早定案的 Future 经由队列抢先。
// 注意：空输入的未来永远不会定案，这是已知的终态，不是错误。
func Race(ctx context.Context, inputs []any) Future {
	f := newFutureOn(ctx, promize.From(ctx))
	for _, input := range inputs {
		inner, ok := input.(Future)
		if !ok {
			f.succeed(input)
			continue
		}
		inner.OnComplete(func(_ context.Context, value any, cause error) {
			if cause != nil {
				f.fail(cause)
				return
			}
			f.succeed(value)
		})
	}
	return f
}
