package async_test

import (
	"context"
	"testing"

	"github.com/tdadadavid/Promize/async"
)

func TestBarrier_SharesSettlement(t *testing.T) {
	queue := newManualQueue(t)
	ctx := queue.Context()

	b := async.NewBarrier()
	executions := 0
	executor := func(succeed async.Succeed, _ async.Fail) {
		executions++
		succeed(executions)
	}

	first := b.Do(ctx, "key", executor)
	second := b.Do(ctx, "key", executor)
	if executions != 1 {
		t.Errorf("executor ran %d times", executions)
	}
	if first != second {
		t.Error("same key produced different futures")
	}

	var got []any
	first.OnComplete(func(_ context.Context, value any, _ error) {
		got = append(got, value)
	})
	second.OnComplete(func(_ context.Context, value any, _ error) {
		got = append(got, value)
	})
	drain(t, queue)
	if len(got) != 2 || got[0] != 1 || got[1] != 1 {
		t.Errorf("settlement not shared: %v", got)
	}

	// 定案后键已遗忘，重新执行
	b.Do(ctx, "key", executor)
	drain(t, queue)
	if executions != 2 {
		t.Errorf("key not forgotten after settlement: %d executions", executions)
	}
}

func TestBarrier_Forget(t *testing.T) {
	queue := newManualQueue(t)
	ctx := queue.Context()

	b := async.NewBarrier()
	executions := 0
	executor := func(_ async.Succeed, _ async.Fail) {
		executions++
	}
	b.Do(ctx, "key", executor)
	b.Forget("key")
	b.Do(ctx, "key", executor)
	if executions != 2 {
		t.Errorf("forget did not reset key: %d executions", executions)
	}
}
