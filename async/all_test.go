package async_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tdadadavid/Promize/async"
)

func TestAll_OrderPreserved(t *testing.T) {
	queue := newManualQueue(t)
	ctx := queue.Context()

	inputs := []any{async.Succeeded(ctx, 1), 2, async.Succeeded(ctx, 3)}
	var got []any
	async.All(ctx, inputs).OnComplete(func(_ context.Context, value any, cause error) {
		if cause != nil {
			t.Error(cause)
			return
		}
		got = value.([]any)
	})
	drain(t, queue)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("order broken: %v", got)
	}
}

func TestAll_ShortCircuit(t *testing.T) {
	queue := newManualQueue(t)
	ctx := queue.Context()

	boom := errors.New("boom")
	inputs := []any{async.Succeeded(ctx, 1), async.Failed(ctx, boom), async.Succeeded(ctx, 3)}
	var gotCause error
	async.All(ctx, inputs).OnComplete(func(_ context.Context, _ any, cause error) {
		gotCause = cause
	})
	drain(t, queue)
	if !errors.Is(gotCause, boom) {
		t.Errorf("want first rejection, got %v", gotCause)
	}
}

func TestAll_Empty(t *testing.T) {
	queue := newManualQueue(t)
	ctx := queue.Context()

	var got []any
	settled := false
	async.All(ctx, nil).OnComplete(func(_ context.Context, value any, cause error) {
		settled = true
		if cause != nil {
			t.Error(cause)
			return
		}
		got = value.([]any)
	})
	drain(t, queue)
	if !settled {
		t.Error("empty input did not fulfill")
	}
	if len(got) != 0 {
		t.Errorf("want empty sequence, got %v", got)
	}
}
