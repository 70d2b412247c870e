package promize

import (
	"context"
)

type contextKey struct{}

// With
// 把 Queue 关联到 context.Context
func With(ctx context.Context, queue Queue) context.Context {
	return context.WithValue(ctx, contextKey{}, queue)
}

// From
// 从 context.Context 获取 Queue
//
// 注意，必须先 With ，否则会 panic 。
func From(ctx context.Context) Queue {
	queue, has := TryFrom(ctx)
	if !has {
		panic("promize: there is no queue in context")
	}
	return queue
}

// TryFrom
// 尝试从 context.Context 获取 Queue
func TryFrom(ctx context.Context) (queue Queue, has bool) {
	queue, has = ctx.Value(contextKey{}).(Queue)
	if !has || queue == nil {
		queue = nil
		has = false
	}
	return
}

// Schedule
// 调度一个延迟回调
//
// 注意，必须先 With 。
func Schedule(ctx context.Context, callback Callback) (err error) {
	queue := From(ctx)
	err = queue.Schedule(callback)
	return
}
