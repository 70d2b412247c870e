package async

import (
	"context"
	"sync"

	promize "github.com/tdadadavid/Promize"
	"github.com/tdadadavid/Promize/pkg/rate/spin"
)

// OnSucceed
// 成功处理器
//
// 返回内容（包括 Future，会被递归采用）成为下游未来的成功输入；
// 返回错误或恐慌则使下游未来失败。
type OnSucceed func(value any) (any, error)

// OnFail
// 失败处理器
//
// 返回内容成为下游未来的成功输入；返回错误或恐慌则使下游未来失败。
type OnFail func(cause error) (any, error)

// Future
// 延迟值
//
// 构建后处于 Pending，只会定案一次。定案与投递一律经由 promize.Queue 延迟，
// 注册方总是异步观察到投递，无论注册发生在定案前还是定案后。
// 同一未来上的投递按注册顺序进行。
type Future interface {
	// Status
	// 当前状态
	Status() Status
	// Then
	// 链式注册处理器并返回下游未来。
	//
	// onSucceed 为 nil 时成功内容原样穿透到下游；
	// onFail 为 nil 时失败原因原样穿透到下游（错误会隧穿无处理器的链环）。
	Then(onSucceed OnSucceed, onFail OnFail) Future
	// Catch
	// 等价于 Then(nil, onFail)
	Catch(onFail OnFail) Future
	// Finally
	// 定案时执行清理回调，成功失败皆会执行且不收到结果。
	//
	// 成功路径不改变内容；失败路径在回调后继续向下游传播原因。
	Finally(onSettled func()) Future
	// OnComplete
	// 注册一个结果处理器，它是异步非堵塞的。
	OnComplete(handler ResultHandler)
}

func newFutureOn(ctx context.Context, queue promize.Queue) *futureImpl {
	return &futureImpl{
		ctx:    ctx,
		queue:  queue,
		locker: spin.New(),
		status: Pending,
	}
}

type futureImpl struct {
	ctx    context.Context
	queue  promize.Queue
	locker sync.Locker
	status Status
	// latched 某次定案尝试已取得提交权（定案或采用）。
	// 之后的能力调用为空操作，即便采用尚未落定。
	latched      bool
	value        any
	cause        error
	fulfillments []func(value any)
	rejections   []func(cause error)
}

func (f *futureImpl) Status() Status {
	f.locker.Lock()
	status := f.status
	f.locker.Unlock()
	return status
}

func (f *futureImpl) Then(onSucceed OnSucceed, onFail OnFail) Future {
	downstream := newFutureOn(f.ctx, f.queue)
	f.register(
		func(value any) {
			if onSucceed == nil {
				downstream.succeed(value)
				return
			}
			next, err := runHandler(func() (any, error) { return onSucceed(value) })
			if err != nil {
				downstream.fail(err)
				return
			}
			downstream.succeed(next)
		},
		func(cause error) {
			if onFail == nil {
				downstream.fail(cause)
				return
			}
			next, err := runHandler(func() (any, error) { return onFail(cause) })
			if err != nil {
				downstream.fail(err)
				return
			}
			downstream.succeed(next)
		},
	)
	return downstream
}

func (f *futureImpl) Catch(onFail OnFail) Future {
	return f.Then(nil, onFail)
}

func (f *futureImpl) Finally(onSettled func()) Future {
	if onSettled == nil {
		return f.Then(nil, nil)
	}
	return f.Then(
		func(value any) (any, error) {
			onSettled()
			return value, nil
		},
		func(cause error) (any, error) {
			onSettled()
			return nil, cause
		},
	)
}

func (f *futureImpl) OnComplete(handler ResultHandler) {
	if handler == nil {
		return
	}
	f.register(
		func(value any) {
			handler(f.ctx, value, nil)
		},
		func(cause error) {
			handler(f.ctx, nil, cause)
		},
	)
}

// register 成对追加延续。已定案时另行调度一次投递，保证注册方异步观察。
func (f *futureImpl) register(onFulfilled func(value any), onRejected func(cause error)) {
	f.locker.Lock()
	f.fulfillments = append(f.fulfillments, onFulfilled)
	f.rejections = append(f.rejections, onRejected)
	settled := f.status != Pending
	f.locker.Unlock()
	if settled {
		_ = f.queue.Schedule(f.drain)
	}
}

// drain 按追加顺序投递定案一侧的延续并清空两侧队列，清空后再次调用为空操作。
func (f *futureImpl) drain() {
	f.locker.Lock()
	status := f.status
	if status == Pending {
		f.locker.Unlock()
		return
	}
	fulfillments := f.fulfillments
	rejections := f.rejections
	f.fulfillments = nil
	f.rejections = nil
	value := f.value
	cause := f.cause
	f.locker.Unlock()

	if status == Fulfilled {
		for _, continuation := range fulfillments {
			continuation(value)
		}
		return
	}
	for _, continuation := range rejections {
		continuation(cause)
	}
}
