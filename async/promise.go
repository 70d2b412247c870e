package async

import (
	"context"
	"fmt"

	"github.com/brickingsoft/errors"
	promize "github.com/tdadadavid/Promize"
)

// Succeed
// 成功定案能力
type Succeed func(value any)

// Fail
// 失败定案能力
type Fail func(cause error)

// Executor
// 执行器
//
// 构建时同步执行且只执行一次，收到两个定案能力，先提交的生效。
type Executor func(succeed Succeed, fail Fail)

// New
// 以执行器构建未来
//
// 执行器内恐慌会使未来以恢复到的原因失败。
// 执行器为 nil 时未来保持 Pending。
//
// 注意，ctx 必须携带 promize.Queue（先 promize.With），否则会 panic 。
func New(ctx context.Context, executor Executor) Future {
	f := newFutureOn(ctx, promize.From(ctx))
	runExecutor(f, executor)
	return f
}

func runExecutor(f *futureImpl, executor Executor) {
	if executor == nil {
		return
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			f.fail(recoveredCause(recovered))
		}
	}()
	executor(f.succeed, f.fail)
}

// succeed 调度一次延迟的定案尝试。内容是 Future 时采用其最终定案。
//
// 队列已关闭时调度被丢弃，未来保持 Pending。
func (f *futureImpl) succeed(value any) {
	_ = f.queue.Schedule(func() {
		if !f.latch() {
			return
		}
		f.commitResolve(value)
	})
}

// fail 调度一次延迟的定案尝试。原因本身实现 Future 时同样采用其定案，
// 与 Failed 工厂的不解包行为相区分。
func (f *futureImpl) fail(cause error) {
	_ = f.queue.Schedule(func() {
		if !f.latch() {
			return
		}
		f.commitReject(cause)
	})
}

// latch 争夺本次定案尝试的提交权，重复或乱序的能力调用在此静默放弃。
func (f *futureImpl) latch() (ok bool) {
	f.locker.Lock()
	if f.status == Pending && !f.latched {
		f.latched = true
		ok = true
	}
	f.locker.Unlock()
	return
}

// commitResolve 已取得提交权的成功定案：嵌套未来被递归采用，
// 外部观察者不会见到以未来为内容的定案。
func (f *futureImpl) commitResolve(value any) {
	inner, ok := value.(Future)
	if !ok {
		f.commitSettle(Fulfilled, value, nil)
		return
	}
	f.adopt(inner)
}

// commitReject 已取得提交权的失败定案。
func (f *futureImpl) commitReject(cause error) {
	if inner, ok := any(cause).(Future); ok {
		f.adopt(inner)
		return
	}
	f.commitSettle(Rejected, nil, cause)
}

// adopt 订阅内层未来并采用其定案。采用自身视为致命配置错误。
// 间接的采用环不会自旋，只是环上的未来都不再定案。
func (f *futureImpl) adopt(inner Future) {
	if same, ok := inner.(*futureImpl); ok && same == f {
		f.commitSettle(Rejected, nil, errors.From(ErrSelfResolution))
		return
	}
	inner.OnComplete(func(_ context.Context, value any, cause error) {
		if cause != nil {
			f.commitReject(cause)
			return
		}
		f.commitResolve(value)
	})
}

func (f *futureImpl) commitSettle(status Status, value any, cause error) {
	f.locker.Lock()
	if f.status != Pending {
		f.locker.Unlock()
		return
	}
	f.status = status
	f.value = value
	f.cause = cause
	f.locker.Unlock()
	f.drain()
}

// runHandler 恐慌与返回错误统一为同一条失败通道。
func runHandler(handler func() (any, error)) (value any, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			value = nil
			err = recoveredCause(recovered)
		}
	}()
	value, err = handler()
	return
}

func recoveredCause(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return errors.New(fmt.Sprintf("async: panic recovered: %v", recovered), errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
}
