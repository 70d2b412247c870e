package promize

import (
	"context"
	"sync/atomic"

	"github.com/brickingsoft/errors"
	"github.com/tdadadavid/Promize/pkg/rate/counter"
	"github.com/tdadadavid/Promize/pkg/rate/spin"
)

type Mode int

const (
	// LoopMode
	// 循环模式。由单一协程按先进先出顺序执行回调，即合作式的单逻辑线程。
	LoopMode Mode = iota
	// ManualMode
	// 手动模式。回调只在 Queue.Drain 时在调用方协程上执行，用于确定性测试。
	ManualMode
)

// Queue
// 延迟工作队列
//
// Queue.Schedule 的回调不会被内联执行，而是在当前同步代码执行结束后
// 按先进先出顺序执行。同一队列上先调度的先执行。
type Queue interface {
	// Context
	// 根上下文，携带 Queue 本身。
	Context() context.Context
	// Schedule
	// 调度一个延迟回调。
	//
	// 队列已关闭则返回 ErrClosed，待执行回调已达上限则返回 ErrBusy。
	Schedule(callback Callback) (err error)
	// Pending
	// 已调度未完成的回调数量
	Pending() (n int64)
	// Running
	// 是否运行中
	Running() bool
	// Drain
	// 等待队列清空，包括清空期间新调度的回调。
	//
	// 手动模式下回调在调用方协程上执行。
	Drain() (err error)
	// Close
	// 关闭。停止接收新回调并等待在途回调结束。
	// 如果需要关闭超时，则使用 WithCloseTimeout 进行设置。
	Close() (err error)
}

// New
// 创建延迟工作队列
func New(options ...Option) (Queue, error) {
	opts := Options{
		Ctx:          nil,
		Mode:         LoopMode,
		MaxPending:   defaultMaxPending,
		CloseTimeout: 0,
	}
	for _, option := range options {
		if optErr := option(&opts); optErr != nil {
			return nil, errors.New("new queue failed", errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(optErr))
		}
	}
	rootCtx := opts.Ctx
	if rootCtx == nil {
		rootCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(rootCtx)

	switch opts.Mode {
	case LoopMode:
		queue := &loop{
			ctx:          nil,
			ctxCancel:    cancel,
			locker:       spin.New(),
			running:      new(atomic.Bool),
			maxPending:   int64(opts.MaxPending),
			pending:      counter.New(),
			closeTimeout: opts.CloseTimeout,
		}
		queue.ctx = With(ctx, queue)
		queue.start()
		return queue, nil
	case ManualMode:
		queue := &manual{
			ctx:        nil,
			ctxCancel:  cancel,
			locker:     spin.New(),
			running:    new(atomic.Bool),
			maxPending: int64(opts.MaxPending),
			pending:    counter.New(),
		}
		queue.ctx = With(ctx, queue)
		queue.start()
		return queue, nil
	default:
		cancel()
		return nil, errors.New("new queue failed", errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(errors.Define("invalid mode")))
	}
}
