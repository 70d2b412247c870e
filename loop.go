package promize

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brickingsoft/errors"
	"github.com/tdadadavid/Promize/pkg/rate/counter"
)

type loop struct {
	ctx          context.Context
	ctxCancel    context.CancelFunc
	locker       sync.Locker
	running      *atomic.Bool
	list         callbackList
	wake         chan struct{}
	maxPending   int64
	pending      *counter.Counter
	closeTimeout time.Duration
	done         chan struct{}
}

func (q *loop) Context() context.Context {
	return q.ctx
}

func (q *loop) Schedule(callback Callback) (err error) {
	if callback == nil {
		err = errors.New("callback is nil", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
		return
	}
	if !q.running.Load() {
		err = errors.From(ErrClosed)
		return
	}
	if max := q.maxPending; max > 0 && q.pending.Value() >= max {
		err = errors.From(ErrBusy)
		return
	}
	q.pending.Incr()
	q.locker.Lock()
	q.list.push(callback)
	q.locker.Unlock()
	q.notify()
	return
}

func (q *loop) Pending() (n int64) {
	n = q.pending.Value()
	return
}

func (q *loop) Running() bool {
	return q.running.Load()
}

func (q *loop) Drain() (err error) {
	if waitErr := q.pending.WaitDownTo(q.ctx, 0); waitErr != nil {
		err = errors.New("drain queue failed", errors.WithMeta(errMetaPkgKey, errMetaPkgVal), errors.WithWrap(waitErr))
		return
	}
	return
}

func (q *loop) Close() (err error) {
	if ok := q.running.CompareAndSwap(true, false); !ok {
		err = errors.New("queue already closed", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
		return
	}

	q.notify()

	ctx := q.ctx
	cancel := q.ctxCancel
	defer cancel()

	if closeTimeout := q.closeTimeout; closeTimeout > 0 {
		waitCtx, waitCtxCancel := context.WithTimeout(ctx, closeTimeout)
		waitErr := q.pending.WaitDownTo(waitCtx, 0)
		waitCtxCancel()
		if waitErr != nil {
			err = errors.From(ErrCloseFailed, errors.WithWrap(waitErr))
			return
		}
		return
	}
	if waitErr := q.pending.WaitDownTo(ctx, 0); waitErr != nil {
		err = errors.From(ErrCloseFailed, errors.WithWrap(waitErr))
		return
	}
	return
}

func (q *loop) start() {
	q.running.Store(true)
	q.wake = make(chan struct{}, 1)
	q.done = make(chan struct{})
	go q.run()
}

func (q *loop) run() {
	defer close(q.done)
	for {
		q.locker.Lock()
		callback, ok := q.list.pop()
		q.locker.Unlock()
		if ok {
			q.invoke(callback)
			continue
		}
		if !q.running.Load() {
			return
		}
		select {
		case <-q.wake:
		case <-q.ctx.Done():
			return
		}
	}
}

func (q *loop) invoke(callback Callback) {
	defer q.pending.Decr()
	// 回调恐慌不终止队列，其余回调继续执行。
	defer func() {
		_ = recover()
	}()
	callback()
}

func (q *loop) notify() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}
