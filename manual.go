package promize

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/brickingsoft/errors"
	"github.com/tdadadavid/Promize/pkg/rate/counter"
)

type manual struct {
	ctx        context.Context
	ctxCancel  context.CancelFunc
	locker     sync.Locker
	running    *atomic.Bool
	list       callbackList
	maxPending int64
	pending    *counter.Counter
}

func (q *manual) Context() context.Context {
	return q.ctx
}

func (q *manual) Schedule(callback Callback) (err error) {
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
	return
}

func (q *manual) Pending() (n int64) {
	n = q.pending.Value()
	return
}

func (q *manual) Running() bool {
	return q.running.Load()
}

func (q *manual) Drain() (err error) {
	for {
		q.locker.Lock()
		callback, ok := q.list.pop()
		q.locker.Unlock()
		if !ok {
			return
		}
		q.invoke(callback)
	}
}

func (q *manual) Close() (err error) {
	if ok := q.running.CompareAndSwap(true, false); !ok {
		err = errors.New("queue already closed", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
		return
	}
	defer q.ctxCancel()
	// 关闭前清空残余回调
	err = q.Drain()
	return
}

func (q *manual) start() {
	q.running.Store(true)
}

func (q *manual) invoke(callback Callback) {
	defer q.pending.Decr()
	// 回调恐慌不中断清空，其余回调继续执行。
	defer func() {
		_ = recover()
	}()
	callback()
}
