package spin

import (
	"runtime"
	"sync"
	"sync/atomic"
)

const maxBackoff = 8

// New
// 创建自旋锁
func New() sync.Locker {
	return &Locker{}
}

type Locker struct {
	status atomic.Int64
}

func (sl *Locker) Lock() {
	backoff := 1
	for !sl.TryLock() {
		for i := 0; i < backoff; i++ {
			runtime.Gosched()
		}
		if backoff < maxBackoff {
			backoff <<= 1
		}
	}
}

// TryLock
// 尝试加锁，失败时立刻返回。
func (sl *Locker) TryLock() bool {
	return sl.status.CompareAndSwap(0, 1)
}

func (sl *Locker) Unlock() {
	sl.status.Store(0)
}
