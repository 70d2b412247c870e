package promize

import (
	"context"
	"errors"
	"time"
)

const defaultMaxPending = 0

// Option
// 选项函数
type Option func(*Options) error

// Options
// 选项
type Options struct {
	// Ctx
	// 根上下文
	Ctx context.Context
	// Mode
	// 模式
	Mode Mode
	// MaxPending
	// 待执行回调上限，0 为不设上限。
	MaxPending int
	// CloseTimeout
	// 关闭超时时长
	CloseTimeout time.Duration
}

// WithMode
// 设置模式。
func WithMode(mode Mode) Option {
	return func(o *Options) error {
		switch mode {
		case LoopMode:
			o.Mode = LoopMode
			break
		case ManualMode:
			o.Mode = ManualMode
			break
		default:
			return errors.New("invalid mode")
		}
		return nil
	}
}

// WithContext
// 设置根上下文。
func WithContext(ctx context.Context) Option {
	return func(o *Options) error {
		if ctx == nil {
			return errors.New("context is nil")
		}
		o.Ctx = ctx
		return nil
	}
}

// WithMaxPending
// 设置待执行回调上限。超过上限时 Queue.Schedule 返回 ErrBusy。
func WithMaxPending(n int) Option {
	return func(o *Options) error {
		if n < 0 {
			n = defaultMaxPending
		}
		o.MaxPending = n
		return nil
	}
}

// WithCloseTimeout
// 设置关闭超时时长
func WithCloseTimeout(timeout time.Duration) Option {
	return func(o *Options) error {
		if timeout < 1 {
			timeout = 0
		}
		o.CloseTimeout = timeout
		return nil
	}
}
