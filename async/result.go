package async

import "context"

// Status
// 未来的状态
//
// 只会从 Pending 迁出一次：Pending 到 Fulfilled 或 Pending 到 Rejected，
// 且不可逆，也不会在 Fulfilled 与 Rejected 间迁移。
type Status int

const (
	// Pending 未定
	Pending Status = iota
	// Fulfilled 成功定案
	Fulfilled
	// Rejected 失败定案
	Rejected
)

func (s Status) String() string {
	switch s {
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "pending"
	}
}

// Result
// 定案记录
type Result interface {
	// Status 状态
	Status() Status
	// Succeed 是否成功
	Succeed() bool
	// Failed 是否失败
	Failed() bool
	// Value 成功内容
	Value() any
	// Cause 失败原因
	Cause() error
}

type result struct {
	status Status
	value  any
	cause  error
}

func (r result) Status() Status {
	return r.status
}

func (r result) Succeed() bool {
	return r.status == Fulfilled
}

func (r result) Failed() bool {
	return r.status == Rejected
}

func (r result) Value() any {
	return r.value
}

func (r result) Cause() error {
	return r.cause
}

// ResultHandler
// 结果处理器
//
// ctx: 来自构建 Future 时的上下文。
//
// value: 来自成功定案的内容。
//
// cause: 来自失败定案的原因。
type ResultHandler func(ctx context.Context, value any, cause error)
