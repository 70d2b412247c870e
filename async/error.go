package async

import "github.com/brickingsoft/errors"

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "async"
)

var (
	// ErrSelfResolution 未来采用自身，视为致命的配置错误而不是无限等待。
	ErrSelfResolution = errors.Define("future resolves itself", errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
)

// IsSelfResolution
// 是否为 ErrSelfResolution 错误
func IsSelfResolution(err error) bool {
	return errors.Is(err, ErrSelfResolution)
}
