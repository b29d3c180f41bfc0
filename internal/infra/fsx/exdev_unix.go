//go:build unix

package fsx

import (
	"errors"
	"syscall"
)

// os.Rename 的失败以 *os.LinkError 包装；errors.Is 会沿 Unwrap 链命中 EXDEV。
func isEXDEV(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
