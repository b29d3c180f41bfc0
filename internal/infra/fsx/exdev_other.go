//go:build !unix

package fsx

// 非 unix 平台没有 EXDEV 语义；rename 失败按普通错误上抛。
func isEXDEV(error) bool { return false }
