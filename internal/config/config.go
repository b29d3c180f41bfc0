package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ErrCodeMissingHome 表示取不到用户主目录（HOME 未设置或为空）。
	ErrCodeMissingHome = "config_missing_home"
	// ErrCodeMissingSource 表示未提供源文件路径。
	ErrCodeMissingSource = "config_missing_source"
)

const (
	// DefaultRenamer 是移动策略的最终默认值（第二个位置参数缺省或不认识时）。
	DefaultRenamer = "file"
	// RenamerGit 是唯一会切换策略的取值。
	RenamerGit = "git"
)

// CLIArgs 承载 CLI 的两个位置参数（源文件路径 + 可选移动策略）。
type CLIArgs struct {
	Source  string
	Renamer string
}

// EffectiveConfig 是合并并做最小规范化后的最终配置（实现层直接消费，
// 不再做二次默认/优先级判断）。
type EffectiveConfig struct {
	// SourceAbs 是待归档文件的绝对路径（clean 过）。
	SourceAbs string
	// ArchiveRoot 是归档根目录：<用户主目录>/annex/photos。
	ArchiveRoot string
	// Renamer 是规范化后的移动策略名："git" 或 "file"。
	Renamer string
}

// Error 是配置阶段的结构化错误（带 error_code）。
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	switch e.Code {
	case ErrCodeMissingHome:
		if e.Err != nil {
			return fmt.Sprintf("%s：取不到用户主目录：%v", e.Code, e.Err)
		}
		return fmt.Sprintf("%s：取不到用户主目录", e.Code)
	case ErrCodeMissingSource:
		return fmt.Sprintf("%s：缺少源文件路径", e.Code)
	default:
		if e.Err != nil {
			return fmt.Sprintf("%s：%v", e.Code, e.Err)
		}
		return e.Code
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Code 从 error 中提取 error_code；若不是 *Error 则返回空串。
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// LoadEffective 把 CLI 参数与环境合并为最终配置。
//
// 规则（固定）：
//   - source：必填；相对路径以 cwd 为基准规范化为绝对路径
//   - 归档根：<用户主目录>/annex/photos；主目录取不到立即失败，不猜测
//   - renamer：去空白、小写后 "git" 保留，其余一律回退 "file"
func LoadEffective(cwd string, cli CLIArgs) (EffectiveConfig, error) {
	if strings.TrimSpace(cli.Source) == "" {
		return EffectiveConfig{}, &Error{Code: ErrCodeMissingSource}
	}

	cwdAbs, err := filepath.Abs(cwd)
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeMissingSource, Err: err}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return EffectiveConfig{}, &Error{Code: ErrCodeMissingHome, Err: err}
	}

	renamer := DefaultRenamer
	if strings.ToLower(strings.TrimSpace(cli.Renamer)) == RenamerGit {
		renamer = RenamerGit
	}

	return EffectiveConfig{
		SourceAbs:   absCleanFrom(cwdAbs, cli.Source),
		ArchiveRoot: filepath.Join(home, "annex", "photos"),
		Renamer:     renamer,
	}, nil
}

// absCleanFrom 以 base 为基准，把 p 变为 clean + absolute。
// - p 若已是绝对路径：直接 Clean
// - p 若是相对路径：Join(base, p) 后 Clean
func absCleanFrom(base, p string) string {
	p = filepath.Clean(strings.TrimSpace(p))
	if p == "" {
		return ""
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Clean(filepath.Join(base, p))
}
