// Package relocate 封装移动文件的两种策略：
// 文件系统 rename 与委托外部 git 的 git mv。
package relocate

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/davidwilemski/photosort/internal/infra/fsx"
)

// 策略名（配置取值，也是 Select 的枚举键）。
const (
	NameFile = "file"
	NameGit  = "git"
)

// Relocator 是移动策略的能力集：把 src 移动到 dst。
// 前提：目标父目录已就绪。实现不建目录，也不做任何回滚。
type Relocator interface {
	Name() string
	Relocate(ctx context.Context, src, dst string) error
}

// Select 按策略名枚举选择实现；除 NameGit 外一律回退 File。
func Select(name string) Relocator {
	switch name {
	case NameGit:
		return Git{}
	default:
		return File{}
	}
}

// File 用文件系统 rename 移动（同一文件系统内原子；跨盘直接失败）。
type File struct{}

func (File) Name() string { return NameFile }

func (File) Relocate(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fsx.Rename(src, dst)
}

// gitBinary 可替换，测试用桩可执行文件替代真实 git。
var gitBinary = "git"

// Git 委托外部 git 执行 git mv，保留版本库对重命名的跟踪。
// git 以非零退出码表达失败，stderr 被截获进 *GitError。
type Git struct{}

func (Git) Name() string { return NameGit }

func (Git) Relocate(ctx context.Context, src, dst string) error {
	cmd := exec.CommandContext(ctx, gitBinary, "mv", src, dst)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &GitError{Src: src, Dst: dst, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return nil
}

// GitError 表示 git mv 未能完成（非零退出或无法启动）。
type GitError struct {
	Src    string
	Dst    string
	Stderr string
	Err    error
}

func (e *GitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("git mv %q %q 失败：%v", e.Src, e.Dst, e.Err)
	}
	return fmt.Sprintf("git mv %q %q 失败：%v（stderr：%s）", e.Src, e.Dst, e.Err, e.Stderr)
}

func (e *GitError) Unwrap() error { return e.Err }
