// Package run 把一次归档执行串成固定顺序的流水线。
package run

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/davidwilemski/photosort/internal/app/planner"
	"github.com/davidwilemski/photosort/internal/config"
	"github.com/davidwilemski/photosort/internal/domain"
	"github.com/davidwilemski/photosort/internal/header"
	"github.com/davidwilemski/photosort/internal/infra/fsx"
	"github.com/davidwilemski/photosort/internal/relocate"
)

// 流水线阶段名（出现在 StageError 与失败诊断里）。
const (
	StageRead  = "read"
	StageScan  = "scan"
	StageParse = "parse"
	StageMkdir = "mkdir"
	StageMove  = "move"
)

// StageError 标注失败发生在哪个阶段。
// 上层据此把失败归类为稳定的 error_code 并输出诊断。
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage=%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Stage 从 error 中提取失败阶段；若不是 *StageError 则返回空串。
func Stage(err error) string {
	var e *StageError
	if errors.As(err, &e) {
		return e.Stage
	}
	return ""
}

// Execute 执行一次完整归档：读取头部 → 扫描标记 → 解析日期 → 计算目标 →
// 确保目录 → 移动。
//
// 硬约束：
//   - 移动是最后一步：目标目录确认存在之前绝不执行移动
//   - 任何阶段失败或取消都放弃整条流水线；不做部分成功，也不回滚已建目录
//   - 一次调用只处理一个文件，阶段之间没有并发
func Execute(ctx context.Context, eff config.EffectiveConfig, rel relocate.Relocator) (domain.MoveResult, error) {
	res := domain.MoveResult{SrcAbs: eff.SourceAbs}

	if err := ctx.Err(); err != nil {
		return res, &StageError{Stage: StageRead, Err: err}
	}
	raw, err := header.ReadPrefix(eff.SourceAbs)
	if err != nil {
		return res, &StageError{Stage: StageRead, Err: err}
	}

	field, err := header.ExtractDateField(raw)
	if err != nil {
		return res, &StageError{Stage: StageScan, Err: err}
	}

	date, err := domain.ParseCalendarDate(field)
	if err != nil {
		return res, &StageError{Stage: StageParse, Err: err}
	}
	res.Date = date

	dest := planner.Resolve(eff.ArchiveRoot, date, filepath.Base(eff.SourceAbs))
	res.DstAbs = dest.Path

	if err := ctx.Err(); err != nil {
		return res, &StageError{Stage: StageMkdir, Err: err}
	}
	if err := fsx.EnsureDir(dest.Dir); err != nil {
		return res, &StageError{Stage: StageMkdir, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return res, &StageError{Stage: StageMove, Err: err}
	}
	if err := rel.Relocate(ctx, eff.SourceAbs, dest.Path); err != nil {
		return res, &StageError{Stage: StageMove, Err: err}
	}

	res.Moved = true
	return res, nil
}

// Code 把流水线错误映射为稳定的 error_code（按特异性从高到低匹配）。
func Code(err error) string {
	if header.IsFormat(err) {
		return domain.ErrCodeHeaderMismatch
	}
	var ee *domain.EncodingError
	if errors.As(err, &ee) {
		return domain.ErrCodeEncodingInvalid
	}
	var de *domain.DateFormatError
	if errors.As(err, &de) {
		return domain.ErrCodeDateInvalid
	}
	if fsx.IsPathTypeConflict(err) {
		return domain.ErrCodeTargetConflict
	}
	var ge *relocate.GitError
	if errors.As(err, &ge) || fsx.IsCrossDevice(err) || Stage(err) == StageMove {
		return domain.ErrCodeMoveFailed
	}
	return domain.ErrCodeIOFailed
}
