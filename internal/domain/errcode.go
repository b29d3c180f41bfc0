package domain

// 失败诊断用的稳定错误码（出现在 stderr 的 code= 字段里；不要改动已发布的取值）。
// 配置相关错误码在 internal/config 里定义。
const (
	ErrCodeHeaderMismatch  = "header_mismatch"
	ErrCodeEncodingInvalid = "encoding_invalid"
	ErrCodeDateInvalid     = "date_invalid"
	ErrCodeIOFailed        = "io_failed"
	ErrCodeTargetConflict  = "target_conflict"
	ErrCodeMoveFailed      = "move_failed"
)
