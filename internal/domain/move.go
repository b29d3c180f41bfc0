package domain

// Destination 是解析出的归档目标：Dir 为按日期分桶的父目录，Path 为最终文件路径。
// 纯路径计算的产物；目录是否存在由执行端负责。
type Destination struct {
	Dir  string
	Path string
}

// MoveResult 描述一次归档的结果，供 CLI 展示。
// 失败时保留已完成阶段填充的字段，便于诊断。
type MoveResult struct {
	SrcAbs string
	DstAbs string
	Date   CalendarDate
	Moved  bool
}
