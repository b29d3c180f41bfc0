// Package planner 把解析出的拍摄日期换算成归档目标路径。
package planner

import (
	"path/filepath"

	"github.com/davidwilemski/photosort/internal/domain"
)

// Resolve 计算归档目标：<root>/<年>/<月>/<日>/<name>。
// 纯函数：相同输入必得相同输出，不做任何 I/O。
// 调用方保证 name 是非空的文件基名（不含路径分隔符）。
func Resolve(root string, d domain.CalendarDate, name string) domain.Destination {
	dir := filepath.Join(root, d.Year, d.Month, d.Day)
	return domain.Destination{Dir: dir, Path: filepath.Join(dir, name)}
}
