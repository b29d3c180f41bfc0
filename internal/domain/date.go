package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CalendarDate 是从头部日期字段解析出的拍摄日期。
// 三段按文本保存（不做数值范围校验），直接用作归档路径的目录段。
type CalendarDate struct {
	Year  string
	Month string
	Day   string
}

// String 以原始形态 YYYY:MM:DD 展示，仅用于诊断输出。
func (d CalendarDate) String() string {
	return d.Year + ":" + d.Month + ":" + d.Day
}

// EncodingError 表示日期字段字节不是合法文本（解码失败）。
type EncodingError struct {
	Raw []byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("日期字段不是合法文本：% X", e.Raw)
}

// DateFormatError 表示解码后的文本不满足 YYYY:MM:DD 形态。
type DateFormatError struct {
	Input string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("日期格式不合法：%q（期望 YYYY:MM:DD）", e.Input)
}

// ParseCalendarDate 把原始日期字段解码并校验为 CalendarDate。
//
// 规则（固定）：
//   - 字节必须是合法 UTF-8 文本，否则返回 *EncodingError；
//   - 按空白切分取第一段（头部里日期后面通常紧跟 HH:MM:SS 时间）；
//   - 第一段按 ':' 切分必须恰好 3 段且每段非空，否则返回 *DateFormatError。
func ParseCalendarDate(field []byte) (CalendarDate, error) {
	if !utf8.Valid(field) {
		raw := make([]byte, len(field))
		copy(raw, field)
		return CalendarDate{}, &EncodingError{Raw: raw}
	}
	s := string(field)
	token := ""
	if fs := strings.Fields(s); len(fs) > 0 {
		token = fs[0]
	}
	parts := strings.Split(token, ":")
	if len(parts) != 3 {
		return CalendarDate{}, &DateFormatError{Input: s}
	}
	for _, p := range parts {
		if p == "" {
			return CalendarDate{}, &DateFormatError{Input: s}
		}
	}
	return CalendarDate{Year: parts[0], Month: parts[1], Day: parts[2]}, nil
}
