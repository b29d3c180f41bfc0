// Package header 从图像文件的二进制头部定位并截取拍摄日期字段。
package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// PrefixSize 是从文件头读入内存的字节数上限；对观测过的格式，
	// 完整标记序列加日期字段落在首个 1024 字节之内。
	PrefixSize = 1024

	// DateFieldLen 是日期字段 YYYY:MM:DD 的字节长度。
	DateFieldLen = 10
)

const (
	markerByteOrder  = 0x49 // 'I'
	markerTIFFMagic  = 0x2A // '*'
	markerSeparator  = 0x25 // '%'
	markerBlockStart = 0x48 // 'H'
	gapBeforeDate    = 7
)

// blockTail 是 'H' 之后必须原样出现的 8 字节校验序列（重复块的后半段）。
var blockTail = []byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x48}

// FormatError 表示头部不满足既定的标记序列。
// Want/Got 携带期望与实际字节；Off 是失配步骤开始消费时的缓冲偏移。
type FormatError struct {
	What string
	Off  int
	Want []byte
	Got  []byte
}

func (e *FormatError) Error() string {
	switch {
	case len(e.Want) == 0:
		return fmt.Sprintf("头部在 %s 处截断（offset=%d，剩余 %d 字节）", e.What, e.Off, len(e.Got))
	case len(e.Got) == 0:
		return fmt.Sprintf("头部标记缺失：%s（自 offset=%d 起未出现，期望 % X）", e.What, e.Off, e.Want)
	default:
		return fmt.Sprintf("头部标记不匹配：%s（offset=%d，期望 % X，实际 %s）", e.What, e.Off, e.Want, hexBytes(e.Got))
	}
}

// IsFormat 判断 err 是否为头部格式失配。
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// hexBytes 展示字节串的十六进制形态，超长时截断，避免把整段头部打进错误信息。
func hexBytes(b []byte) string {
	const max = 16
	if len(b) > max {
		return fmt.Sprintf("% X …（共 %d 字节）", b[:max], len(b))
	}
	return fmt.Sprintf("% X", b)
}

// cursor 是头部缓冲上的单向游标：只前进，不回退。
type cursor struct {
	buf []byte
	pos int
}

// readUntil 向前消费字节，直到（含）首个 delim。
// 返回消费的字节；找不到 delim 时消费到末尾并返回 false。
func (c *cursor) readUntil(delim byte) ([]byte, bool) {
	i := bytes.IndexByte(c.buf[c.pos:], delim)
	if i < 0 {
		got := c.buf[c.pos:]
		c.pos = len(c.buf)
		return got, false
	}
	got := c.buf[c.pos : c.pos+i+1]
	c.pos += i + 1
	return got, true
}

// readN 消费接下来的 n 字节；剩余不足时消费到末尾并返回 false。
func (c *cursor) readN(n int) ([]byte, bool) {
	if c.pos+n > len(c.buf) {
		got := c.buf[c.pos:]
		c.pos = len(c.buf)
		return got, false
	}
	got := c.buf[c.pos : c.pos+n]
	c.pos += n
	return got, true
}

// skipTo 向前扫描直到（含）首个 delim，之前的字节全部吸收。
func (c *cursor) skipTo(delim byte, what string) error {
	start := c.pos
	if _, ok := c.readUntil(delim); !ok {
		return &FormatError{What: what, Off: start, Want: []byte{delim}}
	}
	return nil
}

// expectNext 要求下一个字节恰好是 delim（消费数必须为 1）。
func (c *cursor) expectNext(delim byte, what string) error {
	start := c.pos
	got, ok := c.readUntil(delim)
	if !ok {
		return &FormatError{What: what, Off: start, Want: []byte{delim}}
	}
	if len(got) != 1 {
		return &FormatError{What: what, Off: start, Want: []byte{delim}, Got: got}
	}
	return nil
}

// ReadPrefix 从文件头一次性读取至多 PrefixSize 字节（文件更短时读到末尾为止）。
func ReadPrefix(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, PrefixSize)
	n, err := io.ReadFull(f, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return buf[:n], nil
	}
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// ExtractDateField 在 raw 上按固定标记序列定位并截取 10 字节日期字段，
// 返回独立副本。
//
// 定位走的是固定序列（对观测过的 JPEG/CR2 有效），不是通用的 EXIF/TIFF
// 标签目录解析：任何偏离都返回 *FormatError 直接失败，不做猜测。
//
//	1) 跳到首个 'I'（吸收 JPEG 相对 CR2 多出的任意前导字节）
//	2) 紧邻第二个 'I'，构成小端字节序标记 "II"
//	3) 紧邻 '*'（TIFF 魔数 0x002A 的低位字节）
//	4) 跳到下一个 '%'
//	5) 跳到下一个 'H'（重复 16 字节块的起点）
//	6) 紧随 8 字节等于 00 00 00 01 00 00 00 48
//	7) 前进 7 字节（固定间隔）
//	8) 接下来 10 字节即日期字段
func ExtractDateField(raw []byte) ([]byte, error) {
	c := &cursor{buf: raw}

	// 1) 任意前缀后的首个 'I'
	if err := c.skipTo(markerByteOrder, "字节序标记 'I'"); err != nil {
		return nil, err
	}
	// 2) 第二个 'I' 必须紧邻
	if err := c.expectNext(markerByteOrder, "字节序标记第二个 'I'"); err != nil {
		return nil, err
	}
	// 3) '*' 必须紧邻
	if err := c.expectNext(markerTIFFMagic, "TIFF 魔数 '*'"); err != nil {
		return nil, err
	}
	// 4) 跳到 '%'
	if err := c.skipTo(markerSeparator, "分隔标记 '%'"); err != nil {
		return nil, err
	}
	// 5) 跳到 'H'
	if err := c.skipTo(markerBlockStart, "重复块起始 'H'"); err != nil {
		return nil, err
	}
	// 6) 8 字节校验序列必须逐字节一致
	start := c.pos
	got, ok := c.readN(len(blockTail))
	if !ok || !bytes.Equal(got, blockTail) {
		return nil, &FormatError{What: "重复块校验序列", Off: start, Want: blockTail, Got: got}
	}
	// 7) 固定间隔
	start = c.pos
	if got, ok := c.readN(gapBeforeDate); !ok {
		return nil, &FormatError{What: "日期前间隔", Off: start, Got: got}
	}
	// 8) 日期字段
	start = c.pos
	field, ok := c.readN(DateFieldLen)
	if !ok {
		return nil, &FormatError{What: "日期字段", Off: start, Got: field}
	}
	out := make([]byte, DateFieldLen)
	copy(out, field)
	return out, nil
}
