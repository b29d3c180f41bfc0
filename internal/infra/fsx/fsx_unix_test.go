//go:build unix

package fsx

import (
	"os"
	"syscall"
	"testing"
)

func TestRename_CrossDeviceEXDEV(t *testing.T) {
	old := renameFunc
	renameFunc = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	}
	defer func() { renameFunc = old }()

	err := Rename("/photos/a.jpg", "/annex/photos/a.jpg")
	if err == nil {
		t.Fatalf("期望错误，但得到 nil")
	}
	if !IsCrossDevice(err) {
		t.Fatalf("期望 CrossDeviceError，实际：%T %v", err, err)
	}
}

func TestRename_BareEXDEV(t *testing.T) {
	// 没有 LinkError 包装的裸 EXDEV 也必须被识别。
	old := renameFunc
	renameFunc = func(oldpath, newpath string) error {
		return syscall.EXDEV
	}
	defer func() { renameFunc = old }()

	if err := Rename("/a", "/b"); !IsCrossDevice(err) {
		t.Fatalf("期望 CrossDeviceError，实际：%v", err)
	}
}
