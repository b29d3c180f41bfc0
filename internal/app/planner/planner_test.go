package planner

import (
	"path/filepath"
	"testing"

	"github.com/davidwilemski/photosort/internal/domain"
)

func TestResolve_DateBucketedPath(t *testing.T) {
	d := domain.CalendarDate{Year: "2020", Month: "02", Day: "01"}
	dest := Resolve("/home/u/annex/photos", d, "IMG_1234.CR2")

	wantDir := filepath.Join("/home/u/annex/photos", "2020", "02", "01")
	if dest.Dir != wantDir {
		t.Fatalf("期望 dir=%q，实际=%q", wantDir, dest.Dir)
	}
	wantPath := filepath.Join(wantDir, "IMG_1234.CR2")
	if dest.Path != wantPath {
		t.Fatalf("期望 path=%q，实际=%q", wantPath, dest.Path)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	d := domain.CalendarDate{Year: "1999", Month: "12", Day: "31"}
	a := Resolve("/root", d, "a.jpg")
	b := Resolve("/root", d, "a.jpg")
	if a != b {
		t.Fatalf("两次计算结果不同：%+v 与 %+v", a, b)
	}
}

func TestResolve_TextSegmentsVerbatim(t *testing.T) {
	// 日期三段按文本进入路径，不做数值归一化。
	d := domain.CalendarDate{Year: "0001", Month: "99", Day: "XX"}
	dest := Resolve("/r", d, "x.jpg")
	want := filepath.Join("/r", "0001", "99", "XX", "x.jpg")
	if dest.Path != want {
		t.Fatalf("期望 path=%q，实际=%q", want, dest.Path)
	}
}
