package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestToDXF_ConverterMissing(t *testing.T) {
	// 指向不存在的二进制并隔离环境变量
	t.Setenv("ODA_CONVERTER_PATH", filepath.Join(t.TempDir(), "nope"))

	c := New(filepath.Join(t.TempDir(), "missing"), time.Second)
	_, err := c.ToDXF(context.Background(), filepath.Join(t.TempDir(), "a.dwg"))
	if err == nil {
		t.Fatal("缺少转换器应返回错误")
	}
	if !errors.Is(err, ErrConversion) {
		t.Errorf("应可识别为转换错误: %v", err)
	}
}

func TestToDXF_OutputMissing(t *testing.T) {
	dir := t.TempDir()

	// 伪转换器：直接成功退出但不产出文件
	fake := filepath.Join(dir, "ODAFileConverter")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal(err)
	}

	dwg := filepath.Join(dir, "plan.dwg")
	if err := os.WriteFile(dwg, []byte("dwg"), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(fake, time.Second)
	_, err := c.ToDXF(context.Background(), dwg)
	if !errors.Is(err, ErrConversion) {
		t.Errorf("无输出文件应报转换错误: %v", err)
	}
}

func TestToDXF_Success(t *testing.T) {
	dir := t.TempDir()

	// 伪转换器：在输入目录生成同名 dxf
	fake := filepath.Join(dir, "ODAFileConverter")
	script := "#!/bin/sh\ntouch \"$1/plan.dxf\"\n"
	if err := os.WriteFile(fake, []byte(script), 0755); err != nil {
		t.Fatal(err)
	}

	dwg := filepath.Join(dir, "plan.dwg")
	if err := os.WriteFile(dwg, []byte("dwg"), 0644); err != nil {
		t.Fatal(err)
	}

	c := New(fake, time.Second)
	dxf, err := c.ToDXF(context.Background(), dwg)
	if err != nil {
		t.Fatalf("转换失败: %v", err)
	}
	if dxf != filepath.Join(dir, "plan.dxf") {
		t.Errorf("输出路径不符: %s", dxf)
	}
}
