package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zooyer/dwgdash"
	"github.com/zooyer/dwgdash/convert"
)

// ErrUnsupportedFormat 扩展名不是 .dxf/.dwg
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Loader 图纸装载器：DXF 直接解析，DWG 先落盘交给外部转换器
type Loader struct {
	Converter *convert.Converter
	Dir       string // DWG 暂存目录
}

func NewLoader(converter *convert.Converter, dir string) *Loader {
	return &Loader{Converter: converter, Dir: dir}
}

// Load 把上传内容解析为不可变 Document，返回文档和文件类型(DXF/DWG)
func (l *Loader) Load(ctx context.Context, data []byte, filename string) (*dwgdash.Document, string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".dxf":
		doc, err := dwgdash.Load(bytes.NewReader(data))
		if err != nil {
			return nil, "", err
		}
		return doc, "DXF", nil
	case ".dwg":
		doc, err := l.loadDWG(ctx, data)
		if err != nil {
			return nil, "", err
		}
		return doc, "DWG", nil
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

func (l *Loader) loadDWG(ctx context.Context, data []byte) (*dwgdash.Document, error) {
	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	file, err := os.CreateTemp(l.Dir, "upload-*.dwg")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	dwgPath := file.Name()
	defer os.Remove(dwgPath)

	if _, err := file.Write(data); err != nil {
		file.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	dxfPath, err := l.Converter.ToDXF(ctx, dwgPath)
	if err != nil {
		return nil, err
	}
	defer os.Remove(dxfPath)

	return dwgdash.Open(dxfPath)
}
