// Package convert 通过外部 ODAFileConverter 把 DWG 转成 DXF。
// 转换器是黑盒子进程，这里只负责定位、调用和超时控制
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// ErrConversion 外部转换器失败或超时，文件视为不可用
var ErrConversion = errors.New("dwg conversion failed")

// 常见安装位置，按顺序探测
var fallbackPaths = []string{
	"/tmp/oda/ODAFileConverter",
	"/opt/oda/ODAFileConverter",
	"./ODAFileConverter",
}

type Converter struct {
	Path    string        // 转换器二进制路径，空则自动探测
	Timeout time.Duration // 单次转换超时
}

func New(path string, timeout time.Duration) *Converter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Converter{Path: path, Timeout: timeout}
}

// locate 按 显式路径 -> 环境变量 -> 常见位置 -> PATH 的顺序找转换器
func (c *Converter) locate() (string, error) {
	candidates := make([]string, 0, len(fallbackPaths)+2)
	if c.Path != "" {
		candidates = append(candidates, c.Path)
	}
	if env := os.Getenv("ODA_CONVERTER_PATH"); env != "" {
		candidates = append(candidates, env)
	}
	candidates = append(candidates, fallbackPaths...)

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if path, err := exec.LookPath("ODAFileConverter"); err == nil {
		return path, nil
	}

	return "", fmt.Errorf("%w: ODAFileConverter not found", ErrConversion)
}

// ToDXF 转换单个 DWG 文件，返回生成的 DXF 路径。
// 输出写到输入文件所在目录，文件名同名换后缀
func (c *Converter) ToDXF(ctx context.Context, dwgPath string) (string, error) {
	converter, err := c.locate()
	if err != nil {
		return "", err
	}

	inputDir := filepath.Dir(dwgPath)

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	// 参数: 输入目录 输出目录 输入版本 输出版本 输出格式 递归 审计
	cmd := exec.CommandContext(ctx, converter,
		inputDir,
		inputDir,
		"ACAD2018",
		"ACAD2018",
		"DXF",
		"0",
		"1",
	)

	output, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("%w: timed out after %s", ErrConversion, c.Timeout)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v: %s", ErrConversion, err, strings.TrimSpace(string(output)))
	}

	dxfPath := strings.TrimSuffix(dwgPath, filepath.Ext(dwgPath)) + ".dxf"
	if _, err := os.Stat(dxfPath); err != nil {
		return "", fmt.Errorf("%w: output file not created: %s", ErrConversion, dxfPath)
	}

	return dxfPath, nil
}
