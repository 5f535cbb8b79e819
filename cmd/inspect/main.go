package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/dwgdash"
	"github.com/zooyer/dwgdash/core"
	"github.com/zooyer/dwgdash/measure"
	"github.com/zooyer/golib/xmath"
	"github.com/zooyer/golib/xos"
)

const (
	clusterGap = 20   // 图形簇合并容错(间距不超过则认为同一簇)
	epsilon    = 1e-6 // 浮点数对比精度误差
)

func renderBool(b bool) string {
	if b {
		return "✅"
	}

	return "❌"
}

func pickFile() (string, error) {
	if len(os.Args) >= 2 {
		return os.Args[1], nil
	}

	// 没有拖入文件时弹出选择框
	return zenity.SelectFile(
		zenity.Title("选择图纸文件"),
		zenity.FileFilters{
			{Name: "CAD 图纸", Patterns: []string{"*.dxf", "*.dwg"}, CaseFold: true},
		},
	)
}

func main() {
	defer xos.PauseExit()

	path, err := pickFile()
	if err != nil {
		fmt.Println("请把图纸文件拖入该程序上执行！")
		os.Exit(1)
	}

	doc, err := dwgdash.Open(path)
	if err != nil {
		fmt.Println("图纸解析失败:", err)
		os.Exit(1)
	}

	var (
		m     = measure.Measure(doc)
		stats = measure.AggregateLayers(doc)
		box   = m.BoundingBox
	)

	fmt.Printf("开始处理: %s (%d 个实体)...\n", filepath.Base(path), m.TotalEntities)
	fmt.Printf("图纸范围: RECTANG %.2f,%.2f %.2f,%.2f | %.2f x %.2f\n",
		box.MinX, box.MinY, box.MaxX, box.MaxY, box.Width, box.Height,
	)
	fmt.Printf("总线长: %.2f | 总面积: %.2f | 标注: %d 条\n",
		m.TotalLineLength, m.TotalClosedArea, len(m.Dimensions),
	)

	// 散线聚簇，估算独立图形数量
	var boxes []core.BBox
	for _, e := range doc.Entities {
		if b := e.BBox(); !b.Empty() {
			boxes = append(boxes, b)
		}
	}
	fmt.Printf("图形簇: %d 个\n", len(measure.MergeBoxes(boxes, clusterGap)))

	// 校验分层合计与全图总量一致
	var (
		sumCount           int
		sumLength, sumArea float64
	)
	for _, s := range stats {
		sumCount += s.EntityCount
		sumLength += s.LineLength
		sumArea += s.ClosedArea
	}
	verify := sumCount == m.TotalEntities &&
		xmath.Equal(sumLength, m.TotalLineLength, epsilon) &&
		xmath.Equal(sumArea, m.TotalClosedArea, epsilon)
	fmt.Println("分层合计校验:", renderBool(verify))
	fmt.Println()

	for i, s := range stats {
		fmt.Printf("[图层.%02d] %-16s | 颜色:%-13s | 可见:%s | 实体:%4d | 线长:%12.2f | 面积:%12.2f\n",
			i+1, s.Name, s.ColorName, renderBool(s.Visible), s.EntityCount, s.LineLength, s.ClosedArea,
		)
	}
	fmt.Println()

	for i, d := range m.Dimensions {
		fmt.Printf("[标注.%02d] %-8s | 图层:%-16s | 样式:%-10s | 值:%.2f\n",
			i+1, d.Kind, d.Layer, d.StyleName, d.Value,
		)
	}

	// 写入 CSV 报告
	const header = "图层,颜色,可见,实体数,线长,面积\n"
	var filename = strings.TrimSuffix(path, filepath.Ext(path)) + ".csv"
	if err = os.WriteFile(filename, []byte(header), 0644); err != nil {
		panic(err)
	}

	for _, s := range stats {
		var line = fmt.Sprintf("%s,%s,%s,%d,%.4f,%.4f\n",
			s.Name, s.ColorName, renderBool(s.Visible), s.EntityCount, s.LineLength, s.ClosedArea,
		)
		if err = xos.AppendFile(filename, []byte(line), 0644); err != nil {
			panic(err)
		}
	}

	var stat = fmt.Sprintf("合计,,,%d,%.4f,%.4f\n", sumCount, sumLength, sumArea)
	if err = xos.AppendFile(filename, []byte(stat), 0644); err != nil {
		panic(err)
	}

	fmt.Println()
	fmt.Println("写入文件:", filename)
}
