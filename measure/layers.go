package measure

import (
	"fmt"

	"github.com/zooyer/dwgdash"
)

// FallbackLayer 实体引用了未声明图层时归入的隐式图层
const FallbackLayer = "0"

// LayerStats 单个图层的统计
type LayerStats struct {
	Name        string  `json:"name"`
	ColorIndex  int     `json:"color"`
	ColorName   string  `json:"color_name"`
	Visible     bool    `json:"visible"`
	EntityCount int     `json:"entity_count"`
	LineLength  float64 `json:"line_length"`
	ClosedArea  float64 `json:"closed_area"`
}

// AggregateLayers 按图层汇总实体统计。
// 输出顺序为图纸中图层的声明顺序，零实体图层也保留一条；
// 引用未声明图层的实体归入隐式图层 "0"（若未声明则追加在最后）。
// 长度/面积与 Measure 使用同一套单实体贡献函数，保证分层求和等于全图总量
func AggregateLayers(doc *dwgdash.Document) []LayerStats {
	var (
		stats = make([]LayerStats, 0, len(doc.Layers)+1)
		index = make(map[string]int, len(doc.Layers)+1)
	)

	for _, layer := range doc.Layers {
		index[layer.Name] = len(stats)
		stats = append(stats, LayerStats{
			Name:       layer.Name,
			ColorIndex: layer.ColorIndex,
			ColorName:  ColorName(layer.ColorIndex),
			Visible:    layer.Visible,
		})
	}

	for _, e := range doc.Entities {
		name := e.Layer()
		i, ok := index[name]
		if !ok {
			// 未声明图层回退到 "0"
			if i, ok = index[FallbackLayer]; !ok {
				i = len(stats)
				index[FallbackLayer] = i
				stats = append(stats, LayerStats{
					Name:       FallbackLayer,
					ColorIndex: 7,
					ColorName:  ColorName(7),
					Visible:    true,
				})
			}
		}
		stats[i].EntityCount++
		stats[i].LineLength += Length(e)
		stats[i].ClosedArea += Area(e)
	}

	return stats
}

// 标准 AutoCAD 索引色表，表外索引由前端按中性灰显示，这里只负责命名
var colorNames = map[int]string{
	0:  "ByBlock",
	1:  "Red",
	2:  "Yellow",
	3:  "Green",
	4:  "Cyan",
	5:  "Blue",
	6:  "Magenta",
	7:  "White/Black",
	8:  "Dark Gray",
	9:  "Light Gray",
	10: "Light Red",
	11: "Light Yellow",
	12: "Light Green",
	13: "Light Cyan",
	14: "Light Blue",
	15: "Light Magenta",
}

// ColorName 索引色名称，透传原始索引值不做修正
func ColorName(index int) string {
	if index == 256 {
		return "ByLayer"
	}
	if name, ok := colorNames[index]; ok {
		return name
	}
	return fmt.Sprintf("Color %d", index)
}
