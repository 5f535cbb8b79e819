package measure

import (
	"math"
	"strings"

	"github.com/zooyer/dwgdash"
	"github.com/zooyer/dwgdash/entities"
)

// Dimension 一条标注的提取结果。
// 测量值以源图纸记录为准，只做样式精度的显示归整，不做客户端重算
type Dimension struct {
	Kind         string     `json:"kind"`
	Layer        string     `json:"layer"`
	Text         string     `json:"text"`
	Value        float64    `json:"actual_measurement"`
	StyleName    string     `json:"dimstyle"`
	DefPoint     [2]float64 `json:"defpoint"`
	TextMidPoint [2]float64 `json:"text_midpoint"`
}

// ExtractDimensions 按出现顺序提取标注。
// 没有可用测量值的标注直接丢弃，不报错
func ExtractDimensions(doc *dwgdash.Document) []Dimension {
	dimensions := make([]Dimension, 0)

	for _, e := range doc.Entities {
		dim, ok := e.(*entities.Dimension)
		if !ok {
			continue
		}

		value, ok := dimensionValue(doc, dim)
		if !ok {
			continue
		}

		dimensions = append(dimensions, Dimension{
			Kind:         kindName(dim.DimType),
			Layer:        dim.Layer(),
			Text:         dim.Text,
			Value:        value,
			StyleName:    dim.StyleName,
			DefPoint:     [2]float64{dim.DefPoint.X, dim.DefPoint.Y},
			TextMidPoint: [2]float64{dim.TextMidPoint.X, dim.TextMidPoint.Y},
		})
	}

	return dimensions
}

// dimensionValue 标注数值读出；
// 组码 42 缺失且文字中提不出数字时整条丢弃，记录为 0 的测量值原样透传
func dimensionValue(doc *dwgdash.Document, dim *entities.Dimension) (float64, bool) {
	// 1. 如果有手动文字覆盖，直接按文字提取数字
	if dim.Text != "" && !strings.Contains(dim.Text, "<>") {
		if v := dim.GetCleanVal(); v != entities.MissingMeasurement {
			return v, true
		}
		return 0, false
	}

	// 2. 源图未记录测量值
	if dim.ActualMeasurement == entities.MissingMeasurement {
		return 0, false
	}

	// 3. 查找标注样式定义的精度
	precision := 0 // 默认取整
	if style, ok := doc.DimStyles[strings.ToUpper(dim.StyleName)]; ok {
		precision = style.Precision
	}

	// 4. 根据精度进行四舍五入
	p := math.Pow(10, float64(precision))

	return math.Round(dim.ActualMeasurement*p) / p, true
}

// kindName 组码 70 低 3 位到标注类型名
func kindName(dimType int) string {
	switch dimType {
	case 2, 5:
		return "angular"
	case 3:
		return "diameter"
	case 4:
		return "radius"
	case 6:
		return "ordinate"
	default:
		return "linear"
	}
}
