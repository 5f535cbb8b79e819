package entities

import (
	"regexp"
	"strconv"

	"github.com/zooyer/dwgdash/core"
)

// MissingMeasurement 组码 42 缺失时 ActualMeasurement 的占位值
const MissingMeasurement = -1

type Dimension struct {
	BaseEntity
	DimType           int        // 组码 70 (关键：区分标注类型)
	StyleName         string     // 组码 3 (标注样式名称，用于关联 TABLES)
	ActualMeasurement float64    // 组码 42
	Text              string     // 组码 1
	Angle             float64    // 组码 50
	TextMidPoint      core.Point // 组码 11 (中间的点)
	DefPoint          core.Point // 组码 10 (标注线起点)
	MeasureStart      core.Point // 组码 13 (被测量的起点)
	MeasureEnd        core.Point // 组码 14 (被测量的终点)

	// 各点是否在源文件中出现过，未出现的点不参与包围盒
	hasDefPoint     bool
	hasTextMidPoint bool
	hasMeasureStart bool
	hasMeasureEnd   bool
}

func init() {
	Register("DIMENSION", func() Entity {
		return &Dimension{
			BaseEntity:        BaseEntity{TypeName: "DIMENSION"},
			ActualMeasurement: MissingMeasurement, // 源图未记录测量值
		}
	})
}

func (d *Dimension) Parse(scanner *core.Scanner) error {
	for {
		tag := scanner.LastTag
		switch tag.Code {
		case 8:
			d.LayerName = tag.AsString()
		case 62:
			d.Color = tag.AsInt()
		case 3:
			// 核心：读取标注样式名称
			d.StyleName = tag.AsString()
		case 1:
			d.Text = tag.AsString()
		case 42:
			d.ActualMeasurement = tag.AsFloat()
		case 50:
			d.Angle = tag.AsFloat()
		// 解析核心点坐标
		case 10:
			d.DefPoint.X = tag.AsFloat()
			d.hasDefPoint = true
		case 20:
			d.DefPoint.Y = tag.AsFloat()
			d.hasDefPoint = true
		case 11:
			d.TextMidPoint.X = tag.AsFloat()
			d.hasTextMidPoint = true
		case 21:
			d.TextMidPoint.Y = tag.AsFloat()
			d.hasTextMidPoint = true
		case 13:
			d.MeasureStart.X = tag.AsFloat()
			d.hasMeasureStart = true
		case 23:
			d.MeasureStart.Y = tag.AsFloat()
			d.hasMeasureStart = true
		case 14:
			d.MeasureEnd.X = tag.AsFloat()
			d.hasMeasureEnd = true
		case 24:
			d.MeasureEnd.Y = tag.AsFloat()
			d.hasMeasureEnd = true
		case 70:
			// 组码 70 包含了很多信息，我们只需要低 3 位来判定类型
			d.DimType = tag.AsInt() & 0x07
		}
		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

// BBox 标注的包围盒只包含出现过的定义点，缺失的点不把原点拉进范围
func (d *Dimension) BBox() core.BBox {
	box := core.EmptyBBox()
	points := []struct {
		has bool
		p   core.Point
	}{
		{d.hasDefPoint, d.DefPoint},
		{d.hasTextMidPoint, d.TextMidPoint},
		{d.hasMeasureStart, d.MeasureStart},
		{d.hasMeasureEnd, d.MeasureEnd},
	}
	for _, dp := range points {
		if dp.has {
			box.Expand(dp.p)
		}
	}
	return box
}

// GetCleanVal 正则提取数值
func (d *Dimension) GetCleanVal() float64 {
	val := d.ActualMeasurement
	if val <= 0 && d.Text != "" {
		reFormat := regexp.MustCompile(`\\[A-Z].*?;`)
		cleanText := reFormat.ReplaceAllString(d.Text, "")
		reNum := regexp.MustCompile(`[0-9.]+`)
		if match := reNum.FindString(cleanText); match != "" {
			parsed, _ := strconv.ParseFloat(match, 64)
			val = parsed
		}
	}
	return val
}
