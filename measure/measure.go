package measure

import (
	"github.com/zooyer/dwgdash"
	"github.com/zooyer/dwgdash/core"
)

// Bounds 包围盒的序列化形态，字段与前端约定一致
type Bounds struct {
	MinX   float64 `json:"min_x"`
	MinY   float64 `json:"min_y"`
	MinZ   float64 `json:"min_z"`
	MaxX   float64 `json:"max_x"`
	MaxY   float64 `json:"max_y"`
	MaxZ   float64 `json:"max_z"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

func NewBounds(box core.BBox) Bounds {
	box = box.Normalize()
	return Bounds{
		MinX:   box.Min.X,
		MinY:   box.Min.Y,
		MinZ:   box.Min.Z,
		MaxX:   box.Max.X,
		MaxY:   box.Max.Y,
		MaxZ:   box.Max.Z,
		Width:  box.Width(),
		Height: box.Height(),
		Depth:  box.Depth(),
	}
}

// Measurements 全图测量结果
type Measurements struct {
	TotalEntities   int         `json:"total_entities"`
	BoundingBox     Bounds      `json:"bounding_box"`
	TotalLineLength float64     `json:"total_line_length"`
	TotalClosedArea float64     `json:"total_closed_area"`
	Dimensions      []Dimension `json:"dimensions"`
}

// Measure 计算全图测量数据。
// 零实体图纸返回全零结果和退化包围盒，不是错误
func Measure(doc *dwgdash.Document) Measurements {
	var totalLength, totalArea float64
	for _, e := range doc.Entities {
		totalLength += Length(e)
		totalArea += Area(e)
	}

	return Measurements{
		TotalEntities:   len(doc.Entities),
		BoundingBox:     NewBounds(BoundingBox(doc.Entities)),
		TotalLineLength: totalLength,
		TotalClosedArea: totalArea,
		Dimensions:      ExtractDimensions(doc),
	}
}
