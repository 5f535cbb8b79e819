package measure

import (
	"github.com/zooyer/dwgdash"
	"github.com/zooyer/dwgdash/entities"
)

// PreviewRecord 预览用的轻量几何记录：
// 类型标签 + 图层 + 原始颜色索引 + 按类型的最小数值载荷
type PreviewRecord struct {
	Type  string `json:"type"`
	Layer string `json:"layer"`
	Color int    `json:"color"`
	Data  any    `json:"data"`
}

type LineData struct {
	Start [2]float64 `json:"start"`
	End   [2]float64 `json:"end"`
}

type PolylineData struct {
	Points [][2]float64 `json:"points"`
	Closed bool         `json:"closed"`
}

type CircleData struct {
	Center [2]float64 `json:"center"`
	Radius float64    `json:"radius"`
}

type ArcData struct {
	Center     [2]float64 `json:"center"`
	Radius     float64    `json:"radius"`
	StartAngle float64    `json:"start_angle"`
	EndAngle   float64    `json:"end_angle"`
}

type TextData struct {
	Position [2]float64 `json:"position"`
	Text     string     `json:"text"`
	Height   float64    `json:"height"`
	Rotation float64    `json:"rotation"`
}

type HatchData struct {
	Paths [][][2]float64 `json:"paths"`
}

// PreviewData 一次预览序列化的完整输出
type PreviewData struct {
	BoundingBox Bounds          `json:"bounding_box"`
	Records     []PreviewRecord `json:"entities"`
}

// Preview 把实体集投影为渲染载荷。
// 纯投影：逐实体一条记录、保持输入顺序、不做可见性过滤，
// 退化实体照常输出由渲染方自行跳过；标注实体不属于渲染集，跳过
func Preview(doc *dwgdash.Document) PreviewData {
	records := make([]PreviewRecord, 0, len(doc.Entities))

	for _, e := range doc.Entities {
		data := previewData(e)
		if data == nil {
			continue
		}
		records = append(records, PreviewRecord{
			Type:  e.Type(),
			Layer: e.Layer(),
			Color: e.ColorIndex(),
			Data:  data,
		})
	}

	return PreviewData{
		BoundingBox: NewBounds(BoundingBox(doc.Entities)),
		Records:     records,
	}
}

func previewData(e entities.Entity) any {
	switch e := e.(type) {
	case *entities.Line:
		return LineData{
			Start: [2]float64{e.Start.X, e.Start.Y},
			End:   [2]float64{e.End.X, e.End.Y},
		}
	case *entities.LWPolyline:
		points := make([][2]float64, 0, len(e.Vertices))
		for _, v := range e.Vertices {
			points = append(points, [2]float64{v.X, v.Y})
		}
		return PolylineData{Points: points, Closed: e.Closed}
	case *entities.Circle:
		return CircleData{
			Center: [2]float64{e.Center.X, e.Center.Y},
			Radius: e.Radius,
		}
	case *entities.Arc:
		return ArcData{
			Center:     [2]float64{e.Center.X, e.Center.Y},
			Radius:     e.Radius,
			StartAngle: e.StartAngle,
			EndAngle:   e.EndAngle,
		}
	case *entities.Text:
		return TextData{
			Position: [2]float64{e.Position.X, e.Position.Y},
			Text:     e.Content,
			Height:   e.Height,
			Rotation: e.Rotation,
		}
	case *entities.MText:
		return TextData{
			Position: [2]float64{e.Position.X, e.Position.Y},
			Text:     e.Content,
			Height:   e.Height,
			Rotation: e.Rotation,
		}
	case *entities.Hatch:
		paths := make([][][2]float64, 0, len(e.Paths))
		for _, path := range e.Paths {
			points := make([][2]float64, 0, len(path))
			for _, v := range path {
				points = append(points, [2]float64{v.X, v.Y})
			}
			paths = append(paths, points)
		}
		return HatchData{Paths: paths}
	}
	return nil
}
