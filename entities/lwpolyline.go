package entities

import (
	"github.com/zooyer/dwgdash/core"
)

type LWPolyline struct {
	BaseEntity
	Vertices []core.Point
	Closed   bool // 组码 70 低位
}

func init() {
	Register("LWPOLYLINE", func() Entity { return &LWPolyline{BaseEntity: BaseEntity{TypeName: "LWPOLYLINE"}} })
}

func (l *LWPolyline) Parse(s *core.Scanner) error {
	var x float64
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			l.LayerName = t.AsString()
		case 62:
			l.Color = t.AsInt()
		case 70:
			l.Closed = t.AsInt()&0x01 != 0
		case 10:
			x = t.AsFloat()
		case 20:
			l.Vertices = append(l.Vertices, core.Point{X: x, Y: t.AsFloat()})
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

// BBox 无顶点时返回空包围盒，合成时不产生坐标贡献
func (l *LWPolyline) BBox() core.BBox {
	box := core.EmptyBBox()
	for _, v := range l.Vertices {
		box.Expand(v)
	}
	return box
}
