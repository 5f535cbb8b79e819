package entities

import (
	"github.com/zooyer/dwgdash/core"
)

type Arc struct {
	BaseEntity
	Center     core.Point
	Radius     float64
	StartAngle float64 // 组码 50，角度制，逆时针
	EndAngle   float64 // 组码 51
}

func init() {
	Register("ARC", func() Entity { return &Arc{BaseEntity: BaseEntity{TypeName: "ARC"}} })
}

func (a *Arc) Parse(s *core.Scanner) error {
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			a.LayerName = t.AsString()
		case 62:
			a.Color = t.AsInt()
		case 10:
			a.Center.X = t.AsFloat()
		case 20:
			a.Center.Y = t.AsFloat()
		case 30:
			a.Center.Z = t.AsFloat()
		case 40:
			a.Radius = t.AsFloat()
		case 50:
			a.StartAngle = t.AsFloat()
		case 51:
			a.EndAngle = t.AsFloat()
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

// BBox 按整圆范围计算：圆弧可能鼓出端点连线之外，
// 取 center ± radius 保证不漏掉可见部分
func (a *Arc) BBox() core.BBox {
	return core.BBox{
		Min: core.Point{X: a.Center.X - a.Radius, Y: a.Center.Y - a.Radius, Z: a.Center.Z},
		Max: core.Point{X: a.Center.X + a.Radius, Y: a.Center.Y + a.Radius, Z: a.Center.Z},
	}
}
