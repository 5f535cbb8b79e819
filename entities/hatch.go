package entities

import (
	"github.com/zooyer/dwgdash/core"
)

// Hatch 填充实体，只保留边界路径顶点，用于面积和包围盒计算
type Hatch struct {
	BaseEntity
	Pattern string // 组码 2
	Paths   [][]core.Point
}

func init() {
	Register("HATCH", func() Entity { return &Hatch{BaseEntity: BaseEntity{TypeName: "HATCH"}} })
}

func (h *Hatch) Parse(s *core.Scanner) error {
	var (
		x      float64
		inPath bool
	)
	for {
		t := s.LastTag
		switch t.Code {
		case 8:
			h.LayerName = t.AsString()
		case 62:
			h.Color = t.AsInt()
		case 2:
			h.Pattern = t.AsString()
		case 92:
			// 每个 92 开启一条新边界路径；之前的 10/20 是标高点，忽略
			h.Paths = append(h.Paths, nil)
			inPath = true
		case 10:
			x = t.AsFloat()
		case 20:
			if inPath && len(h.Paths) > 0 {
				last := len(h.Paths) - 1
				h.Paths[last] = append(h.Paths[last], core.Point{X: x, Y: t.AsFloat()})
			}
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (h *Hatch) BBox() core.BBox {
	box := core.EmptyBBox()
	for _, path := range h.Paths {
		for _, v := range path {
			box.Expand(v)
		}
	}
	return box
}
