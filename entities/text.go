package entities

import (
	"github.com/zooyer/dwgdash/core"
)

type Text struct {
	BaseEntity
	Position core.Point
	Content  string
	Height   float64
	Rotation float64
}

func init() {
	Register("TEXT", func() Entity { return &Text{BaseEntity: BaseEntity{TypeName: "TEXT"}} })
}

func (t *Text) Parse(s *core.Scanner) error {
	for {
		tag := s.LastTag
		switch tag.Code {
		case 8:
			t.LayerName = tag.AsString()
		case 62:
			t.Color = tag.AsInt()
		case 10:
			t.Position.X = tag.AsFloat()
		case 20:
			t.Position.Y = tag.AsFloat()
		case 30:
			t.Position.Z = tag.AsFloat()
		case 40:
			t.Height = tag.AsFloat()
		case 50:
			t.Rotation = tag.AsFloat()
		case 1:
			t.Content = tag.AsString()
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (t *Text) BBox() core.BBox {
	// 简化处理：文字以插入点作为包围盒
	return core.BBox{Min: t.Position, Max: t.Position}
}

// MText 多行文本，高度在组码 44（字符高度），部分文件只给 40
type MText struct {
	BaseEntity
	Position core.Point
	Content  string
	Height   float64
	Rotation float64
}

func init() {
	Register("MTEXT", func() Entity { return &MText{BaseEntity: BaseEntity{TypeName: "MTEXT"}} })
}

func (m *MText) Parse(s *core.Scanner) error {
	for {
		tag := s.LastTag
		switch tag.Code {
		case 8:
			m.LayerName = tag.AsString()
		case 62:
			m.Color = tag.AsInt()
		case 10:
			m.Position.X = tag.AsFloat()
		case 20:
			m.Position.Y = tag.AsFloat()
		case 30:
			m.Position.Z = tag.AsFloat()
		case 44:
			m.Height = tag.AsFloat()
		case 40:
			if m.Height == 0 {
				m.Height = tag.AsFloat()
			}
		case 50:
			m.Rotation = tag.AsFloat()
		case 3, 1:
			// 超长文本先以组码 3 按序分段，末段在组码 1，按出现顺序拼接
			m.Content += tag.AsString()
		}
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return nil
}

func (m *MText) BBox() core.BBox {
	return core.BBox{Min: m.Position, Max: m.Position}
}
