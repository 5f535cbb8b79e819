package dwgdash

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zooyer/dwgdash/core"
	"github.com/zooyer/dwgdash/entities"
)

// ErrParse 图纸内容损坏或无法识别
var ErrParse = errors.New("drawing parse error")

type DimStyle struct {
	Name      string
	Precision int     // 对应组码 271 DIMDEC，显示的小数位数
	ExLimit   float64 // 对应组码 44 DIMEXE，标注线超出延伸线的长度
	Scale     float64 // 对应组码 40 DIMSCALE，全局比例，影响所有标注特征
}

// LayerDef 图层表中的一条定义
type LayerDef struct {
	Name       string
	ColorIndex int  // 组码 62，负值表示图层关闭，存绝对值
	Visible    bool // 关闭(62 为负)或冻结均视为不可见
	Frozen     bool // 组码 70 低位
}

// Document 一张已解析图纸的不可变快照：
// 图层表按声明顺序保存，实体按出现顺序保存
type Document struct {
	Layers    []*LayerDef
	Entities  []entities.Entity
	DimStyles map[string]*DimStyle

	layerIndex map[string]*LayerDef
}

// LayerDef 按名称查找图层定义（大小写敏感），未声明返回 nil
func (d *Document) LayerDef(name string) *LayerDef {
	return d.layerIndex[name]
}

func (d *Document) addLayer(layer *LayerDef) {
	if layer.Name == "" {
		return
	}
	if _, exists := d.layerIndex[layer.Name]; exists {
		return
	}
	d.Layers = append(d.Layers, layer)
	d.layerIndex[layer.Name] = layer
}

func (d *Document) parseEntities(scanner *core.Scanner) {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 0 {
			ent := entities.CreateEntity(strings.ToUpper(tag.AsString()))
			if ent != nil {
				ent.Parse(scanner)
				d.Entities = append(d.Entities, ent)
				continue
			}
		}
		if !scanner.Next() {
			break
		}
	}
}

func (d *Document) parseTables(scanner *core.Scanner) {
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDSEC" {
			break
		}
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "TABLE" {
			scanner.Next()
			switch strings.ToUpper(scanner.LastTag.Value) {
			case "LAYER":
				d.parseLayers(scanner)
			case "DIMSTYLE":
				d.parseDimStyles(scanner)
			}
		}
	}
}

func (d *Document) parseLayers(scanner *core.Scanner) {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDTAB" {
			break
		}

		if tag.Code == 0 && strings.ToUpper(tag.Value) == "LAYER" {
			layer := &LayerDef{ColorIndex: 7, Visible: true}

			for scanner.Next() {
				t := scanner.LastTag
				if t.Code == 0 {
					break
				}
				switch t.Code {
				case 2: // 图层名称
					layer.Name = t.AsString()
				case 62: // 颜色，负值表示图层关闭
					color := t.AsInt()
					if color < 0 {
						layer.Visible = false
						color = -color
					}
					layer.ColorIndex = color
				case 70: // 低位为冻结标记，冻结按不可见处理
					if t.AsInt()&0x01 != 0 {
						layer.Frozen = true
						layer.Visible = false
					}
				}
			}

			d.addLayer(layer)
			continue
		}

		if !scanner.Next() {
			break
		}
	}
}

func (d *Document) parseDimStyles(scanner *core.Scanner) {
	var currentStyle *DimStyle
	for {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "ENDTAB" {
			break
		}

		if tag.Code == 0 && strings.ToUpper(tag.Value) == "DIMSTYLE" {
			currentStyle = &DimStyle{
				Precision: 0,
				ExLimit:   0.0,
				Scale:     1.0, // 默认为 1.0，防止乘法归零
			}

			for scanner.Next() {
				t := scanner.LastTag
				if t.Code == 0 {
					break
				}
				switch t.Code {
				case 2: // 样式名称
					currentStyle.Name = strings.ToUpper(t.AsString())
				case 271: // 精度
					currentStyle.Precision = t.AsInt()
				case 44: // 标注线超出延伸线长度 (DIMEXE)
					currentStyle.ExLimit = t.AsFloat()
				case 40: // 全局标注比例 (DIMSCALE)
					currentStyle.Scale = t.AsFloat()
				}
			}

			if currentStyle.Name != "" {
				d.DimStyles[currentStyle.Name] = currentStyle
			}

			if scanner.LastTag.Code == 0 && strings.ToUpper(scanner.LastTag.Value) == "DIMSTYLE" {
				continue
			}
		}

		if !scanner.Next() {
			break
		}
	}
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (doc *Document, err error) {
	var (
		scanner  = core.NewScanner(reader)
		document = &Document{
			Layers:     make([]*LayerDef, 0, 16),
			Entities:   make([]entities.Entity, 0, 1024),
			DimStyles:  make(map[string]*DimStyle),
			layerIndex: make(map[string]*LayerDef),
		}
	)

	for scanner.Next() {
		tag := scanner.LastTag
		if tag.Code == 0 && strings.ToUpper(tag.Value) == "SECTION" {
			if !scanner.Next() {
				break
			}
			sectionName := strings.ToUpper(scanner.LastTag.Value)
			switch sectionName {
			case "TABLES":
				document.parseTables(scanner)
			case "ENTITIES":
				document.parseEntities(scanner)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return document, nil
}
