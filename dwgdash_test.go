package dwgdash

import (
	"errors"
	"strings"
	"testing"

	"github.com/zooyer/dwgdash/entities"
)

const sampleDXF = `0
SECTION
2
TABLES
0
TABLE
2
LAYER
0
LAYER
2
WALLS
62
1
70
0
0
LAYER
2
DIMS
62
-3
70
0
0
LAYER
2
FROZEN
62
5
70
1
0
ENDTAB
0
TABLE
2
DIMSTYLE
0
DIMSTYLE
2
ISO-25
271
2
40
1.5
44
1.25
0
ENDTAB
0
ENDSEC
0
SECTION
2
ENTITIES
0
LWPOLYLINE
8
WALLS
90
4
70
1
10
0
20
0
10
10
20
0
10
10
20
10
10
0
20
10
0
LINE
8
DIMS
10
0
20
0
11
3
21
4
0
DIMENSION
8
DIMS
3
ISO-25
42
10.004
70
32
10
0
20
12
11
5
21
12
0
ENDSEC
0
EOF
`

func TestLoad(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}

	// 图层表按声明顺序
	if len(doc.Layers) != 3 {
		t.Fatalf("图层数不符: %d", len(doc.Layers))
	}
	if doc.Layers[0].Name != "WALLS" || doc.Layers[1].Name != "DIMS" || doc.Layers[2].Name != "FROZEN" {
		t.Errorf("图层顺序不符: %+v", doc.Layers)
	}

	walls := doc.LayerDef("WALLS")
	if walls == nil || walls.ColorIndex != 1 || !walls.Visible {
		t.Errorf("WALLS 图层不符: %+v", walls)
	}

	// 负颜色值表示图层关闭，存绝对值
	dims := doc.LayerDef("DIMS")
	if dims == nil || dims.ColorIndex != 3 || dims.Visible {
		t.Errorf("DIMS 图层不符: %+v", dims)
	}

	// 冻结图层按不可见处理
	frozen := doc.LayerDef("FROZEN")
	if frozen == nil || !frozen.Frozen || frozen.Visible {
		t.Errorf("FROZEN 图层不符: %+v", frozen)
	}

	if doc.LayerDef("NOPE") != nil {
		t.Error("未声明图层应返回 nil")
	}

	// 标注样式
	style := doc.DimStyles["ISO-25"]
	if style == nil || style.Precision != 2 || style.Scale != 1.5 || style.ExLimit != 1.25 {
		t.Errorf("标注样式不符: %+v", style)
	}

	// 实体按出现顺序
	if len(doc.Entities) != 3 {
		t.Fatalf("实体数不符: %d", len(doc.Entities))
	}
	if _, ok := doc.Entities[0].(*entities.LWPolyline); !ok {
		t.Errorf("第一个实体应为多段线: %T", doc.Entities[0])
	}
	if _, ok := doc.Entities[2].(*entities.Dimension); !ok {
		t.Errorf("第三个实体应为标注: %T", doc.Entities[2])
	}
}

func TestLoadEmpty(t *testing.T) {
	doc, err := Load(strings.NewReader("0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF\n"))
	if err != nil {
		t.Fatalf("空图纸不是错误: %v", err)
	}
	if len(doc.Entities) != 0 || len(doc.Layers) != 0 {
		t.Errorf("空图纸应无实体无图层: %d/%d", len(doc.Entities), len(doc.Layers))
	}
}

func TestLoadCorrupt(t *testing.T) {
	// 非数字组码行
	_, err := Load(strings.NewReader("0\nSECTION\nxyz\n"))
	if err == nil {
		t.Fatal("损坏内容应返回错误")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("应可识别为解析错误: %v", err)
	}
}

func TestLoadUnknownEntitySkipped(t *testing.T) {
	data := "0\nSECTION\n2\nENTITIES\n0\nSPLINE\n8\n0\n0\nLINE\n8\n0\n10\n0\n20\n0\n11\n1\n21\n0\n0\nENDSEC\n0\nEOF\n"
	doc, err := Load(strings.NewReader(data))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	// 未注册类型跳过，后续实体不受影响
	if len(doc.Entities) != 1 {
		t.Fatalf("实体数不符: %d", len(doc.Entities))
	}
	if doc.Entities[0].Type() != "LINE" {
		t.Errorf("实体类型不符: %s", doc.Entities[0].Type())
	}
}
