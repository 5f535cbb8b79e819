package measure

import (
	"math"
	"testing"

	"github.com/zooyer/dwgdash"
	"github.com/zooyer/dwgdash/core"
	"github.com/zooyer/dwgdash/entities"
	"github.com/zooyer/golib/xmath"
)

const epsilon = 1e-6

func square(layer string, side float64) *entities.LWPolyline {
	return &entities.LWPolyline{
		BaseEntity: entities.BaseEntity{TypeName: "LWPOLYLINE", LayerName: layer},
		Vertices: []core.Point{
			{X: 0, Y: 0},
			{X: side, Y: 0},
			{X: side, Y: side},
			{X: 0, Y: side},
		},
		Closed: true,
	}
}

func newDoc(layers []*dwgdash.LayerDef, ents ...entities.Entity) *dwgdash.Document {
	return &dwgdash.Document{
		Layers:    layers,
		Entities:  ents,
		DimStyles: make(map[string]*dwgdash.DimStyle),
	}
}

func TestShoelace_UnitSquare(t *testing.T) {
	area := Shoelace([]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	if !xmath.Equal(area, 1.0, epsilon) {
		t.Errorf("单位正方形面积应为 1: %v", area)
	}

	// 顶点不足 3 个面积为 0
	if Shoelace([]core.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}) != 0 {
		t.Error("退化多边形面积应为 0")
	}
}

func TestLength(t *testing.T) {
	line := &entities.Line{Start: core.Point{}, End: core.Point{X: 3, Y: 4}}
	if !xmath.Equal(Length(line), 5.0, epsilon) {
		t.Errorf("3-4-5 直线长度应为 5: %v", Length(line))
	}

	// 闭合多段线计入收尾段
	sq := square("0", 10)
	if !xmath.Equal(Length(sq), 40, epsilon) {
		t.Errorf("闭合正方形周长应为 40: %v", Length(sq))
	}
	sq.Closed = false
	if !xmath.Equal(Length(sq), 30, epsilon) {
		t.Errorf("开放折线长度应为 30: %v", Length(sq))
	}

	// 轮廓约定：圆按周长计入线长
	circle := &entities.Circle{Radius: 2}
	if !xmath.Equal(Length(circle), 4*math.Pi, epsilon) {
		t.Errorf("半径 2 的圆周长应为 4π: %v", Length(circle))
	}

	arc := &entities.Arc{Radius: 1, StartAngle: 0, EndAngle: 90}
	if !xmath.Equal(Length(arc), math.Pi/2, epsilon) {
		t.Errorf("90 度单位圆弧长应为 π/2: %v", Length(arc))
	}

	// 终角小于起角的回绕: 270 -> 0 扫掠 90 度
	wrap := &entities.Arc{Radius: 1, StartAngle: 270, EndAngle: 0}
	if !xmath.Equal(Length(wrap), math.Pi/2, epsilon) {
		t.Errorf("回绕圆弧长应为 π/2: %v", Length(wrap))
	}

	// 文字和标注不计长度
	if Length(&entities.Text{Content: "x"}) != 0 || Length(&entities.Dimension{}) != 0 {
		t.Error("文字/标注不应有线长贡献")
	}
}

func TestArea(t *testing.T) {
	if !xmath.Equal(Area(square("0", 10)), 100, epsilon) {
		t.Errorf("边长 10 正方形面积应为 100")
	}

	open := square("0", 10)
	open.Closed = false
	if Area(open) != 0 {
		t.Error("未闭合多段线不计面积")
	}

	circle := &entities.Circle{Radius: 2}
	if !xmath.Equal(Area(circle), 4*math.Pi, epsilon) {
		t.Errorf("半径 2 的圆面积应为 4π: %v", Area(circle))
	}

	// 填充按各边界路径面积相加，不扣岛
	hatch := &entities.Hatch{Paths: [][]core.Point{
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}},
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	}}
	if !xmath.Equal(Area(hatch), 5, epsilon) {
		t.Errorf("填充面积应为各路径之和 5: %v", Area(hatch))
	}

	if Area(&entities.Line{End: core.Point{X: 1}}) != 0 || Area(&entities.Arc{Radius: 1}) != 0 {
		t.Error("直线/圆弧不计面积")
	}
}

func TestMeasure_Empty(t *testing.T) {
	m := Measure(newDoc(nil))

	if m.TotalEntities != 0 || m.TotalLineLength != 0 || m.TotalClosedArea != 0 {
		t.Errorf("空图纸测量应全零: %+v", m)
	}
	if len(m.Dimensions) != 0 {
		t.Error("空图纸标注列表应为空")
	}
	if m.BoundingBox != (Bounds{}) {
		t.Errorf("空图纸包围盒应退化为零: %+v", m.BoundingBox)
	}
}

func TestMeasure_Scenario(t *testing.T) {
	// 边长 10 闭合正方形(WALLS) + 长度 5 直线(DIMS)
	layers := []*dwgdash.LayerDef{
		{Name: "WALLS", ColorIndex: 1, Visible: true},
		{Name: "DIMS", ColorIndex: 3, Visible: true},
	}
	line := &entities.Line{
		BaseEntity: entities.BaseEntity{TypeName: "LINE", LayerName: "DIMS"},
		Start:      core.Point{X: 1, Y: 1},
		End:        core.Point{X: 4, Y: 5},
	}
	doc := newDoc(layers, square("WALLS", 10), line)

	m := Measure(doc)
	if m.TotalEntities != 2 {
		t.Errorf("实体总数不符: %d", m.TotalEntities)
	}
	if !xmath.Equal(m.TotalLineLength, 45, epsilon) {
		t.Errorf("总线长应为 40+5: %v", m.TotalLineLength)
	}
	if !xmath.Equal(m.TotalClosedArea, 100, epsilon) {
		t.Errorf("总面积应为 100: %v", m.TotalClosedArea)
	}
	// 直线在正方形内部，包围盒即正方形
	if m.BoundingBox.Width != 10 || m.BoundingBox.Height != 10 {
		t.Errorf("包围盒尺寸不符: %+v", m.BoundingBox)
	}
	if m.BoundingBox.MinX > m.BoundingBox.MaxX || m.BoundingBox.MinY > m.BoundingBox.MaxY {
		t.Error("包围盒 min 应小于等于 max")
	}

	stats := AggregateLayers(doc)
	if len(stats) != 2 {
		t.Fatalf("图层数不符: %d", len(stats))
	}
	walls, dims := stats[0], stats[1]
	if walls.Name != "WALLS" || walls.EntityCount != 1 ||
		!xmath.Equal(walls.ClosedArea, 100, epsilon) || !xmath.Equal(walls.LineLength, 40, epsilon) {
		t.Errorf("WALLS 统计不符: %+v", walls)
	}
	if dims.Name != "DIMS" || dims.EntityCount != 1 || !xmath.Equal(dims.LineLength, 5, epsilon) {
		t.Errorf("DIMS 统计不符: %+v", dims)
	}

	// 分层求和等于全图总量
	var sumCount int
	var sumLength, sumArea float64
	for _, s := range stats {
		sumCount += s.EntityCount
		sumLength += s.LineLength
		sumArea += s.ClosedArea
	}
	if sumCount != m.TotalEntities {
		t.Errorf("分层实体数求和 %d != 总数 %d", sumCount, m.TotalEntities)
	}
	if !xmath.Equal(sumLength, m.TotalLineLength, epsilon) || !xmath.Equal(sumArea, m.TotalClosedArea, epsilon) {
		t.Errorf("分层长度/面积求和与全图总量不一致")
	}
}

func TestAggregateLayers_UnknownLayerFallback(t *testing.T) {
	layers := []*dwgdash.LayerDef{{Name: "WALLS", ColorIndex: 1, Visible: true}}
	stray := &entities.Line{
		BaseEntity: entities.BaseEntity{TypeName: "LINE", LayerName: "GHOST"},
		End:        core.Point{X: 1},
	}
	doc := newDoc(layers, stray)

	stats := AggregateLayers(doc)
	if len(stats) != 2 {
		t.Fatalf("应追加隐式图层: %d", len(stats))
	}
	// 隐式图层排在最后
	fallback := stats[len(stats)-1]
	if fallback.Name != FallbackLayer || fallback.EntityCount != 1 || !fallback.Visible {
		t.Errorf("隐式图层统计不符: %+v", fallback)
	}
	if stats[0].EntityCount != 0 {
		t.Errorf("零实体图层也应保留: %+v", stats[0])
	}
}

func TestAggregateLayers_DegenerateEntity(t *testing.T) {
	layers := []*dwgdash.LayerDef{{Name: "0", ColorIndex: 7, Visible: true}}
	// 顶点不足 2 个的多段线：计数但无长度/面积贡献
	degenerate := &entities.LWPolyline{
		BaseEntity: entities.BaseEntity{TypeName: "LWPOLYLINE", LayerName: "0"},
		Vertices:   []core.Point{{X: 5, Y: 5}},
	}
	stats := AggregateLayers(newDoc(layers, degenerate))
	if stats[0].EntityCount != 1 || stats[0].LineLength != 0 || stats[0].ClosedArea != 0 {
		t.Errorf("退化实体应计数零贡献: %+v", stats[0])
	}
}

func TestBoundingBox_DegenerateEntitiesIgnored(t *testing.T) {
	// 无坐标实体不应把原点拉进包围盒
	empty := &entities.LWPolyline{BaseEntity: entities.BaseEntity{TypeName: "LWPOLYLINE"}}
	line := &entities.Line{Start: core.Point{X: 5, Y: 5}, End: core.Point{X: 6, Y: 7}}

	box := BoundingBox([]entities.Entity{empty, line})
	if box.Min.X != 5 || box.Min.Y != 5 {
		t.Errorf("空实体不应贡献坐标: %+v", box)
	}
}

func TestColorName(t *testing.T) {
	cases := map[int]string{
		0:   "ByBlock",
		1:   "Red",
		15:  "Light Magenta",
		256: "ByLayer",
		42:  "Color 42",
	}
	for index, want := range cases {
		if got := ColorName(index); got != want {
			t.Errorf("颜色 %d 名称不符: %q != %q", index, got, want)
		}
	}
}
