package measure

import (
	"math"

	"github.com/zooyer/dwgdash/core"
	"github.com/zooyer/dwgdash/entities"
)

// Length 单个实体的线长贡献。
// 约定：圆按轮廓线计长(2πr)，与面积贡献并存；
// 该约定在图层汇总和全图测量中必须保持一致
func Length(e entities.Entity) float64 {
	switch e := e.(type) {
	case *entities.Line:
		return e.Start.Distance(e.End)
	case *entities.LWPolyline:
		if len(e.Vertices) < 2 {
			return 0
		}
		var length float64
		for i := 1; i < len(e.Vertices); i++ {
			length += e.Vertices[i-1].Distance(e.Vertices[i])
		}
		if e.Closed {
			length += e.Vertices[len(e.Vertices)-1].Distance(e.Vertices[0])
		}
		return length
	case *entities.Circle:
		return 2 * math.Pi * e.Radius
	case *entities.Arc:
		return e.Radius * sweepDegrees(e.StartAngle, e.EndAngle) * math.Pi / 180
	case *entities.Text, *entities.MText, *entities.Hatch, *entities.Dimension:
		return 0
	}
	return 0
}

// Area 单个实体的闭合面积贡献
func Area(e entities.Entity) float64 {
	switch e := e.(type) {
	case *entities.LWPolyline:
		if !e.Closed {
			return 0
		}
		return Shoelace(e.Vertices)
	case *entities.Circle:
		return math.Pi * e.Radius * e.Radius
	case *entities.Hatch:
		// 所有边界路径面积相加，不扣除岛(内边界)
		var area float64
		for _, path := range e.Paths {
			area += Shoelace(path)
		}
		return area
	case *entities.Line, *entities.Arc, *entities.Text, *entities.MText, *entities.Dimension:
		return 0
	}
	return 0
}

// Shoelace 鞋带公式计算多边形面积，顶点不足 3 个返回 0
func Shoelace(vertices []core.Point) float64 {
	if len(vertices) < 3 {
		return 0
	}
	var sum float64
	for i := range vertices {
		j := (i + 1) % len(vertices)
		sum += vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
	}
	return math.Abs(sum) / 2
}

// sweepDegrees 圆弧扫掠角，归一化到 [0, 360)，处理终角小于起角的回绕
func sweepDegrees(start, end float64) float64 {
	span := math.Mod(end-start, 360)
	if span < 0 {
		span += 360
	}
	return span
}

// BoundingBox 合成全部实体的包围盒，空集退化为原点处的零尺寸盒子
func BoundingBox(ents []entities.Entity) core.BBox {
	box := core.EmptyBBox()
	for _, e := range ents {
		box.Union(e.BBox())
	}
	return box.Normalize()
}
