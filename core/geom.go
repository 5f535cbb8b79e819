package core

import "math"

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// Distance 计算到另一个点的欧氏距离
func (p Point) Distance(q Point) float64 {
	dx, dy, dz := q.X-p.X, q.Y-p.Y, q.Z-p.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// EmptyBBox 返回一个未收纳任何点的包围盒
func EmptyBBox() BBox {
	return BBox{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Empty 判断包围盒是否还未收纳任何点
func (b BBox) Empty() bool {
	return b.Min.X > b.Max.X
}

// Expand 收纳一个点，必要时扩大包围盒
func (b *BBox) Expand(p Point) {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Min.Z = math.Min(b.Min.Z, p.Z)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	b.Max.Z = math.Max(b.Max.Z, p.Z)
}

// Union 合并另一个包围盒
func (b *BBox) Union(o BBox) {
	if o.Empty() {
		return
	}
	b.Expand(o.Min)
	b.Expand(o.Max)
}

// Normalize 将空包围盒退化为原点处的零尺寸盒子
func (b BBox) Normalize() BBox {
	if b.Empty() {
		return BBox{}
	}
	return b
}

func (b BBox) Width() float64 { return b.Max.X - b.Min.X }

func (b BBox) Height() float64 { return b.Max.Y - b.Min.Y }

func (b BBox) Depth() float64 { return b.Max.Z - b.Min.Z }
