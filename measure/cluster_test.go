package measure

import (
	"testing"

	"github.com/zooyer/dwgdash/core"
)

func box(minX, minY, maxX, maxY float64) core.BBox {
	return core.BBox{
		Min: core.Point{X: minX, Y: minY},
		Max: core.Point{X: maxX, Y: maxY},
	}
}

func TestMergeBoxes(t *testing.T) {
	boxes := []core.BBox{
		box(0, 0, 1, 1),
		box(0.5, 0.5, 2, 2), // 与第一个重叠
		box(10, 10, 11, 11), // 独立
	}

	merged := MergeBoxes(boxes, 0)
	if len(merged) != 2 {
		t.Fatalf("应合并为 2 个簇: %d", len(merged))
	}
	if merged[0].Max.X != 2 || merged[0].Max.Y != 2 {
		t.Errorf("合并结果不符: %+v", merged[0])
	}
}

func TestMergeBoxes_Gap(t *testing.T) {
	boxes := []core.BBox{
		box(0, 0, 1, 1),
		box(1.5, 0, 2.5, 1), // 间距 0.5
	}

	if merged := MergeBoxes(boxes, 0.1); len(merged) != 2 {
		t.Errorf("间距超过容错不应合并: %d", len(merged))
	}
	if merged := MergeBoxes(boxes, 1); len(merged) != 1 {
		t.Errorf("容错内应合并: %d", len(merged))
	}
}

func TestIsSeparate(t *testing.T) {
	a := box(0, 0, 1, 1)
	b := box(2, 2, 3, 3)
	if !IsSeparate(a, b, 0) {
		t.Error("不相交盒子应判定分离")
	}
	if IsSeparate(a, box(0.5, 0.5, 3, 3), 0) {
		t.Error("相交盒子不应判定分离")
	}
}
