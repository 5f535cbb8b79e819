package measure

import (
	"math"

	"github.com/zooyer/dwgdash/core"
)

// MergeBoxes 合并相互重叠(或间距不超过 gap)的包围盒，
// 用于把散线聚成独立图形簇
func MergeBoxes(boxes []core.BBox, gap float64) []core.BBox {
	if len(boxes) < 2 {
		return boxes
	}

	for {
		changed := false
		var merged []core.BBox
		visited := make([]bool, len(boxes))
		for i := 0; i < len(boxes); i++ {
			if visited[i] {
				continue
			}
			curr := boxes[i]
			visited[i] = true
			for j := i + 1; j < len(boxes); j++ {
				if !visited[j] && !IsSeparate(curr, boxes[j], gap) {
					curr.Min.X = math.Min(curr.Min.X, boxes[j].Min.X)
					curr.Min.Y = math.Min(curr.Min.Y, boxes[j].Min.Y)
					curr.Max.X = math.Max(curr.Max.X, boxes[j].Max.X)
					curr.Max.Y = math.Max(curr.Max.Y, boxes[j].Max.Y)
					visited[j], changed = true, true
				}
			}
			merged = append(merged, curr)
		}
		boxes = merged
		if !changed {
			break
		}
	}

	return boxes
}

// IsSeparate 判断两个 BBox 在 XY 平面上是否完全分离
func IsSeparate(a, b core.BBox, gap float64) bool {
	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}
