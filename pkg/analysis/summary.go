package analysis

import (
	"fmt"
	"math"

	"github.com/amos-org/amos/pkg/geometry"
	"github.com/amos-org/amos/pkg/stl"
)

// Summary contains the figures shown for a model in the catalogue and CLI
type Summary struct {
	Name          string
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64 // bounding box volume
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Summarize computes a Summary for model
func Summarize(model *stl.Model) Summary {
	result := Summary{
		Name:          model.Name,
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
	}
	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range model.Triangles {
		for _, length := range triangle.EdgeLengths() {
			totalLength += length
			minLength = math.Min(minLength, length)
			maxLength = math.Max(maxLength, length)
			result.EdgeCount++
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// Caption is the short one-line description used under previews
func (s Summary) Caption() string {
	return fmt.Sprintf("%d triangles, %.1f x %.1f x %.1f",
		s.TriangleCount, s.Dimensions.X, s.Dimensions.Y, s.Dimensions.Z)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
