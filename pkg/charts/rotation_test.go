package charts

import (
	"bytes"
	"math"
	"testing"

	"github.com/86sanj/datasetinsights/pkg/dataset"
	"github.com/86sanj/datasetinsights/pkg/errors"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEulerPointIdentity(t *testing.T) {
	x, y, z := eulerPoint(0, 0, 0)
	if x != 0 || y != 1 || z != 0 {
		t.Errorf("Expected (0,1,0) for zero angles, got (%v,%v,%v)", x, y, z)
	}
}

func TestEulerPointQuarterTurns(t *testing.T) {
	// 90 about the Z axis sends (0,1,0) to (-1,0,0).
	x, y, z := eulerPoint(90, 0, 0)
	if !closeTo(x, -1) || !closeTo(y, 0) || !closeTo(z, 0) {
		t.Errorf("Expected (-1,0,0), got (%v,%v,%v)", x, y, z)
	}

	// 90 about the X axis sends (0,1,0) to (0,0,1).
	x, y, z = eulerPoint(0, 90, 0)
	if !closeTo(x, 0) || !closeTo(y, 0) || !closeTo(z, 1) {
		t.Errorf("Expected (0,0,1), got (%v,%v,%v)", x, y, z)
	}

	// The Y axis rotation leaves (0,1,0) in place.
	x, y, z = eulerPoint(0, 0, 90)
	if !closeTo(x, 0) || !closeTo(y, 1) || !closeTo(z, 0) {
		t.Errorf("Expected (0,1,0), got (%v,%v,%v)", x, y, z)
	}

	x, y, z = eulerPoint(180, 0, 0)
	if !closeTo(x, 0) || !closeTo(y, -1) || !closeTo(z, 0) {
		t.Errorf("Expected (0,-1,0), got (%v,%v,%v)", x, y, z)
	}
}

func TestEulerPointUnitLength(t *testing.T) {
	angles := [][3]float64{
		{30, 45, 60},
		{-17, 200, 5},
		{359, 1, 90},
	}
	for _, a := range angles {
		x, y, z := eulerPoint(a[0], a[1], a[2])
		length := math.Sqrt(x*x + y*y + z*z)
		if !closeTo(length, 1) {
			t.Errorf("Expected unit vector for angles %v, got length %v", a, length)
		}
	}
}

func TestProject(t *testing.T) {
	// The origin stays put.
	px, py := project(0, 0, 0)
	if px != 0 || py != 0 {
		t.Errorf("Expected origin to project to (0,0), got (%v,%v)", px, py)
	}

	// The vertical axis keeps x = 0 and foreshortens y by the pitch.
	px, py = project(0, 1, 0)
	if !closeTo(px, 0) || !closeTo(py, math.Cos(cameraPitch)) {
		t.Errorf("Expected (0,%v), got (%v,%v)", math.Cos(cameraPitch), px, py)
	}

	px, py = project(1, 0, 0)
	if !closeTo(px, math.Cos(cameraYaw)) || !closeTo(py, math.Sin(cameraYaw)*math.Sin(cameraPitch)) {
		t.Errorf("Unexpected projection of (1,0,0): (%v,%v)", px, py)
	}
}

func rotationTable(t *testing.T) *dataset.Table {
	t.Helper()
	table := dataset.NewTable()
	if err := table.AddFloats("x_rot", []float64{0, 45, 90, 135, 180}); err != nil {
		t.Fatalf("AddFloats failed: %v", err)
	}
	if err := table.AddFloats("y_rot", []float64{0, 30, 60, 90, 120}); err != nil {
		t.Fatalf("AddFloats failed: %v", err)
	}
	if err := table.AddFloats("z_rot", []float64{0, 10, 20, 30, 40}); err != nil {
		t.Fatalf("AddFloats failed: %v", err)
	}
	return table
}

func TestRotation(t *testing.T) {
	png, err := New().Rotation(rotationTable(t), RotationOptions{
		X:     "x_rot",
		Y:     "y_rot",
		Z:     "z_rot",
		Title: "Orientations",
	})
	if err != nil {
		t.Fatalf("Rotation failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("Expected PNG output")
	}
	if len(png) < 1000 {
		t.Errorf("Expected a real chart, got %d bytes", len(png))
	}
}

func TestRotationWithoutZ(t *testing.T) {
	png, err := New().Rotation(rotationTable(t), RotationOptions{X: "x_rot", Y: "y_rot"})
	if err != nil {
		t.Fatalf("Rotation failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("Expected PNG output")
	}
}

func TestRotationSingleRow(t *testing.T) {
	table := dataset.NewTable()
	if err := table.AddFloats("x_rot", []float64{45}); err != nil {
		t.Fatalf("AddFloats failed: %v", err)
	}
	if err := table.AddFloats("y_rot", []float64{45}); err != nil {
		t.Fatalf("AddFloats failed: %v", err)
	}

	png, err := New().Rotation(table, RotationOptions{X: "x_rot", Y: "y_rot"})
	if err != nil {
		t.Fatalf("Rotation failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("Expected PNG output")
	}
}

func TestRotationMaxSamples(t *testing.T) {
	png, err := New().Rotation(rotationTable(t), RotationOptions{
		X:          "x_rot",
		Y:          "y_rot",
		MaxSamples: 2,
	})
	if err != nil {
		t.Fatalf("Rotation failed: %v", err)
	}
	if !bytes.HasPrefix(png, pngHeader) {
		t.Error("Expected PNG output")
	}
}

func TestRotationColumnErrors(t *testing.T) {
	table := rotationTable(t)

	if _, err := New().Rotation(table, RotationOptions{X: "missing", Y: "y_rot"}); errors.GetCode(err) != errors.ErrCodeNotFound {
		t.Errorf("Expected not found code, got %v", err)
	}
	if _, err := New().Rotation(table, RotationOptions{X: "x_rot", Y: "y_rot", Z: "missing"}); errors.GetCode(err) != errors.ErrCodeNotFound {
		t.Errorf("Expected not found code, got %v", err)
	}
}
