package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func deepAlmostEqual(a, b []mgl64.Vec3) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].ApproxEqualThreshold(b[i], float64EqualityThreshold) {
			return false
		}
	}
	return true
}

func TestClipPolygonAgainstNearPlane(t *testing.T) {
	const near = 10
	testCases := []struct {
		name     string
		input    []mgl64.Vec3
		expected []mgl64.Vec3
	}{
		{
			name:     "Polygon fully in front of near plane",
			input:    []mgl64.Vec3{{0, 0, -20}, {1, 0, -20}, {0, 1, -20}},
			expected: []mgl64.Vec3{{0, 0, -20}, {1, 0, -20}, {0, 1, -20}},
		},
		{
			name:     "Polygon fully behind near plane",
			input:    []mgl64.Vec3{{0, 0, -5}, {1, 0, -5}, {0, 1, -5}},
			expected: []mgl64.Vec3{},
		},
		{
			name: "Polygon with one point in front",
			input: []mgl64.Vec3{
				{0, 0, -15}, // Inside
				{0, 1, -5},  // Outside
				{1, 0, -5},  // Outside
			},
			expected: []mgl64.Vec3{{0.5, 0, -10}, {0, 0, -15}, {0, 0.5, -10}},
		},
		{
			name: "Polygon with two points in front",
			input: []mgl64.Vec3{
				{0, 0, -5},  // Outside
				{0, 1, -15}, // Inside
				{1, 0, -15}, // Inside
			},
			expected: []mgl64.Vec3{{0.5, 0, -10}, {0, 0.5, -10}, {0, 1, -15}, {1, 0, -15}},
		},
		{
			name:     "Empty polygon",
			input:    []mgl64.Vec3{},
			expected: []mgl64.Vec3{},
		},
		{
			name:     "Polygon on the near plane",
			input:    []mgl64.Vec3{{0, 0, -10}, {1, 0, -10}, {0, 1, -10}},
			expected: []mgl64.Vec3{{0, 0, -10}, {1, 0, -10}, {0, 1, -10}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := clipPolygonAgainstNearPlane(tc.input, near)
			if !deepAlmostEqual(clipped, tc.expected) {
				t.Errorf("clipPolygonAgainstNearPlane() = %v, want %v", clipped, tc.expected)
			}
		})
	}
}

func TestIntersectNearPlane(t *testing.T) {
	const near = 10
	testCases := []struct {
		name     string
		p1, p2   mgl64.Vec3
		expected mgl64.Vec3
	}{
		{"Standard intersection", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -20}, mgl64.Vec3{0, 0, -10}},
		{"Intersection with non-zero X and Y", mgl64.Vec3{10, 20, 0}, mgl64.Vec3{30, 40, -20}, mgl64.Vec3{20, 30, -10}},
		{"Line parallel to near plane", mgl64.Vec3{10, 10, -5}, mgl64.Vec3{20, 20, -5}, mgl64.Vec3{10, 10, -5}},
		{"Line segment on near plane", mgl64.Vec3{10, 10, -10}, mgl64.Vec3{20, 20, -10}, mgl64.Vec3{10, 10, -10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := intersectNearPlane(tc.p1, tc.p2, near)
			if !result.ApproxEqualThreshold(tc.expected, float64EqualityThreshold) {
				t.Errorf("intersectNearPlane() = %v, want %v", result, tc.expected)
			}
		})
	}
}

func TestClipSegment(t *testing.T) {
	const near = 1
	testCases := []struct {
		name   string
		a, b   mgl64.Vec3
		wantA  mgl64.Vec3
		wantB  mgl64.Vec3
		wantOk bool
	}{
		{"In front", mgl64.Vec3{0, 0, -2}, mgl64.Vec3{1, 0, -3}, mgl64.Vec3{0, 0, -2}, mgl64.Vec3{1, 0, -3}, true},
		{"Behind", mgl64.Vec3{0, 0, 2}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 2}, mgl64.Vec3{1, 0, 0}, false},
		{"End behind", mgl64.Vec3{0, 0, -3}, mgl64.Vec3{0, 4, 1}, mgl64.Vec3{0, 0, -3}, mgl64.Vec3{0, 2, -1}, true},
		{"Start behind", mgl64.Vec3{0, 4, 1}, mgl64.Vec3{0, 0, -3}, mgl64.Vec3{0, 2, -1}, mgl64.Vec3{0, 0, -3}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b, ok := clipSegment(tc.a, tc.b, near)
			if ok != tc.wantOk {
				t.Fatalf("clipSegment() ok = %v, want %v", ok, tc.wantOk)
			}
			if !ok {
				return
			}
			if !a.ApproxEqualThreshold(tc.wantA, float64EqualityThreshold) || !b.ApproxEqualThreshold(tc.wantB, float64EqualityThreshold) {
				t.Errorf("clipSegment() = %v, %v, want %v, %v", a, b, tc.wantA, tc.wantB)
			}
		})
	}
}
