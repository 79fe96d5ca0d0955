package utils

import (
	"math"
	"testing"
)

func AssertTrue(t *testing.T, a bool) {
	t.Helper()
	if !a {
		t.Fatalf("Expected true, got false")
	}
}

func AssertEqual(t *testing.T, a interface{}, b interface{}) {
	t.Helper()
	if a != b {
		t.Fatalf("Expected equal: %v != %v\n", a, b)
	}
}

func AssertClose(t *testing.T, a, b, tol float64) {
	t.Helper()
	if math.Abs(a-b) > tol {
		t.Fatalf("Expected close: %v != %v (tolerance %v)\n", a, b, tol)
	}
}

func AssertNaN(t *testing.T, a float64) {
	t.Helper()
	if !math.IsNaN(a) {
		t.Fatalf("Expected NaN, got %v\n", a)
	}
}
