package vec3

// Pow2 returns x².
func Pow2(x float64) float64 { return x * x }

// Pow3 returns x³.
func Pow3(x float64) float64 { return x * x * x }

// Pow4 returns x⁴.
func Pow4(x float64) float64 { return Pow2(Pow2(x)) }

// ApproxEqual reports whether |a−b| ≤ tolerance.
// The comparison is symmetric and treats tolerance as an absolute bound.
func ApproxEqual(a, b, tolerance float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
