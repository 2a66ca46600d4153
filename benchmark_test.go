package swoop

import "testing"

var benchPoints = []Vec2{{0, 0}, {120, -300}, {260, 80}, {400, -40}, {520, 300}, {640, 0}}

// setupBenchManager creates a Manager running n leaning instances that never
// finish during the benchmark.
func setupBenchManager(n int) *Manager {
	m := NewManager()
	path, err := NewSpline(benchPoints, 3)
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		b := NewBody("b", 0, 0)
		_ = m.AddInstance(NewInstance(b, path, 1e9, Options{
			Easing: InOutQuint,
			Lean:   LeanConfig{Enabled: true},
		}))
	}
	return m
}

// --- Spline Benchmarks ---

func BenchmarkSplineEvaluate_Cubic(b *testing.B) {
	s, _ := NewSpline(benchPoints, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Evaluate(float64(i%1000) / 1000)
	}
}

func BenchmarkSplineDerivative_Cubic(b *testing.B) {
	s, _ := NewSpline(benchPoints, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Derivative(float64(i%1000) / 1000)
	}
}

func BenchmarkNewSpline_Cubic(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = NewSpline(benchPoints, 3)
	}
}

// --- Manager Benchmarks ---

func BenchmarkManagerUpdate_1000Leaning(b *testing.B) {
	m := setupBenchManager(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Update(1.0 / 60)
	}
}

func BenchmarkManagerUpdate_10000Leaning(b *testing.B) {
	m := setupBenchManager(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Update(1.0 / 60)
	}
}

// --- Easing Benchmarks ---

func BenchmarkJitterNoise(b *testing.B) {
	fn := JitterNoise(0.02, 80)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = fn(float64(i%1000) / 1000)
	}
}
