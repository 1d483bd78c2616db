package debug

import (
	"diode/maths"
	"math"

	"gonum.org/v1/gonum/floats"
)

// margin 采样区间外扩比例
const margin = 0.05

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// finitePrefix 截取第一个非有限值之前的迭代值
func finitePrefix(values []float64) []float64 {
	for i, v := range values {
		if !finite(v) {
			return values[:i]
		}
	}
	return values
}

// domain 采样区间，迭代值超出时外扩以覆盖全部有限迭代值
func domain(values []float64, lo, hi float64) (float64, float64) {
	values = finitePrefix(values)
	if len(values) > 0 {
		vmin, vmax := floats.Min(values), floats.Max(values)
		if vmin < lo || vmax > hi {
			lo, hi = math.Min(lo, vmin), math.Max(hi, vmax)
			pad := (hi - lo) * margin
			lo, hi = lo-pad, hi+pad
		}
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}

// sampleUpdate 在 [lo, hi] 上均匀采样更新函数
func sampleUpdate(g maths.Func, lo, hi float64, n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	xs = floats.Span(make([]float64, n), lo, hi)
	ys = make([]float64, n)
	for i, x := range xs {
		ys[i] = g(x)
	}
	return xs, ys
}

// cobwebPath 蛛网折线：(x0,x0) → (x0,x1) → (x1,x1) → ...
func cobwebPath(values []float64) (xs, ys []float64) {
	values = finitePrefix(values)
	if len(values) == 0 {
		return nil, nil
	}
	xs = append(xs, values[0])
	ys = append(ys, values[0])
	for i := 0; i+1 < len(values); i++ {
		x0, x1 := values[i], values[i+1]
		xs = append(xs, x0, x1)
		ys = append(ys, x1, x1)
	}
	return xs, ys
}
