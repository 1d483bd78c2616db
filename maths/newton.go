package maths

import (
	"fmt"
	"math"
)

// Func 标量函数
type Func func(x float64) float64

// Result 求解结果
type Result struct {
	Trace             // 迭代轨迹
	X         float64 // 最终估计值，总是最后一次迭代结果
	Converged bool    // 最后一步变化量是否小于容差
}

// Update 牛顿更新映射 g(x) = x - f(x)/f'(x)
func Update(f, df Func) Func {
	return func(x float64) float64 { return x - f(x)/df(x) }
}

// Solve 一维牛顿-拉夫森迭代求根
//
//	f: 残差函数
//	df: f 的解析导数
//	x0: 初始猜测，不做定义域检查
//	tolerance: 相邻两次迭代之差的收敛阈值，必须为正的有限值
//	maxIterations: 最大迭代次数，为 0 时直接返回 x0 且不收敛
//
// df 在迭代点处为 0 时步长未定义：浮点除法产生 ±Inf 或 NaN 并继续传播，
// 变化量不再小于容差，迭代跑满后返回未收敛。调用方需保证导数与初始猜测合法。
func Solve(f, df Func, x0, tolerance float64, maxIterations int) (*Result, error) {
	switch {
	case f == nil || df == nil:
		return nil, fmt.Errorf("%w: 残差函数或导数为空", ErrInvalidArgument)
	case math.IsNaN(tolerance) || math.IsInf(tolerance, 0) || tolerance <= 0:
		return nil, fmt.Errorf("%w: 容差必须为正的有限值: %v", ErrInvalidArgument, tolerance)
	case maxIterations < 0:
		return nil, fmt.Errorf("%w: 最大迭代次数不能为负: %d", ErrInvalidArgument, maxIterations)
	}
	res := &Result{Trace: newTrace(x0, maxIterations), X: x0}
	x := x0
	for i := 1; i <= maxIterations; i++ {
		xNew := x - f(x)/df(x)
		delta := math.Abs(xNew - x)
		res.append(Record{Index: i, Value: xNew, Delta: delta})
		x = xNew
		// NaN 比较恒为假
		if delta < tolerance {
			res.Converged = true
			break
		}
	}
	res.X = x
	return res, nil
}
