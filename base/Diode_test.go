package base

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
)

func TestDiodeDerivative(t *testing.T) {
	p := DefaultParams()
	for _, vd := range []float64{0, 0.3, 0.55, 0.58, 0.6, 0.7} {
		want := fd.Derivative(p.Residual, vd, &fd.Settings{Formula: fd.Central})
		got := p.Derivative(vd)
		if math.Abs(got-want) > 1e-4*math.Max(1, math.Abs(want)) {
			t.Errorf("f'(%v): 解析 %v, 数值 %v", vd, got, want)
		}
	}
}

func TestDiodeCurrent(t *testing.T) {
	p := DefaultParams()
	if p.Current(0) != 0 {
		t.Errorf("零偏置电流应为 0, 实际 %v", p.Current(0))
	}
	// 反向偏置趋近 -Is
	if got := p.Current(-1); math.Abs(got+p.Is) > 1e-20 {
		t.Errorf("反向电流应接近 -Is: %v", got)
	}
	for _, vd := range []float64{0.2, 0.5, 0.6} {
		if got := p.KVL(vd); math.Abs(got-p.Residual(vd)) > 1e-12 {
			t.Errorf("KVL(%v) = %v, 残差 %v", vd, got, p.Residual(vd))
		}
	}
}

func TestThermalVoltage(t *testing.T) {
	if got := ThermalVoltage(300.15); math.Abs(got-0.02586) > 1e-4 {
		t.Errorf("300.15K 热电压异常: %v", got)
	}
	if ThermalVoltage(0) != ThermalVoltage(300.15) {
		t.Error("非正温度应取室温")
	}
}

func TestDiodeValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Fatalf("默认参数应合法: %v", err)
	}
	tests := []struct {
		name string
		edit func(p *Params)
	}{
		{"负电阻", func(p *Params) { p.R = -1 }},
		{"负饱和电流", func(p *Params) { p.Is = -1e-12 }},
		{"零发射系数", func(p *Params) { p.N = 0 }},
		{"负热电压", func(p *Params) { p.Vt = -0.0259 }},
		{"NaN电压", func(p *Params) { p.Vs = math.NaN() }},
		{"无穷电阻", func(p *Params) { p.R = math.Inf(1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.edit(&p)
			if err := p.Validate(); !errors.Is(err, ErrInvalidParams) {
				t.Errorf("期望 ErrInvalidParams, 实际 %v", err)
			}
		})
	}
}
