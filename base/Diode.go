package base

import (
	"diode/types"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams 电路参数非法
var ErrInvalidParams = errors.New("base: invalid parameters")

// Params 电阻-二极管串联电路参数
type Params struct {
	Vs float64 `json:"vs"` // 电源电压 (V)
	R  float64 `json:"r"`  // 串联电阻 (Ω)
	Is float64 `json:"is"` // 反向饱和电流 (A)
	N  float64 `json:"n"`  // 发射系数
	Vt float64 `json:"vt"` // 热电压 (V)
}

// DefaultParams 默认参数
func DefaultParams() Params {
	return Params{
		Vs: types.SupplyVoltage,
		R:  types.Resistance,
		Is: types.SaturationCurr,
		N:  types.IdealityFactor,
		Vt: types.ThermalVoltage,
	}
}

// ThermalVoltage 热电压 Vt = kT/q，温度非正时取室温
func ThermalVoltage(temp float64) float64 {
	if temp <= 0 {
		temp = types.RoomTemperature
	}
	return types.Boltzmann * temp / types.Charge
}

// Validate 检查参数
func (p Params) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{{"Vs", p.Vs}, {"R", p.R}, {"Is", p.Is}, {"N", p.N}, {"Vt", p.Vt}} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%w: %s 不是有限值: %v", ErrInvalidParams, v.name, v.value)
		}
	}
	switch {
	case p.R < 0:
		return fmt.Errorf("%w: 电阻不能为负: %v", ErrInvalidParams, p.R)
	case p.Is < 0:
		return fmt.Errorf("%w: 饱和电流不能为负: %v", ErrInvalidParams, p.Is)
	case p.N*p.Vt <= 0:
		return fmt.Errorf("%w: 尺度电压 N*Vt 必须为正: %v", ErrInvalidParams, p.N*p.Vt)
	}
	return nil
}

// scale 尺度电压 N*Vt
func (p Params) scale() float64 { return p.N * p.Vt }

// Residual KVL 残差 f(Vd) = Vs - R*Is*(exp(Vd/(N*Vt)) - 1) - Vd
func (p Params) Residual(vd float64) float64 {
	return p.Vs - p.R*p.Is*(math.Exp(vd/p.scale())-1) - vd
}

// Derivative 残差导数 f'(Vd) = -R*Is*exp(Vd/(N*Vt))/(N*Vt) - 1
func (p Params) Derivative(vd float64) float64 {
	nvt := p.scale()
	return -p.R*p.Is*math.Exp(vd/nvt)/nvt - 1
}

// Current 肖克利方程 I = Is*(exp(Vd/(N*Vt)) - 1)
func (p Params) Current(vd float64) float64 {
	return p.Is * (math.Exp(vd/p.scale()) - 1)
}

// KVL 回路电压失衡 Vs - I*R - Vd
func (p Params) KVL(vd float64) float64 {
	return p.Vs - p.Current(vd)*p.R - vd
}
