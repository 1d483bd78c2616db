package types

// 默认求解参数
var (
	Tolerance     = 1e-6 // 收敛容差 (V)
	MaxIterations = 20   // 最大迭代次数
	InitialGuess  = 0.7  // 初始猜测电压 (V)
)

// 默认电路参数
var (
	SupplyVoltage   = 5.0    // 电源电压 Vs (V)
	Resistance      = 1000.0 // 串联电阻 R (Ω)
	SaturationCurr  = 1e-12  // 反向饱和电流 Is (A)
	IdealityFactor  = 1.0    // 发射系数 N
	ThermalVoltage  = 0.0259 // 热电压 Vt (V)
	RoomTemperature = 300.15 // 默认温度 (K)
)

// 物理常数
const (
	Boltzmann = 1.380649e-23    // 玻尔兹曼常数 (J/K)
	Charge    = 1.602176634e-19 // 电子电荷 (C)
)

// 绘图默认值
var (
	CobwebMin     = 0.5 // 蛛网图采样下限 (V)
	CobwebMax     = 0.8 // 蛛网图采样上限 (V)
	CobwebSamples = 400 // 更新函数采样点数
	CobwebDPI     = 300 // 输出图像分辨率
)
