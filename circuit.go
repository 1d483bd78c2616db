package diode

import (
	"bufio"
	"diode/base"
	"diode/maths"
	"diode/types"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Circuit 电阻-二极管电路求解配置
type Circuit struct {
	Params        base.Params // 电路参数
	Guess         float64     // 初始猜测电压 (V)
	Tolerance     float64     // 收敛容差 (V)
	MaxIterations int         // 最大迭代次数
	Verbose       bool        // 输出求解摘要
}

// Result 电路求解结果
type Result struct {
	*maths.Result             // 迭代结果
	Params        base.Params // 求解所用参数
	Voltage       float64     // 二极管电压 (V)
	Current       float64     // 二极管电流 (A)
}

// NewCircuit 初始化
func NewCircuit() *Circuit {
	return &Circuit{
		Params:        base.DefaultParams(),
		Guess:         types.InitialGuess,
		Tolerance:     types.Tolerance,
		MaxIterations: types.MaxIterations,
	}
}

// Residual 残差函数
func (cir *Circuit) Residual() maths.Func { return cir.Params.Residual }

// Derivative 残差导数
func (cir *Circuit) Derivative() maths.Func { return cir.Params.Derivative }

// Update 牛顿更新映射
func (cir *Circuit) Update() maths.Func {
	return maths.Update(cir.Params.Residual, cir.Params.Derivative)
}

// Simulate 求解二极管工作点
// 未收敛不视为错误，由调用方检查 Converged。
func (cir *Circuit) Simulate() (*Result, error) {
	if err := cir.Params.Validate(); err != nil {
		return nil, err
	}
	p := cir.Params
	res, err := maths.Solve(p.Residual, p.Derivative, cir.Guess, cir.Tolerance, cir.MaxIterations)
	if err != nil {
		return nil, err
	}
	out := &Result{
		Result:  res,
		Params:  p,
		Voltage: res.X,
		Current: p.Current(res.X),
	}
	if cir.Verbose {
		log.Printf("求解完成: 迭代 %d 次, 收敛=%v, Vd=%.6fV, I=%.6eA", res.Len(), res.Converged, out.Voltage, out.Current)
	}
	return out, nil
}

// Load 加载参数文件
func (cir *Circuit) Load(filename string) (err error) {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return cir.LoadReader(file)
}

// LoadReader 解析参数，每行 "键 值"，# 开头为注释
func (cir *Circuit) LoadReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return fmt.Errorf("第 %d 行缺少参数值: %s", line, text)
		}
		if len(fields) > 2 && fields[2][0] != '#' {
			return fmt.Errorf("第 %d 行参数过多: %s", line, text)
		}
		if err := cir.set(strings.ToLower(fields[0]), fields[1]); err != nil {
			return fmt.Errorf("第 %d 行: %w", line, err)
		}
	}
	return scanner.Err()
}

func (cir *Circuit) set(key, value string) error {
	if key == "maxiter" {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("最大迭代次数解析失败: %w", err)
		}
		cir.MaxIterations = v
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("参数 %s 解析失败: %w", key, err)
	}
	switch key {
	case "vs":
		cir.Params.Vs = v
	case "r":
		cir.Params.R = v
	case "is":
		cir.Params.Is = v
	case "n":
		cir.Params.N = v
	case "vt":
		cir.Params.Vt = v
	case "temp":
		cir.Params.Vt = base.ThermalVoltage(v)
	case "x0":
		cir.Guess = v
	case "tol":
		cir.Tolerance = v
	default:
		return fmt.Errorf("未知参数: %s", key)
	}
	return nil
}

// Export 导出参数文件
func (cir *Circuit) Export(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return cir.ExportWriter(file)
}

// ExportWriter 按 Load 可读取的格式写出参数
func (cir *Circuit) ExportWriter(w io.Writer) error {
	writer := bufio.NewWriter(w)
	format := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, kv := range [][2]string{
		{"vs", format(cir.Params.Vs)},
		{"r", format(cir.Params.R)},
		{"is", format(cir.Params.Is)},
		{"n", format(cir.Params.N)},
		{"vt", format(cir.Params.Vt)},
		{"x0", format(cir.Guess)},
		{"tol", format(cir.Tolerance)},
		{"maxiter", strconv.Itoa(cir.MaxIterations)},
	} {
		writer.WriteString(kv[0])
		writer.WriteRune(' ')
		writer.WriteString(kv[1])
		writer.WriteRune('\n')
	}
	return writer.Flush()
}
