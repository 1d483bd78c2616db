package diode

import (
	"bytes"
	"diode/base"
	"diode/maths"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"
)

func TestSimulate(t *testing.T) {
	cir := NewCircuit()
	res, err := cir.Simulate()
	if err != nil {
		t.Fatalf("仿真失败 %s", err)
	}
	if !res.Converged || res.Len() >= 20 {
		t.Fatalf("应在 20 次内收敛: converged=%v len=%d", res.Converged, res.Len())
	}
	if res.Voltage <= 0.55 || res.Voltage >= 0.62 {
		t.Errorf("二极管电压异常: %vV", res.Voltage)
	}
	// 验证 KVL: Vs = I*R + Vd
	p := cir.Params
	if kvl := p.Vs - (res.Current*p.R + res.Voltage); math.Abs(kvl) > 1e-6 {
		t.Errorf("KVL 残差过大: %v", kvl)
	}
	if last, _ := res.Last(); last.Value != res.Voltage {
		t.Errorf("最终电压应为最后一次迭代值")
	}
}

func TestSimulateInvalid(t *testing.T) {
	cir := NewCircuit()
	cir.Params.N = 0
	if _, err := cir.Simulate(); !errors.Is(err, base.ErrInvalidParams) {
		t.Errorf("期望 ErrInvalidParams, 实际 %v", err)
	}
	cir = NewCircuit()
	cir.Tolerance = 0
	if _, err := cir.Simulate(); !errors.Is(err, maths.ErrInvalidArgument) {
		t.Errorf("期望 ErrInvalidArgument, 实际 %v", err)
	}
	cir = NewCircuit()
	cir.MaxIterations = -1
	if _, err := cir.Simulate(); !errors.Is(err, maths.ErrInvalidArgument) {
		t.Errorf("期望 ErrInvalidArgument, 实际 %v", err)
	}
}

func TestSimulateZeroIterations(t *testing.T) {
	cir := NewCircuit()
	cir.MaxIterations = 0
	res, err := cir.Simulate()
	if err != nil {
		t.Fatal(err)
	}
	if res.Len() != 0 || res.Converged || res.Voltage != cir.Guess {
		t.Errorf("零次迭代应返回初始猜测: %+v", res)
	}
	if res.Current != cir.Params.Current(cir.Guess) {
		t.Errorf("电流应按初始猜测计算")
	}
}

func TestLoadReader(t *testing.T) {
	src := `# 测试电路
VS 3.3
r 470   # 欧姆
is 2.52e-9
n 1.752

temp 300.15
x0 0.65
tol 1e-9
maxiter 50
`
	cir := NewCircuit()
	if err := cir.LoadReader(strings.NewReader(src)); err != nil {
		t.Fatalf("加载失败: %v", err)
	}
	p := cir.Params
	if p.Vs != 3.3 || p.R != 470 || p.Is != 2.52e-9 || p.N != 1.752 {
		t.Errorf("参数解析错误: %+v", p)
	}
	if p.Vt != base.ThermalVoltage(300.15) {
		t.Errorf("温度应换算为热电压: %v", p.Vt)
	}
	if cir.Guess != 0.65 || cir.Tolerance != 1e-9 || cir.MaxIterations != 50 {
		t.Errorf("求解参数解析错误: %+v", cir)
	}
}

func TestLoadReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"未知参数", "foo 1\n", "第 1 行"},
		{"缺少值", "vs 5\nr\n", "第 2 行"},
		{"非数值", "vs five\n", "vs"},
		{"非整数", "maxiter 2.5\n", "最大迭代次数"},
		{"参数过多", "vs 5 6\n", "参数过多"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewCircuit().LoadReader(strings.NewReader(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("期望包含 %q 的错误, 实际 %v", tt.want, err)
			}
		})
	}
}

func TestExportLoad(t *testing.T) {
	cir := NewCircuit()
	cir.Params.Vs = 12
	cir.Params.Is = 1e-14
	cir.MaxIterations = 7
	var buf bytes.Buffer
	if err := cir.ExportWriter(&buf); err != nil {
		t.Fatal(err)
	}
	got := &Circuit{}
	if err := got.LoadReader(&buf); err != nil {
		t.Fatalf("重新加载失败: %v", err)
	}
	if got.Params != cir.Params || got.Guess != cir.Guess || got.Tolerance != cir.Tolerance || got.MaxIterations != cir.MaxIterations {
		t.Errorf("导出后加载不一致: %+v != %+v", got, cir)
	}

	filename := filepath.Join(t.TempDir(), "diode.cir")
	if err := cir.Export(filename); err != nil {
		t.Fatal(err)
	}
	fromFile := NewCircuit()
	if err := fromFile.Load(filename); err != nil {
		t.Fatal(err)
	}
	if fromFile.Params != cir.Params {
		t.Errorf("文件加载不一致: %+v", fromFile.Params)
	}
}

func TestUpdateMatchesTrace(t *testing.T) {
	cir := NewCircuit()
	res, err := cir.Simulate()
	if err != nil {
		t.Fatal(err)
	}
	g := cir.Update()
	values := res.Values()
	if g(values[0]) != values[1] {
		t.Errorf("g(V0) = %v, 期望 %v", g(values[0]), values[1])
	}
}
