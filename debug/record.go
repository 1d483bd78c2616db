package debug

import (
	"diode"
	"diode/base"
	"diode/maths"
	"encoding/json"
	"io"
)

// Record 求解记录
type Record struct {
	Params    base.Params    `json:"params"`    // 电路参数
	Records   []maths.Record `json:"records"`   // 迭代记录
	Values    []float64      `json:"values"`    // 原始迭代值（含初始猜测）
	Voltage   float64        `json:"voltage"`   // 二极管电压
	Current   float64        `json:"current"`   // 二极管电流
	Converged bool           `json:"converged"` // 是否收敛
}

// NewRecord 从求解结果生成记录
func NewRecord(res *diode.Result) (*Record, error) {
	if err := checkResult(res); err != nil {
		return nil, err
	}
	return &Record{
		Params:    res.Params,
		Records:   res.Records(),
		Values:    res.Values(),
		Voltage:   res.Voltage,
		Current:   res.Current,
		Converged: res.Converged,
	}, nil
}

// Render 格式和输出内容
// 非有限值无法编码为 JSON，此时返回编码错误。
func (list *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
