package maths

// Record 单次牛顿迭代记录
type Record struct {
	Index int     `json:"iteration"` // 迭代序号，从 1 开始
	Value float64 `json:"value"`     // 本次迭代结果
	Delta float64 `json:"change"`    // 与上一次结果之差的绝对值
}

// Trace 迭代轨迹
// 仅由 Solve 追加，返回后即冻结；访问方法均返回副本。
type Trace struct {
	records []Record  // 迭代记录
	values  []float64 // 原始迭代值，首项为初始猜测
}

// traceCap 预分配上限
const traceCap = 64

func newTrace(x0 float64, capacity int) Trace {
	capacity = min(capacity, traceCap)
	values := make([]float64, 1, capacity+1)
	values[0] = x0
	return Trace{records: make([]Record, 0, capacity), values: values}
}

func (trace *Trace) append(rec Record) {
	trace.records = append(trace.records, rec)
	trace.values = append(trace.values, rec.Value)
}

// Len 迭代记录数量
func (trace *Trace) Len() int { return len(trace.records) }

// Records 迭代记录副本
func (trace *Trace) Records() []Record {
	return append([]Record(nil), trace.records...)
}

// Values 原始迭代值副本（包含初始猜测）
func (trace *Trace) Values() []float64 {
	return append([]float64(nil), trace.values...)
}

// Deltas 每次迭代的变化量
func (trace *Trace) Deltas() []float64 {
	deltas := make([]float64, len(trace.records))
	for i, rec := range trace.records {
		deltas[i] = rec.Delta
	}
	return deltas
}

// Seed 初始猜测
func (trace *Trace) Seed() float64 {
	if len(trace.values) == 0 {
		return 0
	}
	return trace.values[0]
}

// Last 最后一次迭代记录
func (trace *Trace) Last() (Record, bool) {
	if len(trace.records) == 0 {
		return Record{}, false
	}
	return trace.records[len(trace.records)-1], true
}
