package debug

import (
	"diode"
	"diode/maths"
	"diode/types"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	ectypes "github.com/go-echarts/go-echarts/v2/types"
)

// Charts 网页曲线绘制
type Charts struct {
	Result  *diode.Result // 求解结果
	Update  maths.Func    // 更新映射
	Min     float64       // 采样下限
	Max     float64       // 采样上限
	Samples int           // 采样点数
}

// NewCharts 使用默认采样参数
func NewCharts(res *diode.Result, g maths.Func) *Charts {
	return &Charts{
		Result:  res,
		Update:  g,
		Min:     types.CobwebMin,
		Max:     types.CobwebMax,
		Samples: types.CobwebSamples,
	}
}

func lineData(xs, ys []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(xs))
	for i := range xs {
		if finite(xs[i]) && finite(ys[i]) {
			items = append(items, opts.LineData{Value: []float64{xs[i], ys[i]}})
		}
	}
	return items
}

// cobweb 蛛网图
func (c *Charts) cobweb() *charts.Line {
	values := c.Result.Values()
	lo, hi := domain(values, c.Min, c.Max)
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     ectypes.ThemeWesteros,
			PageTitle: "Newton–Raphson",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "蛛网图",
			Subtitle: "牛顿更新函数与 y = x 之间的迭代路径",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:  "Vd (V)",
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Vd+1 (V)",
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			XAxisIndex: []int{0},
		}),
	)
	xs, ys := sampleUpdate(c.Update, lo, hi, c.Samples)
	line.AddSeries("g(Vd)", lineData(xs, ys),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "blue"}),
	)
	line.AddSeries("y = Vd", lineData([]float64{lo, hi}, []float64{lo, hi}),
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "black", Type: "dashed"}),
	)
	px, py := cobwebPath(values)
	line.AddSeries("迭代路径", lineData(px, py),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "red", Width: 1}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"}),
	)
	if x := c.Result.Voltage; finite(x) {
		line.AddSeries("最终点", lineData([]float64{x}, []float64{x}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "green"}),
		)
	}
	return line
}

// convergence 收敛曲线
func (c *Charts) convergence() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: ectypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "收敛曲线",
			Subtitle: "每次迭代的电压变化量",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "迭代"}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "|ΔVd| (V)",
			Type: "log",
		}),
		charts.WithAnimation(true),
	)
	records := c.Result.Records()
	index := make([]string, 0, len(records))
	deltas := make([]opts.LineData, 0, len(records))
	for _, rec := range records {
		// 对数轴无法表示零或非有限值
		if !finite(rec.Delta) || rec.Delta <= 0 {
			continue
		}
		index = append(index, fmt.Sprint(rec.Index))
		deltas = append(deltas, opts.LineData{Value: rec.Delta})
	}
	line.SetXAxis(index).AddSeries("变化量", deltas)
	return line
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	if err := checkResult(c.Result); err != nil {
		return err
	}
	if c.Update == nil {
		return ErrNoUpdate
	}
	page := components.NewPage()
	page.PageTitle = "Newton–Raphson 二极管求解"
	page.AddCharts(
		c.cobweb(),
		c.convergence(),
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *Charts) Error(err error) { log.Println(err) }
