package debug

import (
	"diode"
	"diode/maths"
	"diode/types"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	colorUpdate    = color.RGBA{B: 255, A: 255}
	colorIdentity  = color.Black
	colorPath      = color.RGBA{R: 255, A: 255}
	colorConverged = color.RGBA{G: 128, A: 255}
)

// Cobweb 牛顿迭代蛛网图
type Cobweb struct {
	Result  *diode.Result // 求解结果
	Update  maths.Func    // 更新映射 g(x) = x - f(x)/f'(x)
	Min     float64       // 采样下限
	Max     float64       // 采样上限
	Samples int           // 采样点数
	DPI     int           // PNG 分辨率
	Width   vg.Length     // 图像宽度
	Height  vg.Length     // 图像高度
}

// NewCobweb 使用默认绘图参数
func NewCobweb(res *diode.Result, g maths.Func) *Cobweb {
	return &Cobweb{
		Result:  res,
		Update:  g,
		Min:     types.CobwebMin,
		Max:     types.CobwebMax,
		Samples: types.CobwebSamples,
		DPI:     types.CobwebDPI,
		Width:   8 * vg.Inch,
		Height:  6 * vg.Inch,
	}
}

// Plot 构建蛛网图
func (c *Cobweb) Plot() (*plot.Plot, error) {
	if err := checkResult(c.Result); err != nil {
		return nil, err
	}
	if c.Update == nil {
		return nil, ErrNoUpdate
	}
	values := c.Result.Values()
	lo, hi := domain(values, c.Min, c.Max)

	p := plot.New()
	p.Title.Text = "Newton–Raphson Cobweb Diagram for Diode Equation"
	p.X.Label.Text = "Vd (V)"
	p.Y.Label.Text = "Vd+1 (V)"
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	grid.Horizontal.Dashes = grid.Vertical.Dashes
	p.Add(grid)

	// 更新函数
	xs, ys := sampleUpdate(c.Update, lo, hi, c.Samples)
	update, err := plotter.NewLine(xyPoints(xs, ys))
	if err != nil {
		return nil, err
	}
	update.Color = colorUpdate
	update.Width = vg.Points(1.5)
	p.Add(update)
	p.Legend.Add("g(Vd) = Vd - f(Vd)/f'(Vd)", update)

	// y = x
	identity, err := plotter.NewLine(plotter.XYs{{X: lo, Y: lo}, {X: hi, Y: hi}})
	if err != nil {
		return nil, err
	}
	identity.Color = colorIdentity
	identity.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(identity)
	p.Legend.Add("y = Vd", identity)

	// 迭代路径
	finiteValues := finitePrefix(values)
	if px, py := cobwebPath(finiteValues); len(px) > 1 {
		path, err := plotter.NewLine(xyPoints(px, py))
		if err != nil {
			return nil, err
		}
		path.Color = colorPath
		path.Width = vg.Points(1.2)
		p.Add(path)

		xys := make(plotter.XYs, len(finiteValues)-1)
		names := make([]string, len(finiteValues)-1)
		for i := range xys {
			xys[i] = plotter.XY{X: finiteValues[i], Y: finiteValues[i+1]}
			names[i] = fmt.Sprintf("V%d", i)
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}

	// 最终点
	if x := c.Result.Voltage; finite(x) {
		point, err := plotter.NewScatter(plotter.XYs{{X: x, Y: x}})
		if err != nil {
			return nil, err
		}
		point.GlyphStyle.Color = colorConverged
		point.GlyphStyle.Radius = vg.Points(4)
		point.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(point)
		if c.Result.Converged {
			p.Legend.Add("Converged Point", point)
		} else {
			p.Legend.Add("Last Iterate", point)
		}
	}
	return p, nil
}

// Render 输出 PNG
func (c *Cobweb) Render(w io.Writer) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	dpi := c.DPI
	if dpi <= 0 {
		dpi = types.CobwebDPI
	}
	width, height := c.size()
	canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(dpi))
	p.Draw(draw.New(canvas))
	_, err = vgimg.PngCanvas{Canvas: canvas}.WriteTo(w)
	return err
}

// Save 按扩展名保存图像（png/svg/pdf/eps/jpg/tif）
func (c *Cobweb) Save(filename string) error {
	if strings.ToLower(filepath.Ext(filename)) != ".png" {
		p, err := c.Plot()
		if err != nil {
			return err
		}
		width, height := c.size()
		return p.Save(width, height, filename)
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := c.Render(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// size 图像尺寸，未设置时为 8x6 英寸
func (c *Cobweb) size() (vg.Length, vg.Length) {
	w, h := c.Width, c.Height
	if w <= 0 {
		w = 8 * vg.Inch
	}
	if h <= 0 {
		h = 6 * vg.Inch
	}
	return w, h
}

// xyPoints 合并坐标并跳过非有限点
func xyPoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if finite(xs[i]) && finite(ys[i]) {
			pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
		}
	}
	return pts
}
