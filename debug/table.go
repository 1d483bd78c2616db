package debug

import (
	"diode"
	"fmt"
	"io"
	"text/tabwriter"
)

// Table 迭代表格
type Table struct {
	Result *diode.Result
}

// Render 输出迭代表格与最终结果
func (table *Table) Render(w io.Writer) error {
	if err := checkResult(table.Result); err != nil {
		return err
	}
	res := table.Result
	fmt.Fprint(w, "\nNewton–Raphson Iteration Results:\n\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "Iteration\tVd (V)\tChange (V)\t\n")
	for _, rec := range res.Records() {
		fmt.Fprintf(tw, "%d\t%.6e\t%.6e\t\n", rec.Index, rec.Value, rec.Delta)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprint(w, "\nFinal Results:\n")
	fmt.Fprintf(w, "Diode voltage (Vd): %.6f V\n", res.Voltage)
	fmt.Fprintf(w, "Diode current (I): %.6e A\n", res.Current)
	fmt.Fprintf(w, "KVL residual: %.3e V\n", res.Params.KVL(res.Voltage))
	var err error
	if res.Converged {
		_, err = fmt.Fprintf(w, "Converged after %d iteration(s)\n", res.Len())
	} else {
		_, err = fmt.Fprintf(w, "Not converged after %d iteration(s)\n", res.Len())
	}
	return err
}
