package main

import (
	"diode/debug"
	"diode/types"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// sampling 蛛网图采样参数
type sampling struct {
	min, max float64
	samples  int
}

func (s *sampling) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&s.min, "min", types.CobwebMin, "lower bound of the sampled domain (V)")
	cmd.Flags().Float64Var(&s.max, "max", types.CobwebMax, "upper bound of the sampled domain (V)")
	cmd.Flags().IntVar(&s.samples, "samples", types.CobwebSamples, "number of samples of the update function")
}

func newPlotCmd(opt *options) *cobra.Command {
	var (
		output string
		dpi    int
		s      sampling
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Print the iteration table and save the cobweb diagram",
		Long: `Draw the Newton update function g(Vd) = Vd - f(Vd)/f'(Vd) against y = Vd and the
iteration path between them. The image format follows the output extension
(png, svg, pdf, eps, jpg, tif).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cir, res, err := opt.simulate(cmd)
			if err != nil {
				return err
			}
			if err := (&debug.Table{Result: res}).Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			cobweb := debug.NewCobweb(res, cir.Update())
			cobweb.Min, cobweb.Max, cobweb.Samples = s.min, s.max, s.samples
			cobweb.DPI = dpi
			if err := cobweb.Save(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nCobweb diagram saved as '%s'.\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "newton_cobweb_diagram.png", "output image file")
	cmd.Flags().IntVar(&dpi, "dpi", types.CobwebDPI, "PNG resolution")
	s.register(cmd)
	return cmd
}

func newChartCmd(opt *options) *cobra.Command {
	var (
		output string
		s      sampling
	)
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write an interactive HTML page with the cobweb and convergence charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cir, res, err := opt.simulate(cmd)
			if err != nil {
				return err
			}
			charts := debug.NewCharts(res, cir.Update())
			charts.Min, charts.Max, charts.Samples = s.min, s.max, s.samples
			file, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := charts.Render(file); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Charts saved as '%s'.\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "newton_cobweb.html", "output HTML file")
	s.register(cmd)
	return cmd
}
