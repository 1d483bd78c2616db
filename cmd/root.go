package main

import (
	"diode"
	"diode/base"
	"diode/types"
	"errors"

	"github.com/spf13/cobra"
)

// options 全局参数
type options struct {
	config  string
	verbose bool

	vs, r, is, n, vt, temp float64
	x0, tol               float64
	maxIter               int
}

func newRootCmd() *cobra.Command {
	opt := &options{}
	rootCmd := &cobra.Command{
		Use:   "diode",
		Short: "Newton–Raphson solver for a resistor–diode circuit",
		Long: `Solve Vs - R*Is*(exp(Vd/(n*Vt)) - 1) - Vd = 0 for the diode voltage with
Newton–Raphson iteration, print the iteration trace and draw a cobweb diagram.

Examples:
  diode solve                                  # Canonical circuit, iteration table
  diode solve --vs 3.3 --r 470 --json          # JSON record
  diode plot -o cobweb.svg                     # Cobweb diagram
  diode serve --addr :8080                     # Interactive charts`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opt.config, "config", "c", "", "parameter file (key value per line)")
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "verbose output")
	flags.Float64Var(&opt.vs, "vs", types.SupplyVoltage, "supply voltage (V)")
	flags.Float64Var(&opt.r, "r", types.Resistance, "series resistance (ohm)")
	flags.Float64Var(&opt.is, "is", types.SaturationCurr, "diode saturation current (A)")
	flags.Float64Var(&opt.n, "n", types.IdealityFactor, "ideality factor")
	flags.Float64Var(&opt.vt, "vt", types.ThermalVoltage, "thermal voltage (V)")
	flags.Float64Var(&opt.temp, "temp", types.RoomTemperature, "junction temperature (K), sets --vt")
	flags.Float64Var(&opt.x0, "x0", types.InitialGuess, "initial guess (V)")
	flags.Float64Var(&opt.tol, "tol", types.Tolerance, "convergence tolerance (V)")
	flags.IntVar(&opt.maxIter, "max-iter", types.MaxIterations, "maximum iterations")
	rootCmd.MarkFlagsMutuallyExclusive("vt", "temp")

	rootCmd.AddCommand(
		newSolveCmd(opt),
		newPlotCmd(opt),
		newChartCmd(opt),
		newServeCmd(opt),
	)
	return rootCmd
}

// circuit 按参数文件和命令行参数构建电路，命令行优先
func (opt *options) circuit(cmd *cobra.Command) (*diode.Circuit, error) {
	cir := diode.NewCircuit()
	if opt.config != "" {
		if err := cir.Load(opt.config); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("vs") {
		cir.Params.Vs = opt.vs
	}
	if flags.Changed("r") {
		cir.Params.R = opt.r
	}
	if flags.Changed("is") {
		cir.Params.Is = opt.is
	}
	if flags.Changed("n") {
		cir.Params.N = opt.n
	}
	if flags.Changed("vt") {
		cir.Params.Vt = opt.vt
	}
	if flags.Changed("temp") {
		cir.Params.Vt = base.ThermalVoltage(opt.temp)
	}
	if flags.Changed("x0") {
		cir.Guess = opt.x0
	}
	if flags.Changed("tol") {
		cir.Tolerance = opt.tol
	}
	if flags.Changed("max-iter") {
		cir.MaxIterations = opt.maxIter
	}
	cir.Verbose = opt.verbose
	return cir, nil
}

// simulate 构建电路并求解
func (opt *options) simulate(cmd *cobra.Command) (*diode.Circuit, *diode.Result, error) {
	cir, err := opt.circuit(cmd)
	if err != nil {
		return nil, nil, err
	}
	res, err := cir.Simulate()
	if err != nil {
		return nil, nil, err
	}
	return cir, res, nil
}

var errNotConverged = errors.New("newton iteration did not converge")
