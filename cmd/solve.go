package main

import (
	"diode/debug"
	"fmt"

	"github.com/spf13/cobra"
)

func newSolveCmd(opt *options) *cobra.Command {
	var (
		outputJSON bool
		strict     bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve the operating point and print the iteration table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := opt.simulate(cmd)
			if err != nil {
				return err
			}
			var r debug.Renderer = &debug.Table{Result: res}
			if outputJSON {
				if r, err = debug.NewRecord(res); err != nil {
					return err
				}
			}
			if err := r.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			if strict && !res.Converged {
				return fmt.Errorf("%w after %d iteration(s)", errNotConverged, res.Len())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "output JSON record")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with error when not converged")
	return cmd
}
