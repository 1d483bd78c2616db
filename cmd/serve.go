package main

import (
	"diode/debug"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

func newServeCmd(opt *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive charts over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cir, res, err := opt.simulate(cmd)
			if err != nil {
				return err
			}
			mux := http.NewServeMux()
			mux.HandleFunc("/", debug.NewCharts(res, cir.Update()).Handler)
			log.Printf("图表服务: http://%s/", addr)
			return http.ListenAndServe(addr, mux)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	return cmd
}
