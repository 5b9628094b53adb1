package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/spektr-org/newsdash/api"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var addr string
	var debug bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, ds, err := load(cmd.Context(), g)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if !debug {
				gin.SetMode(gin.ReleaseMode)
			}

			r := api.NewRouter(api.NewServer(ds, cfg.EngineOptions()...), gin.Logger())
			log.Printf("🌐 Starting API server on %s (%d articles)", addr, ds.Len())
			log.Println("API endpoints available:")
			log.Println("  GET  /health")
			log.Println("  GET  /api/meta")
			log.Println("  GET  /api/articles?category=&source=&limit=")
			log.Println("  GET  /api/summary?category=&source=")
			log.Println("  GET  /api/counts/:column?sort=")
			log.Println("  POST /api/dashboard")

			return http.ListenAndServe(addr, r)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&debug, "debug", false, "run gin in debug mode")
	return cmd
}
