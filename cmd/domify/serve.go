package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/domify-dev/domify/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		host       string
		port       int
		watch      string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the conversion service",
		Long: `Start the HTTP conversion service.

Endpoints:
  POST /v1/convert   convert the request body (?format=json|msgpack|html)
  GET  /healthz      liveness check
  GET  /metrics      Prometheus metrics
  GET  /             live preview page (with --watch)
  GET  /ws           live preview WebSocket (with --watch)

Examples:
  domify serve
  domify serve --port=8080
  domify serve --watch=page.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(host, port, watch, configPath)
		},
	}

	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from domify.json)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from domify.json)")
	cmd.Flags().StringVarP(&watch, "watch", "w", "", "Markup file to watch for the live preview")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to domify.json")

	return cmd
}

func runServe(host string, port int, watch, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Server.Host = host
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if watch != "" {
		cfg.Watch = watch
	}

	printBanner()
	fmt.Println()
	info("Listening on http://%s:%d", cfg.Server.Host, cfg.Server.Port)
	if cfg.Watch != "" {
		info("Previewing %s", cfg.Watch)
	}
	fmt.Println()

	s := server.New(server.Config{
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		Registry:  buildRegistry(cfg),
		Mapper:    buildMapper(cfg),
		MaxDepth:  cfg.MaxDepth,
		WatchPath: cfg.Watch,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	return s.Start(ctx)
}
