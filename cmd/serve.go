package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"valvelet/internal/daemon"

	"github.com/spf13/cobra"
)

var (
	flagServeAddr     string
	flagServeInterval int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the runway watch service with a local HTTP API",
	Long: "Polls the data files on an interval, recomputes every scenario, and\n" +
		"serves results at /v1/status, /v1/events, and /v1/stream (SSE).",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "127.0.0.1:8791", "Listen address")
	serveCmd.Flags().IntVar(&flagServeInterval, "interval", 30, "Poll interval in seconds")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	dataDir, horizon, _ := resolveOptions()
	log := newLogger()

	svc := daemon.New(daemon.Config{
		DataDir:     dataDir,
		HorizonDays: horizon,
		Interval:    time.Duration(flagServeInterval) * time.Second,
		Addr:        flagServeAddr,
		Log:         log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("  Watching %s, listening on %s\n", dataDir, flagServeAddr)
	return svc.Run(ctx)
}
