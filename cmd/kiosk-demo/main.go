package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/five82/kiosk/internal/demoapi"
)

func main() {
	os.Exit(run())
}

func run() int {
	addr := flag.String("addr", "127.0.0.1:8089", "listen address")
	catalogPath := flag.String("catalog", "", "YAML catalog file (optional, defaults to the built-in catalog)")
	latency := flag.Duration("latency", 0, "delay added to every catalog response")
	failStatus := flag.Int("fail-status", 0, "answer every catalog request with this HTTP status (optional)")
	flag.Parse()

	if *failStatus != 0 && (*failStatus < 100 || *failStatus > 599) {
		fmt.Fprintf(os.Stderr, "kiosk-demo: invalid -fail-status %d\n", *failStatus)
		return 2
	}

	products, err := demoapi.LoadCatalog(*catalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "kiosk-demo: %v\n", err)
		return 1
	}

	gin.SetMode(gin.ReleaseMode)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := demoapi.New(products, demoapi.Options{
		Latency:    *latency,
		FailStatus: *failStatus,
	})
	if err := srv.Serve(ctx, *addr); err != nil {
		fmt.Fprintf(os.Stderr, "kiosk-demo: %v\n", err)
		return 1
	}
	return 0
}
