package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"opportunity-engine/internal/logger"
	"opportunity-engine/internal/rates"
)

func main() {
	var (
		formatFlag   = flag.String("format", formatText, "Output format: text, json, csv or pdf")
		outFlag      = flag.String("out", "", "Directory for exported files (default: stdout for text and json)")
		parallelFlag = flag.Int("parallel", 4, "Maximum scenarios evaluated at once")
		registryFlag = flag.String("registry", os.Getenv("RATE_REGISTRY_URL"), "Market rate registry URL")
		verboseFlag  = flag.Bool("verbose", false, "Log rate lookups and timings")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("oppcost - compare two career paths by opportunity cost")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  oppcost [options] scenario.yaml...")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := "error"
	if *verboseFlag {
		level = "debug"
	}
	log := logger.New(level, "console")
	defer log.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	r := &runner{
		format:   *formatFlag,
		outDir:   *outFlag,
		parallel: *parallelFlag,
		resolver: rates.NewResolver(*registryFlag, 2*time.Second, log),
		log:      log,
		stdout:   os.Stdout,
	}
	if err := r.run(ctx, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
