package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"careplan/internal/app"
)

func main() {
	var (
		cfgPath  string
		once     bool
		complete string
	)
	flag.StringVar(&cfgPath, "config", "./config.json", "path to config json or yaml")
	flag.BoolVar(&once, "once", false, "generate one schedule, print it and exit")
	flag.StringVar(&complete, "complete", "", "comma-separated task titles to mark complete (with -once)")
	flag.Parse()

	if once {
		var titles []string
		for _, t := range strings.Split(complete, ",") {
			if t = strings.TrimSpace(t); t != "" {
				titles = append(titles, t)
			}
		}
		if err := app.Once(cfgPath, titles, os.Stdout); err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := app.New(cfgPath)
	if err != nil {
		fmt.Println("fatal:", err)
		os.Exit(1)
	}

	if err := a.Start(ctx); err != nil {
		fmt.Println("fatal start:", err)
		os.Exit(1)
	}

	<-ctx.Done()
	_ = a.Stop(context.Background())
}
