package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/app"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/config"
)

const usage = `usage: flymora [--config path] <command>

commands:
  serve               run the HTTP API and the job scheduler (default)
  migrate             apply database migrations
  %s
`

func main() {
	// config.Load reads this flag through cleanenv-port.
	flag.String("config", "", "path to the YAML config file (falls back to CONFIG_PATH)")
	flag.Usage = func() { printUsage(nil) }
	flag.Parse()

	cmd := "serve"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}
	if cmd == "help" {
		printUsage(nil)
		return
	}

	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	switch cmd {
	case "serve":
		stop()
		if err = application.Run(); err != nil {
			log.Fatalf("app run: %v", err)
		}
		return
	case "migrate":
		err = application.Migrate()
	default:
		err = runJob(ctx, application, cmd)
	}

	if closeErr := application.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

func runJob(ctx context.Context, a *app.App, name string) error {
	if !a.HasJob(name) {
		printUsage(a.JobNames())
		return fmt.Errorf("unknown command %q", name)
	}

	rep, err := a.RunJob(ctx, name)
	if err != nil {
		return err
	}
	fmt.Println(rep.String())
	return nil
}

func printUsage(jobNames []string) {
	lines := "<job>               run a scheduled job once"
	if len(jobNames) > 0 {
		lines = strings.Join(jobNames, "\n  ")
	}
	fmt.Fprintf(os.Stderr, usage, lines)
}
