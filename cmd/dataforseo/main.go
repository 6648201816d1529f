package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/samvad-hq/dataforseo-go/internal/config"
	"github.com/samvad-hq/dataforseo-go/internal/logger"
	"github.com/samvad-hq/dataforseo-go/pkg/dataforseo"
	"github.com/samvad-hq/dataforseo-go/pkg/locations"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dataforseo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		op       = flag.String("op", "", "operation: serp | msv | keywords_for_site | domain_pages | domain_pages_summary")
		subjects = flag.String("subject", "", "comma-separated keywords, sites, or domains")
		location = flag.Int("location", 0, "location code (default 2840, US)")
		locName  = flag.String("location-name", "", "location name resolved against the bundled lookup tables")
		dateFrom = flag.String("from", "", "start date, YYYY-MM-DD")
		dateTo   = flag.String("to", "", "end date, YYYY-MM-DD")
		live     = flag.Bool("live", false, "use the synchronous live endpoint")
		taskID   = flag.String("task-id", "", "fetch results of a previously posted task")
		extra    = flag.String("extra", "", "extra payload fields as a JSON object")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	if *locName != "" {
		code, ok := locations.Code(*locName)
		if !ok {
			return fmt.Errorf("unknown location %q", *locName)
		}
		*location = code
	}

	opts := dataforseo.Options{
		LocationCode: *location,
		DateFrom:     *dateFrom,
		DateTo:       *dateTo,
		Live:         *live,
		TaskID:       *taskID,
	}
	if *extra != "" {
		if err := json.Unmarshal([]byte(*extra), &opts.Extra); err != nil {
			return fmt.Errorf("parse -extra: %w", err)
		}
	}

	clientOpts := []dataforseo.Option{
		dataforseo.WithTimeout(cfg.HTTPTimeout),
		dataforseo.WithLogger(log),
	}
	if cfg.Sandbox {
		clientOpts = append(clientOpts, dataforseo.WithSandbox())
	}
	client, err := dataforseo.New(cfg.APIKey, clientOpts...)
	if err != nil {
		return fmt.Errorf("build client: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	subject := dataforseo.Many(splitSubjects(*subjects)...)

	var resp dataforseo.Response
	switch *op {
	case "serp":
		resp, err = client.SERP(ctx, subject, &opts)
	case "msv":
		resp, err = client.SearchVolume(ctx, subject, &opts)
	case "keywords_for_site":
		resp, err = client.KeywordsForSite(ctx, subject, &opts)
	case "domain_pages":
		resp, err = client.DomainPages(ctx, subject, &opts)
	case "domain_pages_summary":
		resp, err = client.DomainPagesSummary(ctx, subject, &opts)
	default:
		return fmt.Errorf("unknown -op %q", *op)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func splitSubjects(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
