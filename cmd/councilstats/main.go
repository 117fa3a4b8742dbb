// Command councilstats computes deliberation metrics offline from a
// JSON export of stage records, printing the protocol summary (and,
// given usage rows, the cross-protocol overview) as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/veridex/council/infrastructure/metrics"
	"github.com/veridex/council/internal/application"
	"github.com/veridex/council/internal/domain"
	"github.com/veridex/council/internal/ports"
)

func main() {
	var (
		stagesPath = flag.String("stages", "", "Path to a JSON array of stage records")
		usagePath  = flag.String("usage", "", "Optional path to a JSON array of usage rows")
		mode       = flag.String("mode", "council", "Deliberation mode to summarize")
		dateRange  = flag.String("range", "all", "Date range preset: 7d|30d|90d|all")
		temp       = flag.Float64("temperature", 1.0, "Confidence weighting temperature")
	)
	flag.Parse()

	if *stagesPath == "" {
		log.Fatal("missing required -stages flag")
	}

	source, err := loadFileSource(*stagesPath, *usagePath)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}

	config := application.DefaultEngineConfig()
	config.DefaultMode = *mode
	config.DateRange = *dateRange
	config.Temperature = *temp

	engine, err := application.NewEngine(config, metrics.NewComputer(), source)
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}

	ctx := context.Background()
	summary, err := engine.ComputeMode(ctx, domain.Mode(*mode))
	if err != nil {
		log.Fatalf("Failed to compute metrics: %v", err)
	}
	printJSON(summary)

	if *usagePath != "" {
		overview, err := engine.Overview(ctx)
		if err != nil {
			log.Fatalf("Failed to compute overview: %v", err)
		}
		printJSON(overview)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(out))
}

var _ ports.StageSource = (*fileSource)(nil)

// fileSource serves a static JSON export through the persistence
// boundary. Stage exports carry no timestamps, so the date cutoff
// applies to usage rows only.
type fileSource struct {
	stages []domain.StageRecord
	usage  []domain.UsageRow
}

func loadFileSource(stagesPath, usagePath string) (*fileSource, error) {
	src := &fileSource{}

	data, err := os.ReadFile(stagesPath)
	if err != nil {
		return nil, fmt.Errorf("reading stages: %w", err)
	}
	if err := json.Unmarshal(data, &src.stages); err != nil {
		return nil, fmt.Errorf("decoding stages: %w", err)
	}

	if usagePath != "" {
		data, err := os.ReadFile(usagePath)
		if err != nil {
			return nil, fmt.Errorf("reading usage rows: %w", err)
		}
		if err := json.Unmarshal(data, &src.usage); err != nil {
			return nil, fmt.Errorf("decoding usage rows: %w", err)
		}
	}
	return src, nil
}

func (fs *fileSource) Stages(_ context.Context, mode domain.Mode, _ *time.Time) ([]domain.StageRecord, error) {
	var out []domain.StageRecord
	for _, stage := range fs.stages {
		if stage.Mode == mode {
			out = append(out, stage)
		}
	}
	return out, nil
}

func (fs *fileSource) Usage(_ context.Context, since *time.Time) ([]domain.UsageRow, error) {
	if since == nil {
		return fs.usage, nil
	}
	var out []domain.UsageRow
	for _, row := range fs.usage {
		if !row.CreatedAt.Before(*since) {
			out = append(out, row)
		}
	}
	return out, nil
}
