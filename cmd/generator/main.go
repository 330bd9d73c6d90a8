package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dormlife-art-generator/internal/adapters/secondary/filesystem"
	"dormlife-art-generator/internal/adapters/secondary/sdwebui"
	"dormlife-art-generator/internal/config"
	"dormlife-art-generator/internal/core/domain"
	"dormlife-art-generator/internal/core/services"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	volume, err := domain.LookupVolume(cfg.Generator.Volume)
	if err != nil {
		log.Fatalf("select volume (available: %v): %v", domain.VolumeLabels(), err)
	}

	outputDir := cfg.Generator.OutputDir
	if outputDir == "" {
		outputDir = volume.DefaultOutputDir()
	}

	sampling := domain.SamplingParams{
		Steps:    cfg.Sampler.Steps,
		CFGScale: cfg.Sampler.CFGScale,
		Width:    cfg.Sampler.Width,
		Height:   cfg.Sampler.Height,
	}

	// Secondary Adapters
	generator := sdwebui.NewClient(&cfg.Txt2Img)
	store := filesystem.NewStore(outputDir)

	// Core Service
	batchSvc := services.NewBatchService(generator, store, volume, sampling)

	// Interrupt stops the batch before the next item starts
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"volume":     volume.Label,
		"total":      cfg.Generator.Total,
		"output_dir": outputDir,
		"txt2img":    cfg.Txt2Img.URL,
	}).Info("generator configured")

	report, err := batchSvc.Run(ctx, cfg.Generator.Total)
	if err != nil {
		written := 0
		if report != nil {
			written = len(report.Artifacts)
		}
		stop()
		log.WithField("written", written).Fatalf("batch failed: %v", err)
	}

	fields := log.Fields{
		"run_id":  report.RunID.String(),
		"written": len(report.Artifacts),
		"elapsed": report.Elapsed.String(),
	}
	for tier, n := range report.RarityCounts() {
		fields[string(tier)] = n
	}
	log.WithFields(fields).Infof("%s generation completed.", volume.Collection)
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
