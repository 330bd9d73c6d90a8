package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"dormlife-art-generator/internal/core/domain"
	ports "dormlife-art-generator/internal/core/ports/output"
)

// BatchService generates a collection volume one artifact at a time.
type BatchService struct {
	generator ports.ImageGenerator
	store     ports.ArtifactStore
	volume    domain.Volume
	sampling  domain.SamplingParams
	sample    func() float64
}

// NewBatchService creates a new BatchService. Rarity draws use math/rand/v2
// unless replaced with WithSampler.
func NewBatchService(generator ports.ImageGenerator, store ports.ArtifactStore, volume domain.Volume, sampling domain.SamplingParams) *BatchService {
	return &BatchService{
		generator: generator,
		store:     store,
		volume:    volume,
		sampling:  sampling,
		sample:    rand.Float64,
	}
}

// WithSampler replaces the uniform [0,1) source used for rarity draws.
func (s *BatchService) WithSampler(sample func() float64) *BatchService {
	s.sample = sample
	return s
}

// Run writes count image and metadata pairs numbered 1..count.
// The first failure aborts the batch; pairs already written are left in place
// and listed in the returned report.
func (s *BatchService) Run(ctx context.Context, count int) (*domain.BatchReport, error) {
	if count < 1 {
		return nil, domain.ErrInvalidCount
	}
	if len(s.volume.Themes) == 0 {
		return nil, domain.ErrNoThemes
	}
	if err := s.sampling.Validate(); err != nil {
		return nil, err
	}

	report := &domain.BatchReport{
		RunID:     uuid.New(),
		Volume:    s.volume.Label,
		Requested: count,
		Artifacts: make([]domain.GeneratedArtifact, 0, count),
		StartedAt: time.Now(),
	}
	defer func() { report.Elapsed = time.Since(report.StartedAt) }()

	logger := log.WithFields(log.Fields{
		"run_id":     report.RunID.String(),
		"collection": s.volume.Collection,
	})

	if err := s.store.Prepare(ctx); err != nil {
		return report, fmt.Errorf("prepare output: %w", err)
	}

	logger.WithField("total", count).Info("starting batch generation")

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("batch interrupted before item %s: %w", domain.SequenceLabel(i+1), err)
		}

		artifact, err := s.generateOne(ctx, i)
		if err != nil {
			return report, fmt.Errorf("item %s: %w", domain.SequenceLabel(i+1), err)
		}
		report.Artifacts = append(report.Artifacts, *artifact)

		fields := log.Fields{
			"index": fmt.Sprintf("%d/%d", i+1, count),
			"theme": artifact.Theme,
			"file":  artifact.ImagePath,
		}
		if artifact.Rarity != "" {
			fields["rarity"] = artifact.Rarity
		}
		logger.WithFields(fields).Info("artifact generated")
	}

	return report, nil
}

func (s *BatchService) generateOne(ctx context.Context, index int) (*domain.GeneratedArtifact, error) {
	seq := index + 1

	theme, err := domain.ThemeAt(s.volume.Themes, index)
	if err != nil {
		return nil, err
	}

	var tier domain.RarityTier
	if s.volume.Rarity {
		tier = domain.DrawRarity(s.sample())
	}

	image, err := s.generator.Txt2Img(ctx, s.volume.BuildRequest(theme, s.sampling))
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}

	name := domain.ArtifactName(s.volume.CollectionID, seq)
	imagePath, err := s.store.SaveImage(ctx, name, image)
	if err != nil {
		return nil, err
	}

	metaPath, err := s.store.SaveMetadata(ctx, name, s.volume.BuildMetadata(seq, theme, tier))
	if err != nil {
		return nil, err
	}

	return &domain.GeneratedArtifact{
		Seq:          seq,
		Name:         name,
		Theme:        theme.Name,
		Rarity:       tier,
		ImagePath:    imagePath,
		MetadataPath: metaPath,
	}, nil
}
