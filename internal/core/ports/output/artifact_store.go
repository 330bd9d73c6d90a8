package ports

import (
	"context"

	"dormlife-art-generator/internal/core/domain"
)

// ArtifactStore persists generated images and their metadata sidecars.
// name is the shared base filename without extension.
type ArtifactStore interface {
	// Prepare creates the output layout before the first artifact is written.
	Prepare(ctx context.Context) error
	SaveImage(ctx context.Context, name string, data []byte) (string, error)
	SaveMetadata(ctx context.Context, name string, meta *domain.ArtifactMetadata) (string, error)
}
