package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dormlife-art-generator/internal/core/domain"
	ports "dormlife-art-generator/internal/core/ports/output"
)

const (
	imagesDir   = "images"
	metadataDir = "metadata"
	filePerm    = 0o644
	dirPerm     = 0o755
)

type store struct {
	root string
}

// NewStore creates an artifact store rooted at outputDir.
// Images go to <outputDir>/images, sidecars to <outputDir>/metadata.
func NewStore(outputDir string) ports.ArtifactStore {
	return &store{root: outputDir}
}

func (s *store) Prepare(_ context.Context) error {
	for _, dir := range []string{imagesDir, metadataDir} {
		if err := os.MkdirAll(filepath.Join(s.root, dir), dirPerm); err != nil {
			return fmt.Errorf("create %s dir: %w", dir, err)
		}
	}
	return nil
}

func (s *store) SaveImage(_ context.Context, name string, data []byte) (string, error) {
	path := filepath.Join(s.root, imagesDir, name+".png")
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}

func (s *store) SaveMetadata(_ context.Context, name string, meta *domain.ArtifactMetadata) (string, error) {
	raw, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	raw = append(raw, '\n')

	path := filepath.Join(s.root, metadataDir, name+".json")
	if err := os.WriteFile(path, raw, filePerm); err != nil {
		return "", fmt.Errorf("write metadata: %w", err)
	}
	return path, nil
}
