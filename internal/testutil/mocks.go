package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"dormlife-art-generator/internal/core/domain"
)

// MockImageGenerator is a mock of ImageGenerator.
type MockImageGenerator struct {
	mock.Mock
}

func (m *MockImageGenerator) Txt2Img(ctx context.Context, req *domain.GenerationRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockArtifactStore is a mock of ArtifactStore.
type MockArtifactStore struct {
	mock.Mock
}

func (m *MockArtifactStore) Prepare(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockArtifactStore) SaveImage(ctx context.Context, name string, data []byte) (string, error) {
	args := m.Called(ctx, name, data)
	return args.String(0), args.Error(1)
}

func (m *MockArtifactStore) SaveMetadata(ctx context.Context, name string, meta *domain.ArtifactMetadata) (string, error) {
	args := m.Called(ctx, name, meta)
	return args.String(0), args.Error(1)
}

// SequenceSampler returns a sampler that yields values in order and then repeats the last one.
func SequenceSampler(values ...float64) func() float64 {
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}
