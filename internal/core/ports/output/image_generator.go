package ports

import (
	"context"

	"dormlife-art-generator/internal/core/domain"
)

// ImageGenerator issues one synchronous text-to-image call and returns the
// decoded bytes of the first image in the response.
type ImageGenerator interface {
	Txt2Img(ctx context.Context, req *domain.GenerationRequest) ([]byte, error)
}
