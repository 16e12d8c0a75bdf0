package voyage

import (
	"context"
)

// IVoyage embeds texts. inputType is InputTypeDocument for indexing and InputTypeQuery for searching.
type IVoyage interface {
	Embed(ctx context.Context, texts []string, inputType string) ([][]float32, error)
}
