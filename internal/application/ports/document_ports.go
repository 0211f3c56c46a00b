package ports

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
)

// SkuSheetRenderer genera la ficha técnica imprimible de un SKU.
// Recibe el SKU ya proyectado (tramos, atributos y full path resueltos).
type SkuSheetRenderer interface {
	RenderSkuSheet(ctx context.Context, sku *dto.SkuResponse) ([]byte, error)
}

// SkuFeedEncoder serializa una página de SKUs como feed para integraciones externas.
// Digest identifica el contenido canónico del feed y sirve como ETag.
type SkuFeedEncoder interface {
	EncodeSkuFeed(ctx context.Context, skus []dto.SkuResponse) (body []byte, digest string, err error)
}
