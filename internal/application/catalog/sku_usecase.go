package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	domcatalog "github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"github.com/jhoicas/Catalogo-api/pkg/slug"
)

// maxAttributeValueLen largo máximo de un valor de atributo (columna VARCHAR(50)).
const maxAttributeValueLen = 50

// SkuUseCase agregado SKU: el SKU y sus tramos de precio y valores de atributo se escriben
// juntos en una transacción; cualquier fallo deshace todo.
type SkuUseCase struct {
	repos    Repositories
	txRunner TxRunner
	cache    Cache
	log      *logger.Logger
	maxDepth int
	now      clock
}

// NewSkuUseCase construye el caso de uso.
func NewSkuUseCase(repos Repositories, txRunner TxRunner, cache Cache, log *logger.Logger, opts Options) *SkuUseCase {
	cache, log = defaults(cache, log)
	return &SkuUseCase{
		repos:    repos,
		txRunner: txRunner,
		cache:    cache,
		log:      log,
		maxDepth: opts.MaxDepth,
		now:      time.Now,
	}
}

// Create valida referencias y valores y persiste SKU → tramos → valores con un solo commit.
func (uc *SkuUseCase) Create(ctx context.Context, actorID int64, in dto.CreateSkuRequest) (*dto.SkuResponse, error) {
	name, err := requiredName("sku", in.Name)
	if err != nil {
		return nil, err
	}
	s := slug.Make(name)
	if s == "" {
		return nil, domain.Invalid("sku", "el nombre '%s' no produce un slug válido", name)
	}
	skuNumber := domcatalog.NewSkuNumber()
	if in.SkuNumber != nil && strings.TrimSpace(*in.SkuNumber) != "" {
		if skuNumber, err = domcatalog.NormalizeSkuNumber(*in.SkuNumber); err != nil {
			return nil, err
		}
	}
	tiers, err := priceTiers(in.PriceDetails)
	if err != nil {
		return nil, err
	}
	if err := checkDistinctAttributes(in.AttributeValues); err != nil {
		return nil, err
	}

	var resp *dto.SkuResponse
	err = uc.txRunner.Run(ctx, func(repos Repositories) error {
		if err := ensureUniqueSku(ctx, repos, 0, name, s); err != nil {
			return err
		}
		dup, err := repos.Skus.GetBySkuNumber(ctx, skuNumber)
		if err != nil {
			return err
		}
		if dup != nil {
			return domain.AlreadyExists("sku", "ya existe un SKU con el sku_number '%s'", skuNumber)
		}
		if err := ensureActiveProduct(ctx, repos, in.ProductID); err != nil {
			return err
		}
		if err := resolveAttributes(ctx, repos, in.AttributeValues); err != nil {
			return err
		}
		if err := ensurePricelists(ctx, repos, tiers); err != nil {
			return err
		}

		now := uc.now()
		sku := &entity.Sku{
			Name:        name,
			Slug:        s,
			SkuNumber:   skuNumber,
			ProductID:   in.ProductID,
			Description: strings.TrimSpace(in.Description),
			IsActive:    boolOr(in.IsActive, true),
			Sequence:    in.Sequence,
		}
		sku.Stamp(actorID, now)
		if err := repos.Skus.Create(ctx, sku); err != nil {
			return err
		}
		if err := createPriceDetails(ctx, repos, actorID, sku.ID, tiers, now); err != nil {
			return err
		}
		if err := createAttributeValues(ctx, repos, actorID, sku.ID, in.AttributeValues, now); err != nil {
			return err
		}
		resp, err = uc.buildResponse(ctx, newTreeLoader(repos, uc.maxDepth), sku)
		return err
	})
	if err != nil {
		return nil, err
	}
	afterCommit(ctx, uc.cache)
	uc.log.Info().
		Int64("sku_id", resp.ID).
		Int64("actor_id", actorID).
		Str("sku_number", resp.SkuNumber).
		Int("price_details", len(resp.PriceDetails)).
		Int("attribute_values", len(resp.SkuAttributeValues)).
		Msg("SKU creado")
	return resp, nil
}

// Update aplica el patch escalar, luego los tramos (borrar → crear → actualizar) y por último
// los valores de atributo (ausente: sin cambios; [] borra todos; lista reemplaza todos).
func (uc *SkuUseCase) Update(ctx context.Context, actorID, id int64, in dto.UpdateSkuRequest) (*dto.SkuResponse, error) {
	patch := in.PriceDetailPatch()
	newTiers, err := priceTiers(patch.ToCreate)
	if err != nil {
		return nil, err
	}
	replaceValues := in.AttributeValues.Present()
	if replaceValues {
		if err := checkDistinctAttributes(in.AttributeValues.Value); err != nil {
			return nil, err
		}
	}

	var resp *dto.SkuResponse
	err = uc.txRunner.Run(ctx, func(repos Repositories) error {
		sku, err := repos.Skus.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sku == nil {
			return domain.NotFound("sku", "el SKU %d no existe", id)
		}
		if in.Name != nil {
			name, err := requiredName("sku", *in.Name)
			if err != nil {
				return err
			}
			if name != sku.Name {
				s := slug.Make(name)
				if s == "" {
					return domain.Invalid("sku", "el nombre '%s' no produce un slug válido", name)
				}
				if err := ensureUniqueSku(ctx, repos, id, name, s); err != nil {
					return err
				}
				sku.Name, sku.Slug = name, s
			}
		}
		if in.Description != nil {
			sku.Description = strings.TrimSpace(*in.Description)
		}
		if in.ProductID != nil && *in.ProductID != sku.ProductID {
			if err := ensureActiveProduct(ctx, repos, *in.ProductID); err != nil {
				return err
			}
			sku.ProductID = *in.ProductID
		}
		if in.IsActive != nil {
			sku.IsActive = *in.IsActive
		}
		if in.Sequence != nil {
			sku.Sequence = *in.Sequence
		}

		now := uc.now()
		sku.Touch(actorID, now)
		if err := repos.Skus.Update(ctx, sku); err != nil {
			return err
		}
		if err := applyPriceDetailPatch(ctx, repos, actorID, sku.ID, patch, newTiers, now); err != nil {
			return err
		}
		if replaceValues {
			values := in.AttributeValues.Value
			if err := resolveAttributes(ctx, repos, values); err != nil {
				return err
			}
			if _, err := repos.AttributeValues.DeleteBySku(ctx, sku.ID); err != nil {
				return err
			}
			if err := createAttributeValues(ctx, repos, actorID, sku.ID, values, now); err != nil {
				return err
			}
		}
		resp, err = uc.buildResponse(ctx, newTreeLoader(repos, uc.maxDepth), sku)
		return err
	})
	if err != nil {
		return nil, err
	}
	afterCommit(ctx, uc.cache)
	uc.log.Info().Int64("sku_id", id).Int64("actor_id", actorID).Msg("SKU actualizado")
	return resp, nil
}

// SoftDelete desactiva el SKU; tramos y valores quedan como están.
func (uc *SkuUseCase) SoftDelete(ctx context.Context, actorID, id int64) error {
	err := uc.txRunner.Run(ctx, func(repos Repositories) error {
		sku, err := repos.Skus.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sku == nil {
			return domain.NotFound("sku", "el SKU %d no existe", id)
		}
		return repos.Skus.SetActive(ctx, id, false, actorID)
	})
	if err != nil {
		return err
	}
	afterCommit(ctx, uc.cache)
	uc.log.Info().Int64("sku_id", id).Int64("actor_id", actorID).Msg("SKU desactivado")
	return nil
}

// GetByID devuelve el agregado completo.
func (uc *SkuUseCase) GetByID(ctx context.Context, id int64) (*dto.SkuResponse, error) {
	cached, gen, ok := uc.cache.GetSku(ctx, id)
	if ok {
		return cached, nil
	}
	sku, err := uc.repos.Skus.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, domain.NotFound("sku", "el SKU %d no existe", id)
	}
	resp, err := uc.buildResponse(ctx, newTreeLoader(uc.repos, uc.maxDepth), sku)
	if err != nil {
		return nil, err
	}
	uc.cache.SetSku(ctx, gen, id, resp)
	return resp, nil
}

// List lista SKUs con filtros opcionales.
func (uc *SkuUseCase) List(ctx context.Context, in dto.SkuFilterRequest, page dto.PageRequest) (*dto.SkuListResponse, error) {
	page = normalizePage(page)
	filter := repository.SkuFilter{
		Name:      optString(in.Name),
		Slug:      optString(in.Slug),
		ProductID: in.ProductID,
		IsActive:  in.IsActive,
	}
	if n := optString(in.SkuNumber); n != nil {
		upper := strings.ToUpper(*n)
		filter.SkuNumber = &upper
	}
	list, err := uc.repos.Skus.List(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.repos.Skus.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	loader := newTreeLoader(uc.repos, uc.maxDepth)
	items := make([]dto.SkuResponse, 0, len(list))
	for _, sku := range list {
		resp, err := uc.buildResponse(ctx, loader, sku)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return &dto.SkuListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// buildResponse arma tramos (con lista de precios), valores (con atributo) y el full path
// categorías → producto → SKU.
func (uc *SkuUseCase) buildResponse(ctx context.Context, loader *treeLoader, sku *entity.Sku) (*dto.SkuResponse, error) {
	repos := loader.repos
	product, err := repos.Products.GetByID(ctx, sku.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("product", "el producto %d no existe", sku.ProductID)
	}
	path, err := loader.fullPath(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	path = append(path,
		entity.PathItem{Name: product.Name, Slug: product.Slug, Kind: entity.PathKindProduct},
		entity.PathItem{Name: sku.Name, Slug: sku.Slug, SkuNumber: sku.SkuNumber, Kind: entity.PathKindSKU},
	)

	details, err := repos.PriceDetails.ListBySku(ctx, sku.ID)
	if err != nil {
		return nil, err
	}
	plIDs := make([]int64, 0, len(details))
	for _, pd := range details {
		plIDs = append(plIDs, pd.PricelistID)
	}
	pricelists, err := repos.Pricelists.ListByIDs(ctx, uniqueIDs(plIDs))
	if err != nil {
		return nil, err
	}
	plByID := make(map[int64]*entity.Pricelist, len(pricelists))
	for _, pl := range pricelists {
		plByID[pl.ID] = pl
	}

	values, err := repos.AttributeValues.ListBySku(ctx, sku.ID)
	if err != nil {
		return nil, err
	}
	attrIDs := make([]int64, 0, len(values))
	for _, v := range values {
		attrIDs = append(attrIDs, v.AttributeID)
	}
	attrs, err := repos.Attributes.ListByIDs(ctx, uniqueIDs(attrIDs))
	if err != nil {
		return nil, err
	}
	attrByID := make(map[int64]*entity.Attribute, len(attrs))
	for _, a := range attrs {
		attrByID[a.ID] = a
	}

	resp := &dto.SkuResponse{
		ID:                 sku.ID,
		Name:               sku.Name,
		Slug:               sku.Slug,
		SkuNumber:          sku.SkuNumber,
		ProductID:          sku.ProductID,
		Description:        sku.Description,
		IsActive:           sku.IsActive,
		Sequence:           sku.Sequence,
		CreatedAt:          sku.CreatedAt,
		UpdatedAt:          sku.UpdatedAt,
		CreatedBy:          sku.CreatedBy,
		UpdatedBy:          sku.UpdatedBy,
		PriceDetails:       make([]dto.PriceDetailSummary, 0, len(details)),
		SkuAttributeValues: make([]dto.AttributeValueSummary, 0, len(values)),
		FullPath:           toPathResponse(path),
	}
	for _, pd := range details {
		summary := dto.PriceDetailSummary{ID: pd.ID, Price: pd.Price, MinimumQuantity: pd.MinimumQuantity}
		if pl, ok := plByID[pd.PricelistID]; ok {
			summary.Pricelist = dto.PricelistSummary{ID: pl.ID, Name: pl.Name, Code: pl.Code}
		}
		resp.PriceDetails = append(resp.PriceDetails, summary)
	}
	for _, v := range values {
		summary := dto.AttributeValueSummary{ID: v.ID, Value: v.Value}
		if a, ok := attrByID[v.AttributeID]; ok {
			summary.Attribute = dto.AttributeSummary{ID: a.ID, Name: a.Name, Code: a.Code, DataType: string(a.DataType), UOM: a.UOM}
		}
		resp.SkuAttributeValues = append(resp.SkuAttributeValues, summary)
	}
	return resp, nil
}
