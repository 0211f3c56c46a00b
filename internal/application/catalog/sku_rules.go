package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	domcatalog "github.com/jhoicas/Catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// priceTier tramo ya normalizado (cantidad mínima por defecto aplicada y validado).
type priceTier struct {
	PricelistID     int64
	Price           decimal.Decimal
	MinimumQuantity int
}

func priceTiers(in []dto.PriceDetailInput) ([]priceTier, error) {
	tiers := make([]priceTier, 0, len(in))
	for _, pd := range in {
		qty := domcatalog.DefaultMinimumQuantity
		if pd.MinimumQuantity != nil {
			qty = *pd.MinimumQuantity
		}
		if err := domcatalog.ValidatePriceTier(pd.Price, qty); err != nil {
			return nil, err
		}
		tiers = append(tiers, priceTier{PricelistID: pd.PricelistID, Price: pd.Price, MinimumQuantity: qty})
	}
	return tiers, nil
}

// checkDistinctAttributes un SKU tiene a lo sumo un valor por atributo.
func checkDistinctAttributes(values []dto.AttributeValueInput) error {
	seen := make(map[int64]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v.AttributeID]; ok {
			return domain.Invalid("sku_attribute_value", "el atributo %d aparece más de una vez", v.AttributeID)
		}
		seen[v.AttributeID] = struct{}{}
	}
	return nil
}

// ensureUniqueSku nombre y slug únicos entre todos los SKUs (selfID se excluye en updates).
func ensureUniqueSku(ctx context.Context, repos Repositories, selfID int64, name, s string) error {
	byName, err := repos.Skus.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if byName != nil && byName.ID != selfID {
		return domain.AlreadyExists("sku", "ya existe un SKU con el nombre '%s'", name)
	}
	bySlug, err := repos.Skus.GetBySlug(ctx, s)
	if err != nil {
		return err
	}
	if bySlug != nil && bySlug.ID != selfID {
		return domain.AlreadyExists("sku", "ya existe un SKU con el slug '%s'", s)
	}
	return nil
}

func ensureActiveProduct(ctx context.Context, repos Repositories, id int64) error {
	p, err := repos.Products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil || !p.IsActive {
		return domain.NotFound("product", "el producto %d no existe o está inactivo", id)
	}
	return nil
}

// resolveAttributes carga en lote los atributos activos referenciados. Reporta juntos todos los
// ids faltantes y, si no falta ninguno, todos los valores que no cumplen su tipo.
func resolveAttributes(ctx context.Context, repos Repositories, values []dto.AttributeValueInput) error {
	if len(values) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(values))
	for _, v := range values {
		ids = append(ids, v.AttributeID)
	}
	ids = uniqueIDs(ids)
	found, err := repos.Attributes.ListActiveByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[int64]*entity.Attribute, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	var missing []int64
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return domain.NotFound("attribute", "atributos no encontrados o inactivos: %s", joinIDs(missing))
	}

	var problems []string
	for _, v := range values {
		a := byID[v.AttributeID]
		if len([]rune(v.Value)) > maxAttributeValueLen {
			problems = append(problems, domain.Invalid("sku_attribute_value", "el valor del atributo '%s' supera %d caracteres", a.Name, maxAttributeValueLen).Error())
			continue
		}
		if !domcatalog.ValidateAttributeValue(v.Value, a.DataType) {
			problems = append(problems, domcatalog.AttributeValueError{Attribute: a.Name, Value: v.Value, Expected: a.DataType}.Error())
		}
	}
	if len(problems) > 0 {
		return domain.Invalid("sku_attribute_value", "%s", strings.Join(problems, "; "))
	}
	return nil
}

// ensurePricelists todas las listas de precios referenciadas existen y están activas.
func ensurePricelists(ctx context.Context, repos Repositories, tiers []priceTier) error {
	if len(tiers) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(tiers))
	for _, t := range tiers {
		ids = append(ids, t.PricelistID)
	}
	ids = uniqueIDs(ids)
	found, err := repos.Pricelists.ListActiveByIDs(ctx, ids)
	if err != nil {
		return err
	}
	present := make(map[int64]struct{}, len(found))
	for _, pl := range found {
		present[pl.ID] = struct{}{}
	}
	var missing []int64
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return domain.NotFound("pricelist", "listas de precios no encontradas o inactivas: %s", joinIDs(missing))
	}
	return nil
}

func createPriceDetails(ctx context.Context, repos Repositories, actorID, skuID int64, tiers []priceTier, now time.Time) error {
	for _, t := range tiers {
		pd := &entity.PriceDetail{
			SkuID:           skuID,
			PricelistID:     t.PricelistID,
			Price:           t.Price,
			MinimumQuantity: t.MinimumQuantity,
		}
		pd.Stamp(actorID, now)
		if err := repos.PriceDetails.Create(ctx, pd); err != nil {
			return err
		}
	}
	return nil
}

func createAttributeValues(ctx context.Context, repos Repositories, actorID, skuID int64, values []dto.AttributeValueInput, now time.Time) error {
	for _, v := range values {
		av := &entity.SkuAttributeValue{
			SkuID:       skuID,
			AttributeID: v.AttributeID,
			Value:       strings.TrimSpace(v.Value),
		}
		av.Stamp(actorID, now)
		if err := repos.AttributeValues.Create(ctx, av); err != nil {
			return err
		}
	}
	return nil
}

// applyPriceDetailPatch borra, crea y actualiza tramos en ese orden. Los ids que no existen o
// pertenecen a otro SKU se ignoran en borrado y actualización.
func applyPriceDetailPatch(ctx context.Context, repos Repositories, actorID, skuID int64, patch dto.PriceDetailPatch, newTiers []priceTier, now time.Time) error {
	for _, id := range patch.ToDelete {
		pd, err := repos.PriceDetails.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if pd == nil || pd.SkuID != skuID {
			continue
		}
		if err := repos.PriceDetails.Delete(ctx, id); err != nil {
			return err
		}
	}

	if err := ensurePricelists(ctx, repos, newTiers); err != nil {
		return err
	}
	if err := createPriceDetails(ctx, repos, actorID, skuID, newTiers, now); err != nil {
		return err
	}

	for _, u := range patch.ToUpdate {
		pd, err := repos.PriceDetails.GetByID(ctx, u.ID)
		if err != nil {
			return err
		}
		if pd == nil || pd.SkuID != skuID {
			continue
		}
		if u.Price != nil {
			pd.Price = *u.Price
		}
		if u.MinimumQuantity != nil {
			pd.MinimumQuantity = *u.MinimumQuantity
		}
		if err := domcatalog.ValidatePriceTier(pd.Price, pd.MinimumQuantity); err != nil {
			return err
		}
		pd.Touch(actorID, now)
		if err := repos.PriceDetails.Update(ctx, pd); err != nil {
			return err
		}
	}
	return nil
}
