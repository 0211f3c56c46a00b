package catalogtest

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

type productRepo struct{ v view }

func (r productRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.v.read(func(st *state) error {
		if p, ok := st.products[id]; ok {
			out = &p
		}
		return nil
	})
	return out, err
}

type skuRepo struct{ v view }

func checkSku(st *state, s *entity.Sku) error {
	if _, ok := st.products[s.ProductID]; !ok {
		return missingFK("skus_product_id_fkey")
	}
	if len(s.SkuNumber) != 10 || strings.ToUpper(s.SkuNumber) != s.SkuNumber {
		return checkViolation("chk_sku_number_format")
	}
	for _, other := range st.skus {
		if other.ID == s.ID {
			continue
		}
		switch {
		case other.Name == s.Name:
			return duplicate("skus_name_key")
		case other.Slug == s.Slug:
			return duplicate("skus_slug_key")
		case other.SkuNumber == s.SkuNumber:
			return duplicate("skus_sku_number_key")
		}
	}
	return nil
}

func (r skuRepo) Create(_ context.Context, s *entity.Sku) error {
	return r.v.write("Skus.Create", func(st *state) error {
		if err := checkSku(st, s); err != nil {
			return err
		}
		s.ID = st.newID()
		st.skus[s.ID] = *s
		return nil
	})
}

func (r skuRepo) find(match func(entity.Sku) bool) (*entity.Sku, error) {
	var out *entity.Sku
	err := r.v.read(func(st *state) error {
		for _, s := range st.skus {
			if match(s) {
				s := s
				out = &s
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r skuRepo) GetByID(_ context.Context, id int64) (*entity.Sku, error) {
	return r.find(func(s entity.Sku) bool { return s.ID == id })
}

func (r skuRepo) GetByName(_ context.Context, name string) (*entity.Sku, error) {
	return r.find(func(s entity.Sku) bool { return s.Name == name })
}

func (r skuRepo) GetBySlug(_ context.Context, slug string) (*entity.Sku, error) {
	return r.find(func(s entity.Sku) bool { return s.Slug == slug })
}

func (r skuRepo) GetBySkuNumber(_ context.Context, skuNumber string) (*entity.Sku, error) {
	return r.find(func(s entity.Sku) bool { return s.SkuNumber == skuNumber })
}

func (r skuRepo) Update(_ context.Context, s *entity.Sku) error {
	return r.v.write("Skus.Update", func(st *state) error {
		if _, ok := st.skus[s.ID]; !ok {
			return notFoundRow("skus", s.ID)
		}
		if err := checkSku(st, s); err != nil {
			return err
		}
		st.skus[s.ID] = *s
		return nil
	})
}

func matchSku(s entity.Sku, f repository.SkuFilter) bool {
	if f.Name != nil && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(*f.Name)) {
		return false
	}
	if f.Slug != nil && s.Slug != *f.Slug {
		return false
	}
	if f.SkuNumber != nil && s.SkuNumber != *f.SkuNumber {
		return false
	}
	if f.ProductID != nil && s.ProductID != *f.ProductID {
		return false
	}
	if f.IsActive != nil && s.IsActive != *f.IsActive {
		return false
	}
	return true
}

func (r skuRepo) List(_ context.Context, f repository.SkuFilter, limit, offset int) ([]*entity.Sku, error) {
	var out []*entity.Sku
	err := r.v.read(func(st *state) error {
		var all []entity.Sku
		for _, s := range st.skus {
			if matchSku(s, f) {
				all = append(all, s)
			}
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].Sequence != all[j].Sequence {
				return all[i].Sequence < all[j].Sequence
			}
			return all[i].ID < all[j].ID
		})
		for _, s := range page(all, limit, offset) {
			s := s
			out = append(out, &s)
		}
		return nil
	})
	return out, err
}

func (r skuRepo) Count(_ context.Context, f repository.SkuFilter) (int, error) {
	var n int
	err := r.v.read(func(st *state) error {
		for _, s := range st.skus {
			if matchSku(s, f) {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r skuRepo) SetActive(_ context.Context, id int64, active bool, actorID int64) error {
	return r.v.write("Skus.SetActive", func(st *state) error {
		s, ok := st.skus[id]
		if !ok {
			return notFoundRow("skus", id)
		}
		s.IsActive = active
		s.UpdatedBy = actorID
		st.skus[id] = s
		return nil
	})
}

type priceDetailRepo struct{ v view }

// checkPriceDetail emula los CHECK de precio y cantidad, las FK y uq_price_detail.
func checkPriceDetail(st *state, pd *entity.PriceDetail) error {
	if !pd.Price.GreaterThan(decimal.Zero) {
		return checkViolation("chk_price_detail_price_positive")
	}
	if pd.MinimumQuantity < 1 {
		return checkViolation("chk_price_detail_min_qty")
	}
	if _, ok := st.skus[pd.SkuID]; !ok {
		return missingFK("price_details_sku_id_fkey")
	}
	if _, ok := st.pricelists[pd.PricelistID]; !ok {
		return missingFK("price_details_pricelist_id_fkey")
	}
	for _, other := range st.priceDetails {
		if other.ID != pd.ID && other.SkuID == pd.SkuID && other.PricelistID == pd.PricelistID && other.MinimumQuantity == pd.MinimumQuantity {
			return duplicate("uq_price_detail")
		}
	}
	return nil
}

func (r priceDetailRepo) Create(_ context.Context, pd *entity.PriceDetail) error {
	return r.v.write("PriceDetails.Create", func(st *state) error {
		if err := checkPriceDetail(st, pd); err != nil {
			return err
		}
		pd.ID = st.newID()
		st.priceDetails[pd.ID] = *pd
		return nil
	})
}

func (r priceDetailRepo) GetByID(_ context.Context, id int64) (*entity.PriceDetail, error) {
	var out *entity.PriceDetail
	err := r.v.read(func(st *state) error {
		if pd, ok := st.priceDetails[id]; ok {
			out = &pd
		}
		return nil
	})
	return out, err
}

func (r priceDetailRepo) Update(_ context.Context, pd *entity.PriceDetail) error {
	return r.v.write("PriceDetails.Update", func(st *state) error {
		if _, ok := st.priceDetails[pd.ID]; !ok {
			return notFoundRow("price_details", pd.ID)
		}
		if err := checkPriceDetail(st, pd); err != nil {
			return err
		}
		st.priceDetails[pd.ID] = *pd
		return nil
	})
}

func (r priceDetailRepo) Delete(_ context.Context, id int64) error {
	return r.v.write("PriceDetails.Delete", func(st *state) error {
		delete(st.priceDetails, id)
		return nil
	})
}

func (r priceDetailRepo) ListBySku(_ context.Context, skuID int64) ([]*entity.PriceDetail, error) {
	var out []*entity.PriceDetail
	err := r.v.read(func(st *state) error {
		var all []entity.PriceDetail
		for _, pd := range st.priceDetails {
			if pd.SkuID == skuID {
				all = append(all, pd)
			}
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
		for _, pd := range all {
			pd := pd
			out = append(out, &pd)
		}
		return nil
	})
	return out, err
}

type attributeValueRepo struct{ v view }

func (r attributeValueRepo) Create(_ context.Context, av *entity.SkuAttributeValue) error {
	return r.v.write("AttributeValues.Create", func(st *state) error {
		if av.Value == "" || len([]rune(av.Value)) > 50 {
			return checkViolation("chk_sku_attribute_value_length")
		}
		if _, ok := st.skus[av.SkuID]; !ok {
			return missingFK("sku_attribute_values_sku_id_fkey")
		}
		if _, ok := st.attributes[av.AttributeID]; !ok {
			return missingFK("sku_attribute_values_attribute_id_fkey")
		}
		for _, other := range st.attributeValues {
			if other.SkuID == av.SkuID && other.AttributeID == av.AttributeID {
				return duplicate("uq_sku_attribute")
			}
		}
		av.ID = st.newID()
		st.attributeValues[av.ID] = *av
		return nil
	})
}

func (r attributeValueRepo) DeleteBySku(_ context.Context, skuID int64) (int64, error) {
	var n int64
	err := r.v.write("AttributeValues.DeleteBySku", func(st *state) error {
		for id, av := range st.attributeValues {
			if av.SkuID == skuID {
				delete(st.attributeValues, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r attributeValueRepo) ListBySku(_ context.Context, skuID int64) ([]*entity.SkuAttributeValue, error) {
	var out []*entity.SkuAttributeValue
	err := r.v.read(func(st *state) error {
		var all []entity.SkuAttributeValue
		for _, av := range st.attributeValues {
			if av.SkuID == skuID {
				all = append(all, av)
			}
		}
		sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
		for _, av := range all {
			av := av
			out = append(out, &av)
		}
		return nil
	})
	return out, err
}

type attributeRepo struct{ v view }

func (r attributeRepo) listByIDs(ids []int64, activeOnly bool) ([]*entity.Attribute, error) {
	var out []*entity.Attribute
	err := r.v.read(func(st *state) error {
		for _, id := range ids {
			a, ok := st.attributes[id]
			if !ok || (activeOnly && !a.IsActive) {
				continue
			}
			out = append(out, &a)
		}
		return nil
	})
	return out, err
}

func (r attributeRepo) ListActiveByIDs(_ context.Context, ids []int64) ([]*entity.Attribute, error) {
	return r.listByIDs(ids, true)
}

func (r attributeRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Attribute, error) {
	return r.listByIDs(ids, false)
}

type pricelistRepo struct{ v view }

func (r pricelistRepo) listByIDs(ids []int64, activeOnly bool) ([]*entity.Pricelist, error) {
	var out []*entity.Pricelist
	err := r.v.read(func(st *state) error {
		for _, id := range ids {
			pl, ok := st.pricelists[id]
			if !ok || (activeOnly && !pl.IsActive) {
				continue
			}
			out = append(out, &pl)
		}
		return nil
	})
	return out, err
}

func (r pricelistRepo) ListActiveByIDs(_ context.Context, ids []int64) ([]*entity.Pricelist, error) {
	return r.listByIDs(ids, true)
}

func (r pricelistRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Pricelist, error) {
	return r.listByIDs(ids, false)
}
