package catalogtest

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

type categoryTypeRepo struct{ v view }

func (r categoryTypeRepo) Create(_ context.Context, ct *entity.CategoryType) error {
	return r.v.write("CategoryTypes.Create", func(st *state) error {
		for _, other := range st.categoryTypes {
			if other.Slug == ct.Slug {
				return duplicate("category_types_slug_key")
			}
		}
		ct.ID = st.newID()
		st.categoryTypes[ct.ID] = *ct
		return nil
	})
}

func (r categoryTypeRepo) GetByID(_ context.Context, id int64) (*entity.CategoryType, error) {
	var out *entity.CategoryType
	err := r.v.read(func(st *state) error {
		if ct, ok := st.categoryTypes[id]; ok {
			out = &ct
		}
		return nil
	})
	return out, err
}

func (r categoryTypeRepo) GetBySlug(_ context.Context, slug string) (*entity.CategoryType, error) {
	var out *entity.CategoryType
	err := r.v.read(func(st *state) error {
		for _, ct := range st.categoryTypes {
			if ct.Slug == slug {
				ct := ct
				out = &ct
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r categoryTypeRepo) Update(_ context.Context, ct *entity.CategoryType) error {
	return r.v.write("CategoryTypes.Update", func(st *state) error {
		if _, ok := st.categoryTypes[ct.ID]; !ok {
			return notFoundRow("category_types", ct.ID)
		}
		for _, other := range st.categoryTypes {
			if other.ID != ct.ID && other.Slug == ct.Slug {
				return duplicate("category_types_slug_key")
			}
		}
		st.categoryTypes[ct.ID] = *ct
		return nil
	})
}

func (r categoryTypeRepo) List(_ context.Context, limit, offset int) ([]*entity.CategoryType, error) {
	var out []*entity.CategoryType
	err := r.v.read(func(st *state) error {
		all := make([]entity.CategoryType, 0, len(st.categoryTypes))
		for _, ct := range st.categoryTypes {
			all = append(all, ct)
		}
		sort.Slice(all, func(i, j int) bool {
			if all[i].Sequence != all[j].Sequence {
				return all[i].Sequence < all[j].Sequence
			}
			return all[i].ID < all[j].ID
		})
		for _, ct := range page(all, limit, offset) {
			ct := ct
			out = append(out, &ct)
		}
		return nil
	})
	return out, err
}

func (r categoryTypeRepo) Count(_ context.Context) (int, error) {
	var n int
	err := r.v.read(func(st *state) error {
		n = len(st.categoryTypes)
		return nil
	})
	return n, err
}

func (r categoryTypeRepo) SetActive(_ context.Context, id int64, active bool, actorID int64) error {
	return r.v.write("CategoryTypes.SetActive", func(st *state) error {
		ct, ok := st.categoryTypes[id]
		if !ok {
			return notFoundRow("category_types", id)
		}
		ct.IsActive = active
		ct.UpdatedBy = actorID
		st.categoryTypes[id] = ct
		return nil
	})
}

type categoryRepo struct{ v view }

// checkCategory emula chk_category_hierarchy_rule, chk_category_not_self_parent, las FK y el slug único.
func checkCategory(st *state, c *entity.Category) error {
	if (c.ParentID == nil) == (c.CategoryTypeID == nil) {
		return checkViolation("chk_category_hierarchy_rule")
	}
	if c.ParentID != nil && *c.ParentID == c.ID {
		return checkViolation("chk_category_not_self_parent")
	}
	if c.ParentID != nil {
		if _, ok := st.categories[*c.ParentID]; !ok {
			return missingFK("categories_parent_id_fkey")
		}
	}
	if c.CategoryTypeID != nil {
		if _, ok := st.categoryTypes[*c.CategoryTypeID]; !ok {
			return missingFK("categories_category_type_id_fkey")
		}
	}
	for _, other := range st.categories {
		if other.ID != c.ID && other.Slug == c.Slug {
			return duplicate("categories_slug_key")
		}
	}
	return nil
}

func storedCategory(c *entity.Category) entity.Category {
	out := *c
	out.ParentID = copyID(c.ParentID)
	out.CategoryTypeID = copyID(c.CategoryTypeID)
	return out
}

func (r categoryRepo) Create(_ context.Context, c *entity.Category) error {
	return r.v.write("Categories.Create", func(st *state) error {
		if err := checkCategory(st, c); err != nil {
			return err
		}
		c.ID = st.newID()
		st.categories[c.ID] = storedCategory(c)
		return nil
	})
}

func (r categoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	var out *entity.Category
	err := r.v.read(func(st *state) error {
		if c, ok := st.categories[id]; ok {
			c = storedCategory(&c)
			out = &c
		}
		return nil
	})
	return out, err
}

func (r categoryRepo) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	var out *entity.Category
	err := r.v.read(func(st *state) error {
		for _, c := range st.categories {
			if c.Slug == slug {
				c = storedCategory(&c)
				out = &c
				return nil
			}
		}
		return nil
	})
	return out, err
}

func (r categoryRepo) Update(_ context.Context, c *entity.Category) error {
	return r.v.write("Categories.Update", func(st *state) error {
		if _, ok := st.categories[c.ID]; !ok {
			return notFoundRow("categories", c.ID)
		}
		if err := checkCategory(st, c); err != nil {
			return err
		}
		st.categories[c.ID] = storedCategory(c)
		return nil
	})
}

func matchCategory(c entity.Category, f repository.CategoryFilter) bool {
	if f.TopLevel && c.ParentID != nil {
		return false
	}
	if f.Name != nil && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(*f.Name)) {
		return false
	}
	if f.Slug != nil && c.Slug != *f.Slug {
		return false
	}
	if f.CategoryTypeID != nil && (c.CategoryTypeID == nil || *c.CategoryTypeID != *f.CategoryTypeID) {
		return false
	}
	if f.ParentID != nil && (c.ParentID == nil || *c.ParentID != *f.ParentID) {
		return false
	}
	if f.IsActive != nil && c.IsActive != *f.IsActive {
		return false
	}
	return true
}

func sortedCategories(st *state, keep func(entity.Category) bool) []entity.Category {
	var all []entity.Category
	for _, c := range st.categories {
		if keep(c) {
			all = append(all, storedCategory(&c))
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Sequence != all[j].Sequence {
			return all[i].Sequence < all[j].Sequence
		}
		return all[i].ID < all[j].ID
	})
	return all
}

func (r categoryRepo) List(_ context.Context, f repository.CategoryFilter, limit, offset int) ([]*entity.Category, error) {
	var out []*entity.Category
	err := r.v.read(func(st *state) error {
		all := sortedCategories(st, func(c entity.Category) bool { return matchCategory(c, f) })
		for _, c := range page(all, limit, offset) {
			c := c
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r categoryRepo) Count(_ context.Context, f repository.CategoryFilter) (int, error) {
	var n int
	err := r.v.read(func(st *state) error {
		for _, c := range st.categories {
			if matchCategory(c, f) {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r categoryRepo) ListActiveChildren(_ context.Context, parentID int64) ([]*entity.Category, error) {
	var out []*entity.Category
	err := r.v.read(func(st *state) error {
		all := sortedCategories(st, func(c entity.Category) bool {
			return c.IsActive && c.ParentID != nil && *c.ParentID == parentID
		})
		for _, c := range all {
			c := c
			out = append(out, &c)
		}
		return nil
	})
	return out, err
}

func (r categoryRepo) CountActiveChildren(_ context.Context, parentID int64) (int, error) {
	var n int
	err := r.v.read(func(st *state) error {
		for _, c := range st.categories {
			if c.IsActive && c.ParentID != nil && *c.ParentID == parentID {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r categoryRepo) CountActiveByType(_ context.Context, categoryTypeID int64) (int, error) {
	var n int
	err := r.v.read(func(st *state) error {
		for _, c := range st.categories {
			if c.IsActive && c.CategoryTypeID != nil && *c.CategoryTypeID == categoryTypeID {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r categoryRepo) SetActive(_ context.Context, id int64, active bool, actorID int64) error {
	return r.v.write("Categories.SetActive", func(st *state) error {
		c, ok := st.categories[id]
		if !ok {
			return notFoundRow("categories", id)
		}
		c.IsActive = active
		c.UpdatedBy = actorID
		st.categories[id] = c
		return nil
	})
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}
