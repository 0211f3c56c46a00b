package catalogtest

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// Los colaboradores externos (productos, atributos, listas de precios) no tienen casos de uso
// en el catálogo; los tests los cargan directamente.

// AddProduct inserta un producto y devuelve su id.
func (s *Store) AddProduct(p entity.Product) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.st.newID()
	s.st.products[p.ID] = p
	return p.ID
}

// AddAttribute inserta un atributo y devuelve su id.
func (s *Store) AddAttribute(a entity.Attribute) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.st.newID()
	s.st.attributes[a.ID] = a
	return a.ID
}

// AddPricelist inserta una lista de precios y devuelve su id.
func (s *Store) AddPricelist(pl entity.Pricelist) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	pl.ID = s.st.newID()
	s.st.pricelists[pl.ID] = pl
	return pl.ID
}

// PutCategory escribe una categoría sin pasar por los constraints; sirve para simular datos
// corruptos (ciclos) que la BD no dejaría crear.
func (s *Store) PutCategory(c entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.st.newID()
	}
	if c.ID > s.st.nextID {
		s.st.nextID = c.ID
	}
	s.st.categories[c.ID] = storedCategory(&c)
}

// SkuCount cantidad de SKUs confirmados.
func (s *Store) SkuCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.skus)
}

// PriceDetailCount cantidad de tramos confirmados.
func (s *Store) PriceDetailCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.priceDetails)
}

// AttributeValueCount cantidad de valores de atributo confirmados.
func (s *Store) AttributeValueCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.attributeValues)
}
