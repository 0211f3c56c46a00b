package commands

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/pkg/slug"
)

// pathSeparator separa niveles en la columna path: "Electronics/Phones/Android".
const pathSeparator = "/"

// categoryRow fila del CSV de importación: tipo de la raíz, ruta completa y descripción de la hoja.
type categoryRow struct {
	Line        int
	Type        string
	Path        []string
	Description string
}

// decodeReader envuelve r según el charset declarado. Exportaciones de ERPs viejos suelen venir en Latin-1.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	}
	return nil, fmt.Errorf("charset no soportado: %s", charset)
}

// parseCategoryRows lee el CSV (cabecera type,path[,description]). Líneas vacías se ignoran.
func parseCategoryRows(r io.Reader, charset string) ([]categoryRow, error) {
	dec, err := decodeReader(r, charset)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	typeCol, okType := cols["type"]
	pathCol, okPath := cols["path"]
	if !okType || !okPath {
		return nil, errors.New("la cabecera debe incluir las columnas type y path")
	}
	descCol, hasDesc := cols["description"]

	var rows []categoryRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		field := func(i int) string {
			if i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		var path []string
		for _, p := range strings.Split(field(pathCol), pathSeparator) {
			if p = strings.TrimSpace(p); p != "" {
				path = append(path, p)
			}
		}
		if len(path) == 0 {
			continue
		}
		row := categoryRow{Line: line, Type: field(typeCol), Path: path}
		if hasDesc {
			row.Description = field(descCol)
		}
		if row.Type == "" {
			return nil, fmt.Errorf("línea %d: type es obligatorio", line)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// importResult resumen de una importación.
type importResult struct {
	TypesCreated      int
	CategoriesCreated int
	CategoriesReused  int
}

// importer crea tipos y rutas de categorías reutilizando lo que ya existe por slug.
type importer struct {
	uc     *useCases
	actor  int64
	result importResult
}

func (im *importer) ensureType(ctx context.Context, name string) (int64, error) {
	existing, err := im.uc.repos.CategoryTypes.GetBySlug(ctx, slug.Make(name))
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return existing.ID, nil
	}
	ct, err := im.uc.types.Create(ctx, im.actor, dto.CreateCategoryTypeRequest{Name: name})
	if err != nil {
		return 0, err
	}
	im.result.TypesCreated++
	return ct.ID, nil
}

// ensurePath crea los niveles faltantes de path y devuelve el id de la hoja.
// Un slug existente bajo otro padre, o una raíz existente de otro tipo, es un conflicto: los slugs son globales.
func (im *importer) ensurePath(ctx context.Context, typeName string, path []string, leafDescription string) (int64, error) {
	typeID, err := im.ensureType(ctx, typeName)
	if err != nil {
		return 0, err
	}
	var parentID *int64
	for i, name := range path {
		existing, err := im.uc.repos.Categories.GetBySlug(ctx, slug.Make(name))
		if err != nil {
			return 0, err
		}
		if existing != nil {
			if !sameParent(existing.ParentID, parentID) {
				return 0, domain.AlreadyExists("category", "la categoría '%s' ya existe bajo otro padre", name)
			}
			if parentID == nil && !sameParent(existing.CategoryTypeID, &typeID) {
				return 0, domain.AlreadyExists("category", "la categoría raíz '%s' ya existe con otro tipo", name)
			}
			im.result.CategoriesReused++
			id := existing.ID
			parentID = &id
			continue
		}
		in := dto.CreateCategoryRequest{Name: name, Sequence: i}
		if parentID == nil {
			in.CategoryTypeID = &typeID
		} else {
			in.ParentID = parentID
		}
		if i == len(path)-1 {
			in.Description = leafDescription
		}
		created, err := im.uc.categories.Create(ctx, im.actor, in)
		if err != nil {
			return 0, err
		}
		im.result.CategoriesCreated++
		id := created.ID
		parentID = &id
	}
	return *parentID, nil
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// importRows aplica las filas en orden; se detiene en el primer error indicando la línea.
func (im *importer) importRows(ctx context.Context, rows []categoryRow) error {
	for _, row := range rows {
		if _, err := im.ensurePath(ctx, row.Type, row.Path, row.Description); err != nil {
			return fmt.Errorf("línea %d: %w", row.Line, err)
		}
	}
	return nil
}
