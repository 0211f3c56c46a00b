// Package pdf genera la ficha técnica de un SKU en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del SKU + slug  │  N° SKU + estado          │
//	│  RUTA: Categoría › ... › Producto › SKU                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DESCRIPCIÓN                                                 │
//	│  TABLA ATRIBUTOS: Atributo | Código | Valor                  │
//	│  TABLA PRECIOS: Lista | Cant. mínima | Precio                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR del número de SKU + fecha de actualización       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorMuted   = &props.Color{Red: 170, Green: 170, Blue: 170}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// SkuSheetRenderer implementa ports.SkuSheetRenderer usando Maroto v2.
type SkuSheetRenderer struct {
	author string
}

// NewSkuSheetRenderer construye el renderer. author aparece en los metadatos del PDF.
func NewSkuSheetRenderer(author string) *SkuSheetRenderer {
	return &SkuSheetRenderer{author: nonEmpty(author, "Catálogo")}
}

// RenderSkuSheet genera el PDF y devuelve sus bytes.
func (r *SkuSheetRenderer) RenderSkuSheet(_ context.Context, sku *dto.SkuResponse) ([]byte, error) {
	if sku == nil {
		return nil, fmt.Errorf("pdf: sku nulo")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha técnica "+sku.SkuNumber, true).
		WithAuthor(r.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sku))
	m.AddRows(pathRow(sku.FullPath))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if sku.Description != "" {
		m.AddRows(sectionTitle("DESCRIPCIÓN"))
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New(sku.Description, props.Text{Size: 9, Top: 1}),
		)))
	}

	m.AddRows(sectionTitle("ATRIBUTOS"))
	m.AddRows(attributeRows(sku.SkuAttributeValues)...)

	m.AddRows(sectionTitle("PRECIOS"))
	m.AddRows(priceRows(sku.PriceDetails)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(sku))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ficha %s: %w", sku.SkuNumber, err)
	}
	return doc.GetBytes(), nil
}

var _ ports.SkuSheetRenderer = (*SkuSheetRenderer)(nil)

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre + slug (izq) y número de SKU + estado (der).
func headerRow(sku *dto.SkuResponse) core.Row {
	status := "ACTIVO"
	if !sku.IsActive {
		status = "INACTIVO"
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(sku.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(sku.Slug, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("FICHA TÉCNICA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(sku.SkuNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(status, props.Text{Size: 7, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func pathRow(path []dto.PathItemResponse) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(breadcrumb(path), props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

func sectionTitle(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3}),
	))
}

func tableHeader(labels []string, sizes []int, aligns []align.Type) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: aligns[i], Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorMuted, Top: 1, Left: 1}),
	))
}

// attributeRows: una fila por valor de atributo, ordenadas por nombre del atributo.
func attributeRows(values []dto.AttributeValueSummary) []core.Row {
	if len(values) == 0 {
		return []core.Row{emptyRow("Sin atributos registrados.")}
	}
	sorted := append([]dto.AttributeValueSummary(nil), values...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Attribute.Name < sorted[j].Attribute.Name
	})
	sizes := []int{5, 3, 4}
	rows := []core.Row{tableHeader(
		[]string{"Atributo", "Código", "Valor"}, sizes,
		[]align.Type{align.Left, align.Left, align.Right},
	)}
	for _, v := range sorted {
		rows = append(rows, row.New(6).Add(
			col.New(sizes[0]).Add(text.New(v.Attribute.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(sizes[1]).Add(text.New(v.Attribute.Code, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(sizes[2]).Add(text.New(attributeValueLabel(v), props.Text{Size: 8, Top: 1, Right: 1, Align: align.Right})),
		))
	}
	return rows
}

// priceRows: tramos agrupados por lista de precios y ordenados por cantidad mínima.
func priceRows(details []dto.PriceDetailSummary) []core.Row {
	if len(details) == 0 {
		return []core.Row{emptyRow("Sin precios registrados.")}
	}
	sorted := sortTiers(details)
	sizes := []int{6, 3, 3}
	rows := []core.Row{tableHeader(
		[]string{"Lista de precios", "Cant. mínima", "Precio"}, sizes,
		[]align.Type{align.Left, align.Center, align.Right},
	)}
	for _, d := range sorted {
		rows = append(rows, row.New(6).Add(
			col.New(sizes[0]).Add(text.New(d.Pricelist.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(sizes[1]).Add(text.New(fmt.Sprintf("%d", d.MinimumQuantity), props.Text{Size: 8, Top: 1, Align: align.Center})),
			col.New(sizes[2]).Add(text.New("$"+formatPrice(d.Price), props.Text{Size: 8, Top: 1, Right: 1, Align: align.Right})),
		))
	}
	return rows
}

// footerRow: QR con el número de SKU y fecha de última actualización.
func footerRow(sku *dto.SkuResponse) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(sku.SkuNumber, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Escanea el código para identificar el SKU en bodega.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Actualizado: "+sku.UpdatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorMuted,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// breadcrumb une los nombres del full path. Ej: "Electrónica › Celulares › Pixel 8 › Pixel Negro".
func breadcrumb(path []dto.PathItemResponse) string {
	if len(path) == 0 {
		return "—"
	}
	names := make([]string, 0, len(path))
	for _, p := range path {
		names = append(names, p.Name)
	}
	return strings.Join(names, " › ")
}

func attributeValueLabel(v dto.AttributeValueSummary) string {
	if v.Attribute.UOM == "" {
		return v.Value
	}
	return v.Value + " " + v.Attribute.UOM
}

func sortTiers(details []dto.PriceDetailSummary) []dto.PriceDetailSummary {
	sorted := append([]dto.PriceDetailSummary(nil), details...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Pricelist.Name != sorted[j].Pricelist.Name {
			return sorted[i].Pricelist.Name < sorted[j].Pricelist.Name
		}
		return sorted[i].MinimumQuantity < sorted[j].MinimumQuantity
	})
	return sorted
}

// formatPrice separa miles con punto y decimales con coma.
// Ej: 25000 → "25.000,00", 1234567.5 → "1.234.567,50"
func formatPrice(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")
	out := formatThousands(intPart) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// formatThousands inserta puntos de miles en un string numérico sin decimales.
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
