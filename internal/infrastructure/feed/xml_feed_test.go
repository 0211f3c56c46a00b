package feed

import (
	"bytes"
	"context"
	"encoding/xml"
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
)

func sampleSkus() []dto.SkuResponse {
	sub := "Subcategory"
	return []dto.SkuResponse{{
		ID:        7,
		Name:      "Pixel Negro 128GB",
		Slug:      "pixel-negro-128gb",
		SkuNumber: "A1B2C3D4E5",
		ProductID: 3,
		IsActive:  true,
		PriceDetails: []dto.PriceDetailSummary{
			{ID: 1, Price: decimal.RequireFromString("1250000.5"), MinimumQuantity: 1, Pricelist: dto.PricelistSummary{ID: 1, Name: "Retail", Code: "retail"}},
		},
		SkuAttributeValues: []dto.AttributeValueSummary{
			{ID: 1, Value: "128", Attribute: dto.AttributeSummary{Code: "storage", DataType: "NUMBER", UOM: "GB"}},
		},
		FullPath: []dto.PathItemResponse{
			{Name: "Electronics", Slug: "electronics", Type: "Category"},
			{Name: "Phones & Co", Slug: "phones-co", CategoryType: &sub, Type: "Category"},
			{Name: "Pixel 8", Type: "Product"},
			{Name: "Pixel Negro 128GB", SkuNumber: "A1B2C3D4E5", Type: "SKU"},
		},
	}}
}

// ──────────────────────────────────────────────────────────────────────────────

func TestEncodeSkuFeed_EstructuraDelDocumento(t *testing.T) {
	body, digest, err := NewXMLFeedEncoder(2).EncodeSkuFeed(context.Background(), sampleSkus())
	require.NoError(t, err)
	assert.Len(t, digest, 64)
	assert.True(t, bytes.HasPrefix(body, []byte(xml.Header)))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(body))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "catalog", root.Tag)
	assert.Equal(t, "1", root.SelectAttrValue("count", ""))

	sku := root.FindElement("sku")
	require.NotNil(t, sku)
	assert.Equal(t, "A1B2C3D4E5", sku.SelectAttrValue("number", ""))
	assert.Equal(t, "Pixel Negro 128GB", sku.FindElement("name").Text())

	nodes := sku.FindElements("path/node")
	require.Len(t, nodes, 4)
	assert.Equal(t, "Phones & Co", nodes[1].Text())
	assert.Equal(t, "Subcategory", nodes[1].SelectAttrValue("categoryType", ""))

	price := sku.FindElement("prices/price")
	require.NotNil(t, price)
	assert.Equal(t, "1250000.50", price.Text())
	assert.Equal(t, "retail", price.SelectAttrValue("pricelist", ""))

	attr := sku.FindElement("attributes/attribute")
	require.NotNil(t, attr)
	assert.Equal(t, "GB", attr.SelectAttrValue("uom", ""))
}

func TestEncodeSkuFeed_DigestEstable(t *testing.T) {
	enc := NewXMLFeedEncoder(0)
	_, d1, err := enc.EncodeSkuFeed(context.Background(), sampleSkus())
	require.NoError(t, err)
	_, d2, err := enc.EncodeSkuFeed(context.Background(), sampleSkus())
	require.NoError(t, err)
	assert.Equal(t, d1, d2)

	changed := sampleSkus()
	changed[0].PriceDetails[0].Price = decimal.NewFromInt(999)
	_, d3, err := enc.EncodeSkuFeed(context.Background(), changed)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)
}

func TestEncodeSkuFeed_Vacio(t *testing.T) {
	body, digest, err := NewXMLFeedEncoder(0).EncodeSkuFeed(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.Contains(t, string(body), `count="0"`)
}

func TestEncodeSkuFeed_IndentacionNoCambiaDigest(t *testing.T) {
	compactBody, d1, err := NewXMLFeedEncoder(0).EncodeSkuFeed(context.Background(), sampleSkus())
	require.NoError(t, err)
	indentedBody, d2, err := NewXMLFeedEncoder(4).EncodeSkuFeed(context.Background(), sampleSkus())
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Greater(t, len(indentedBody), len(compactBody))
}
