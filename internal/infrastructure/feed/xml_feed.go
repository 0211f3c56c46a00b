// Package feed serializa SKUs del catálogo como feed XML para integraciones externas
// (marketplaces, ERPs de terceros). El digest se calcula sobre la forma canónica C14N del
// documento, de modo que dos feeds con el mismo contenido producen el mismo ETag.
package feed

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
)

// FeedVersion versión del formato del feed, se publica en el atributo version de la raíz.
const FeedVersion = "1"

// XMLFeedEncoder implementa ports.SkuFeedEncoder con etree.
type XMLFeedEncoder struct {
	indent int
}

// NewXMLFeedEncoder crea el encoder. indent <= 0 produce XML compacto.
func NewXMLFeedEncoder(indent int) *XMLFeedEncoder {
	return &XMLFeedEncoder{indent: indent}
}

// EncodeSkuFeed genera el documento y su digest SHA-256 (hex) sobre la forma canónica.
func (e *XMLFeedEncoder) EncodeSkuFeed(_ context.Context, skus []dto.SkuResponse) ([]byte, string, error) {
	doc := etree.NewDocument()
	root := doc.CreateElement("catalog")
	root.CreateAttr("version", FeedVersion)
	root.CreateAttr("count", strconv.Itoa(len(skus)))
	for i := range skus {
		writeSku(root, &skus[i])
	}

	// El digest se toma sobre la forma compacta: la indentación no cambia el ETag.
	compact, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("feed: serializar: %w", err)
	}
	digest, err := canonicalDigest(compact)
	if err != nil {
		return nil, "", err
	}

	raw := compact
	if e.indent > 0 {
		doc.Indent(e.indent)
		if raw, err = doc.WriteToBytes(); err != nil {
			return nil, "", fmt.Errorf("feed: serializar: %w", err)
		}
	}

	var out bytes.Buffer
	out.WriteString(xml.Header)
	out.Write(raw)
	return out.Bytes(), digest, nil
}

var _ ports.SkuFeedEncoder = (*XMLFeedEncoder)(nil)

func writeSku(parent *etree.Element, s *dto.SkuResponse) {
	el := parent.CreateElement("sku")
	el.CreateAttr("id", strconv.FormatInt(s.ID, 10))
	el.CreateAttr("number", s.SkuNumber)
	el.CreateAttr("active", strconv.FormatBool(s.IsActive))
	el.CreateAttr("productId", strconv.FormatInt(s.ProductID, 10))

	el.CreateElement("name").SetText(s.Name)
	el.CreateElement("slug").SetText(s.Slug)
	if s.Description != "" {
		el.CreateElement("description").SetText(s.Description)
	}

	path := el.CreateElement("path")
	for _, p := range s.FullPath {
		node := path.CreateElement("node")
		node.CreateAttr("type", p.Type)
		if p.Slug != "" {
			node.CreateAttr("slug", p.Slug)
		}
		if p.CategoryType != nil {
			node.CreateAttr("categoryType", *p.CategoryType)
		}
		node.SetText(p.Name)
	}

	attrs := el.CreateElement("attributes")
	for _, v := range s.SkuAttributeValues {
		a := attrs.CreateElement("attribute")
		a.CreateAttr("code", v.Attribute.Code)
		a.CreateAttr("type", v.Attribute.DataType)
		if v.Attribute.UOM != "" {
			a.CreateAttr("uom", v.Attribute.UOM)
		}
		a.SetText(v.Value)
	}

	prices := el.CreateElement("prices")
	for _, d := range s.PriceDetails {
		p := prices.CreateElement("price")
		p.CreateAttr("pricelist", d.Pricelist.Code)
		p.CreateAttr("minQty", strconv.Itoa(d.MinimumQuantity))
		p.SetText(d.Price.StringFixed(2))
	}
}

// canonicalDigest aplica C14N al documento y devuelve el SHA-256 en hex.
func canonicalDigest(raw []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Entity = map[string]string{}
	canon, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("feed: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canon)
	return hex.EncodeToString(sum[:]), nil
}
