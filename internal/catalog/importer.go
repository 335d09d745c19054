package catalog

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Importer converts a vendor's HTML price list into a catalog. Price lists
// are expected to carry one product per table row: name, price, unit,
// category. Rows that do not parse are skipped, not fatal.
type Importer struct {
	client *http.Client
}

// NewImporter creates an Importer with a bounded HTTP timeout.
func NewImporter() *Importer {
	return &Importer{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// ImportURL fetches a price-list page and builds a catalog for the vendor.
func (imp *Importer) ImportURL(url string, v Vendor) (*Catalog, error) {
	resp, err := imp.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch price list: status %d", resp.StatusCode)
	}
	return imp.ImportReader(resp.Body, v)
}

// ImportReader builds a catalog from price-list HTML.
func (imp *Importer) ImportReader(r io.Reader, v Vendor) (*Catalog, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price list HTML: %w", err)
	}

	// Strip navigation noise before scanning for product rows.
	doc.Find("script, style, nav, footer, iframe").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	var products []Product
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return // header or spacer row
		}
		name := strings.TrimSpace(cells.Eq(0).Text())
		price := parsePrice(cells.Eq(1).Text())
		if name == "" || price <= 0 {
			return
		}
		p := Product{
			Key:   strings.ToLower(name),
			Name:  name,
			Price: price,
		}
		if cells.Length() > 2 {
			p.Unit = strings.TrimSpace(cells.Eq(2).Text())
		}
		if cells.Length() > 3 {
			p.Category = strings.ToLower(strings.TrimSpace(cells.Eq(3).Text()))
		}
		products = append(products, p)
	})

	if len(products) == 0 {
		return nil, fmt.Errorf("no product rows found in price list for vendor %s", v.ID)
	}
	return New(v, products)
}

func parsePrice(text string) float64 {
	cleaned := strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '$' || r == ',' {
			return -1
		}
		return r
	}, text))
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
