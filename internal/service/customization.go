package service

import (
	"errors"
	"fmt"

	"dreamtrip/internal/catalog"
	"dreamtrip/internal/model"

	"github.com/shopspring/decimal"
)

const defaultPackageID = "base"

// Customization lookup errors
var (
	ErrUnknownModel   = errors.New("unknown model")
	ErrUnknownPackage = errors.New("unknown package")
	ErrUnknownExtra   = errors.New("unknown extra")
	ErrUnknownColor   = errors.New("unknown color")
)

// CustomizationService prices a configured vehicle
type CustomizationService struct {
	catalog *catalog.Catalog
}

// NewCustomizationService creates a customization service
func NewCustomizationService(cat *catalog.Catalog) *CustomizationService {
	return &CustomizationService{catalog: cat}
}

// Price sums the model price, the package price and each distinct extra
func (s *CustomizationService) Price(req model.CustomizationRequest) (*model.CustomizationQuote, error) {
	m, ok := s.catalog.Resolve(req.ModelID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModel, req.ModelID)
	}

	pkgID := req.PackageID
	if pkgID == "" {
		pkgID = defaultPackageID
	}
	pkg, ok := s.catalog.Package(pkgID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPackage, pkgID)
	}

	quote := &model.CustomizationQuote{
		ModelID:   m.ID,
		Model:     m.Name,
		BasePrice: m.Price,
		Package:   model.PricedItem{ID: pkg.ID, Name: pkg.Name, Price: pkg.Price},
		Extras:    []model.PricedItem{},
	}

	if req.ColorID != "" {
		col, ok := s.catalog.Color(req.ColorID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColor, req.ColorID)
		}
		quote.Color = &model.PricedItem{ID: col.ID, Name: col.Name}
	}

	total := decimal.NewFromFloat(m.Price).Add(decimal.NewFromFloat(pkg.Price))
	seen := make(map[string]bool, len(req.Extras))
	for _, id := range req.Extras {
		if seen[id] {
			continue
		}
		seen[id] = true
		e, ok := s.catalog.Extra(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownExtra, id)
		}
		quote.Extras = append(quote.Extras, model.PricedItem{ID: e.ID, Name: e.Name, Price: e.Price})
		total = total.Add(decimal.NewFromFloat(e.Price))
	}

	quote.TotalPrice = total.InexactFloat64()
	return quote, nil
}
