package pricing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/shop_admin/internal/models"
)

// Line is the only thing trusted from the client: which product and
// how many. Prices and totals are always resolved server-side.
type Line struct {
	ProductID uuid.UUID
	Quantity  int
}

type PricedLine struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines []PricedLine
	Total decimal.Decimal
}

type ProductNotFoundError struct {
	ProductID uuid.UUID
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %s not found", e.ProductID)
}

// ProductIDs returns the distinct product ids referenced by lines so
// the caller can resolve them in a single batch query.
func ProductIDs(lines []Line) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ProductID]; ok {
			continue
		}
		seen[line.ProductID] = struct{}{}
		ids = append(ids, line.ProductID)
	}
	return ids
}

// Compute prices every line against the batch-fetched catalog rows. A
// line whose product is missing fails the whole quote, it is never
// skipped or zero-priced.
func Compute(lines []Line, products []models.Product) (*Quote, error) {
	byID := make(map[uuid.UUID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	q := &Quote{Lines: make([]PricedLine, 0, len(lines))}
	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: line.ProductID}
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		q.Lines = append(q.Lines, PricedLine{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: p.Price,
			LineTotal: lineTotal,
		})
		q.Total = q.Total.Add(lineTotal)
	}
	return q, nil
}
