package merch

import "sort"

// Additive score weights for the similar-products rail. Raw sales count is
// added on top as the open-ended tie breaker.
const (
	scoreSameCategory = 100
	scoreHasImage     = 50
	scoreInStock      = 20
)

// SimilarProducts ranks products by relevance to ref and returns the top
// requiredCount. The reference product itself is never included. The sort is
// stable, so equal scores keep catalog order and the result is
// deterministic. Two uncategorized products count as sharing a category.
func SimilarProducts(ref Product, products []Product, requiredCount int) []DisplayItem {
	if requiredCount <= 0 {
		return []DisplayItem{}
	}

	type scoredProduct struct {
		p     Product
		score int
	}

	candidates := make([]scoredProduct, 0, len(products))
	for _, p := range products {
		if p.ID == ref.ID {
			continue
		}
		score := p.Sales
		if p.CategoryID == ref.CategoryID {
			score += scoreSameCategory
		}
		if p.DisplayImage() != "" {
			score += scoreHasImage
		}
		if p.InStock() {
			score += scoreInStock
		}
		candidates = append(candidates, scoredProduct{p: p, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > requiredCount {
		candidates = candidates[:requiredCount]
	}

	items := make([]DisplayItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, productItem(c.p, !c.p.InStock()))
	}
	return items
}
