package index_test

import (
	"fmt"
	"maps"
	"slices"

	"github.com/karupanerura/indexed-map/index"
)

// Product represents a simplified product entity
type Product struct {
	Name     string
	Category string
	InStock  bool
}

func ExampleAndLookup() {
	products := map[int]Product{
		1: {Name: "Laptop", Category: "Electronics", InStock: true},
		2: {Name: "Phone", Category: "Electronics", InStock: false},
		3: {Name: "Novel", Category: "Books", InStock: true},
		4: {Name: "Tablet", Category: "Electronics", InStock: true},
	}

	empty := index.Wrap[int, Product](nil)
	var set index.Set[int, Product]
	byCategory := index.New(index.Single(func(_ int, p Product) string { return p.Category }), empty)
	set.Attach(byCategory, maps.All(products))
	byStock := index.New(index.Single(func(_ int, p Product) bool { return p.InStock }), empty)
	set.Attach(byStock, maps.All(products))

	inStockElectronics := index.AndLookup(empty, byCategory.Lookup, byStock.Lookup)
	for _, id := range slices.Sorted(inStockElectronics(index.NewKeys("Electronics", true)).Keys()) {
		fmt.Println(id, products[id].Name)
	}

	booksOrOutOfStock := index.OrLookup(empty, byCategory.Lookup, byStock.Lookup)
	for _, id := range slices.Sorted(booksOrOutOfStock(index.NewKeys("Books", false)).Keys()) {
		fmt.Println(id, products[id].Name)
	}
	// Output:
	// 1 Laptop
	// 4 Tablet
	// 2 Phone
	// 3 Novel
}
