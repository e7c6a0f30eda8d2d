// Package item provides the catalog entry aggregate for the shop.
//
// The package includes:
//   - Item: The aggregate root holding identity, kind, name, price, and stock
//   - Kind: A tagged variant for catalog types (Book, Album, Movie)
//
// Key business rules:
//   - Stock never goes negative; decrements that would go below zero are
//     rejected whole with an InsufficientStockError
//   - Increments are unbounded and serve as the compensating action for
//     order cancellation
//   - Administrative updates overwrite name, price, and stock with
//     per-field validation only
//
// Concurrency Considerations:
//   - Stock decrement is a read-check-write sequence inside the enclosing
//     transaction; concurrent order placement against the same item can
//     race past the check. No optimistic version column or row lock is
//     applied at the storage layer yet.
package item
