// Package order provides the order aggregate root and its owned parts for
// the shop's order lifecycle.
//
// The package includes:
//   - Order: The aggregate root owning a delivery snapshot and order lines
//   - Line: A priced quantity of one catalog item, snapshotted at order time
//   - Delivery: The immutable address snapshot attached 1:1 to an order
//   - Status: A state machine with the single transition Ordered -> Cancelled
//   - SearchFilter: Criteria and windowing for the order search strategies
//
// Key business rules:
//   - Creating an order commits stock for every line; any failed decrement
//     aborts the whole creation before anything is persisted
//   - Cancelling an order restores each line's quantity to its item as a
//     compensating action, exactly once
//   - Total price is always recomputed from the lines, never stored
//
// The aggregate exclusively owns its delivery and lines: they are saved and
// loaded only through the order, never independently.
package order
