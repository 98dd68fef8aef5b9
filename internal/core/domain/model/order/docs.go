// Package order provides the Order entity of the order ledger together with the
// payload it is built from and its lifecycle state machine.
//
// The package includes:
//   - Payload: the caller supplied description of an order (everything but status)
//   - Order: the stored entity; immutable facts plus a mutable status
//   - Status: Placed -> Confirmed, where Confirmed is terminal
//
// Key business rules:
//   - An order id is required and unique within one account's store
//   - Descriptive fields (flavor, size, crust, toppings, name, location, phone
//     number) are opaque to the ledger
//   - The declared total is kept exactly as supplied; the payment engine decides
//     whether it is a valid amount
//   - Confirming an already confirmed order is a successful no-op
package order
