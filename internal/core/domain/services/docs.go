// Package services provides domain services that span more than one aggregate
// of the order ledger.
//
// The package includes:
//   - PaymentService: checks the value attached to an order and issues the
//     payout of what remains after the storage fee
//
// Domain services hold no state of their own; persisting what they produce is
// left to the application layer.
package services
