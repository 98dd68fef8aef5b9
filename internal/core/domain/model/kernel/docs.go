// Package kernel provides the value objects shared by every aggregate of the
// order ledger.
//
// The package includes:
//   - AccountID: the identity of a ledger account (customer or operator)
//   - Amount: a non-negative integer amount in the smallest currency unit
//   - UUID: identifiers generated by the ledger itself (payouts, generated order ids)
//
// All value objects are immutable and safe for concurrent use. Their zero values
// are either meaningful (Amount is zero) or rejected by Validate (AccountID, UUID).
package kernel
