// Package ledger provides the two-level, account keyed storage scheme of the
// order ledger.
//
// The package includes:
//   - AccountStore: the orders of one account keyed by order id
//   - Ledger: every AccountStore keyed by account, plus the operator account
//   - Namespace: the digest under which an AccountStore is persisted
//
// Stores are handed out as handles. GetStore and FindStore return copies that
// the caller mutates and then commits with PutStore; nothing a caller does to a
// handle is visible until it is put back. GetStore creates an empty handle for
// an account that never ordered, but the ledger only learns about the store
// once it is put.
package ledger
