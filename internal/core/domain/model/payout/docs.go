// Package payout models the value transfer issued to the operator whenever an
// order is paid for.
//
// A Payout is written in the same unit of work as the order it pays for, so an
// order is never stored without its payout and a payout never exists for an
// order that was rejected. Handing the value to the ledger host happens later
// and exactly once: the settlement job moves each payout from Issued to either
// Settled or Failed, and a Failed payout is never retried.
package payout
