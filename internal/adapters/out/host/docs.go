// Package host adapts the ledger host: the environment that hashes account
// ids into storage namespaces and moves value between accounts.
//
// The package includes:
//   - Blake3Hasher: namespaces as hex encoded BLAKE3 digests of the account id
//   - HTTPTransferer: transfers posted to a host endpoint
//   - LoggingTransferer: transfers that are only logged, for local runs
package host
