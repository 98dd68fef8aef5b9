package ledger

import (
	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/pkg/errs"
)

// Namespace is the storage prefix of an account's store: a digest of the
// account id. It keeps the per-account stores apart; it is not a security
// boundary.
type Namespace string

// Validate rejects the empty namespace.
func (n Namespace) Validate() error {
	if n == "" {
		return errs.NewValueIsRequiredError("namespace")
	}
	return nil
}

func (n Namespace) String() string {
	return string(n)
}

// Hasher derives the namespace of an account. It is provided by the ledger host.
type Hasher interface {
	Namespace(account kernel.AccountID) Namespace
}
