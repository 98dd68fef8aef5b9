package host

import (
	"encoding/hex"

	"orderledger/internal/core/domain/model/kernel"
	"orderledger/internal/core/domain/model/ledger"

	"github.com/zeebo/blake3"
)

// Blake3Hasher derives store namespaces from account ids.
type Blake3Hasher struct{}

// NewBlake3Hasher creates a Blake3Hasher.
func NewBlake3Hasher() Blake3Hasher {
	return Blake3Hasher{}
}

// Namespace returns the 64 character hex digest of the account id.
func (Blake3Hasher) Namespace(account kernel.AccountID) ledger.Namespace {
	sum := blake3.Sum256([]byte(account.String()))
	return ledger.Namespace(hex.EncodeToString(sum[:]))
}
