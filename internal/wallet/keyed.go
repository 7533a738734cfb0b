// Package wallet provides signing authorities for ledger writes.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/landgrid/landgrid-backend/internal/ledger"
	"github.com/landgrid/landgrid-backend/internal/model"
)

// KeyedAuthorizer signs with a local private key. It refuses to sign for a
// session whose account or chain does not match the key, surfacing the
// refusal as a ledger.ErrUserRejected so callers treat it like any other
// declined authorization.
type KeyedAuthorizer struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int
}

// NewKeyedAuthorizer builds an authorizer from a hex-encoded private key.
func NewKeyedAuthorizer(hexKey string, chainID *big.Int) (*KeyedAuthorizer, error) {
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("parse signing key: %w", err)
	}
	if chainID == nil || chainID.Sign() <= 0 {
		return nil, fmt.Errorf("chain id is required")
	}
	return &KeyedAuthorizer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
	}, nil
}

// Address returns the account this authorizer signs for.
func (a *KeyedAuthorizer) Address() common.Address {
	return a.address
}

// Session builds the immutable session descriptor for this key.
func (a *KeyedAuthorizer) Session(isOwner bool) model.Session {
	return model.Session{
		Account: a.address,
		ChainID: new(big.Int).Set(a.chainID),
		IsOwner: isOwner,
	}
}

// Authorize implements ledger.Authorizer.
func (a *KeyedAuthorizer) Authorize(ctx context.Context, s model.Session) (*bind.TransactOpts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Account != a.address {
		return nil, fmt.Errorf("session account %s does not match signing key %s: %w",
			s.Account, a.address, ledger.ErrUserRejected)
	}
	if s.ChainID != nil && s.ChainID.Cmp(a.chainID) != 0 {
		return nil, fmt.Errorf("session chain id %s does not match signer chain id %s: %w",
			s.ChainID, a.chainID, ledger.ErrUserRejected)
	}
	return bind.NewKeyedTransactorWithChainID(a.key, a.chainID)
}
