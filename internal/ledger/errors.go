// Package ledger defines the failure taxonomy and capability seams shared
// by every component that talks to the land tokenization contract.
package ledger

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/landgrid/landgrid-backend/internal/model"
)

// Every gateway failure resolves to exactly one of these classes so that
// callers can branch with errors.Is instead of parsing node messages.
var (
	// ErrUserRejected means the signer declined to authorize a write.
	// No state changed; the operation must not be retried automatically.
	ErrUserRejected = errors.New("transaction rejected by signer")

	// ErrInsufficientFunds means the account cannot cover value plus fees.
	ErrInsufficientFunds = errors.New("insufficient funds for value and fees")

	// ErrContractReverted means the contract's own invariant rejected the
	// call, e.g. buying an already-sold plot or exceeding capacity.
	ErrContractReverted = errors.New("contract reverted")

	// ErrNetworkUnavailable means no provider/network was reachable.
	ErrNetworkUnavailable = errors.New("ledger network unavailable")

	// ErrPreflightRejected means a client-side guard refused the operation
	// before any transaction was submitted.
	ErrPreflightRejected = errors.New("rejected by pre-flight check")
)

// Authorizer turns a session descriptor into signing authority for one
// write. Implementations may refuse, in which case they return an error
// wrapping ErrUserRejected.
type Authorizer interface {
	Authorize(ctx context.Context, s model.Session) (*bind.TransactOpts, error)
}
