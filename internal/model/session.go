package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Session is the immutable descriptor of a signing identity for the
// duration of one orchestrated operation. A wallet/account switch is a
// new Session, never a mutation observed mid-call.
type Session struct {
	Account common.Address
	ChainID *big.Int
	IsOwner bool
}

// Connected reports whether the session carries a usable account.
func (s Session) Connected() bool {
	return s.Account != (common.Address{})
}
