// Package precompile shows how a host EVM would consume the ABI codec
// package without the codec itself depending on any VM type: a selector
// keyed dispatch table, the same shape evm_writer.go used for its
// setBalance/copyCode/swapCode/setStorage/incNonce method chain,
// generalized from a hand-unrolled bytes.Equal chain into a map so
// adding a method never touches the dispatch loop.
package precompile

import (
	"errors"

	"github.com/rony4d/opera-abicodec/internal/abi"
)

// ErrUnknownSelector is returned when input's function selector doesn't
// match any handler registered on a Contract.
var ErrUnknownSelector = errors.New("precompile: unknown method selector")

// Handler decodes, executes and encodes the return value for one method
// of a precompiled contract. It receives a reader already positioned
// just past the 4-byte selector.
type Handler func(r *abi.Reader) ([]byte, error)

// Contract is a minimal selector-dispatch precompiled contract: a
// method table keyed by selector, with no dependency on any
// particular host VM's StateDB/BlockContext/TxContext types. A real
// host wires Contract.Run into its own vm.PrecompiledContract adapter.
type Contract struct {
	methods map[uint32]Handler
}

// NewContract builds an empty dispatch table.
func NewContract() *Contract {
	return &Contract{methods: make(map[uint32]Handler)}
}

// Register adds a handler for the given 4-byte big-endian selector.
// Panics on a duplicate selector, since that can only be a programmer
// error (two methods colliding, or the same method registered twice).
func (c *Contract) Register(selector uint32, h Handler) {
	if _, exists := c.methods[selector]; exists {
		panic("precompile: duplicate selector registration")
	}
	c.methods[selector] = h
}

// Run looks up input's selector and invokes its handler with a reader
// positioned at the start of the arguments. It returns ErrUnknownSelector
// rather than reverting via abi.RevertError, since "no such method"
// is a dispatch-layer failure, not a codec one.
func (c *Contract) Run(input []byte) ([]byte, error) {
	r, err := abi.NewSkipSelector(input)
	if err != nil {
		return nil, err
	}
	sel, err := abi.ReadSelector(input, func(v uint32) (uint32, bool) {
		_, ok := c.methods[v]
		return v, ok
	})
	if err != nil {
		return nil, ErrUnknownSelector
	}
	return c.methods[sel](r)
}
