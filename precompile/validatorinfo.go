package precompile

import (
	"math/big"
	"strings"

	lhash "github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/opera-abicodec/internal/abi"
)

// validatorInfoABI is the JSON ABI fragment for getValidatorInfo, used
// only to derive the real keccak256 method selector the same way
// evm_writer.go derives setBalanceMethodID et al. -- the contract itself
// never uses go-ethereum's abi.Method for encoding, only for this one
// selector computation.
const validatorInfoABI = `[{"constant":true,"inputs":[{"internalType":"uint256","name":"validatorID","type":"uint256"}],"name":"getValidatorInfo","outputs":[],"payable":false,"stateMutability":"view","type":"function"}]`

var getValidatorInfoSelector uint32

func init() {
	parsed, err := gethabi.JSON(strings.NewReader(validatorInfoABI))
	if err != nil {
		panic(err)
	}
	method, ok := parsed.Methods["getValidatorInfo"]
	if !ok {
		panic("precompile: unknown getValidatorInfo method")
	}
	id := method.ID
	getValidatorInfoSelector = uint32(id[0])<<24 | uint32(id[1])<<16 | uint32(id[2])<<8 | uint32(id[3])
}

// ValidatorInfo is what a host returns for a single validator: its
// staked amount, the address authorized to manage it, its current
// status word, and the hash of the last event it emitted.
type ValidatorInfo struct {
	StakedAmount *big.Int
	Auth         common.Address
	Status       uint64
	LastEvent    lhash.Hash
}

// ValidatorInfoSource is the host-provided lookup a getValidatorInfo
// precompile defers to; Contract never touches consensus state
// directly, matching how evm_writer.go's Run method only reaches into
// state through the vm.StateDB interface it's handed rather than owning
// storage itself.
type ValidatorInfoSource interface {
	ValidatorInfo(id idx.ValidatorID) (ValidatorInfo, bool)
}

// validatorInfoTuple is the Solidity return type
// (uint256 stakedAmount, address auth, uint64 status, bytes32 lastEvent).
type validatorInfoTuple = abi.Tuple4[
	abi.U256, *abi.U256,
	abi.Address, *abi.Address,
	abi.Uint64, *abi.Uint64,
	abi.H256, *abi.H256,
]

// NewValidatorInfoContract builds a Contract exposing a single
// getValidatorInfo(uint256) method backed by source.
func NewValidatorInfoContract(source ValidatorInfoSource) *Contract {
	c := NewContract()
	c.Register(getValidatorInfoSelector, func(r *abi.Reader) ([]byte, error) {
		if err := r.ExpectArguments(1); err != nil {
			return nil, err
		}
		rawID, err := abi.Read[abi.U256, *abi.U256](r)
		if err != nil {
			return nil, err
		}
		if !rawID.Int.IsUint64() {
			return nil, abi.RevertErrorf("validator id is too large")
		}

		info, ok := source.ValidatorInfo(idx.ValidatorID(rawID.Int.Uint64()))
		if !ok {
			return nil, abi.RevertErrorf("unknown validator")
		}

		out := validatorInfoTuple{
			VA: abi.NewU256(info.StakedAmount),
			VB: abi.AddressFromCommon(info.Auth),
			VC: abi.Uint64(info.Status),
			VD: abi.FromHash(info.LastEvent),
		}
		return abi.EncodeReturnValue[validatorInfoTuple, *validatorInfoTuple](out), nil
	})
	return c
}
