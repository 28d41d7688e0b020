package precompile

import (
	"math/big"
	"testing"

	lhash "github.com/Fantom-foundation/lachesis-base/hash"
	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/opera-abicodec/internal/abi"
)

type fakeSource map[idx.ValidatorID]ValidatorInfo

func (f fakeSource) ValidatorInfo(id idx.ValidatorID) (ValidatorInfo, bool) {
	info, ok := f[id]
	return info, ok
}

func callGetValidatorInfo(t *testing.T, id uint64) []byte {
	t.Helper()
	w := abi.NewWithSelector(getValidatorInfoSelector)
	abi.Write[abi.U256, *abi.U256](w, abi.Uint64U256(id))
	return w.Build()
}

func TestValidatorInfoContract_Success(t *testing.T) {
	want := ValidatorInfo{
		StakedAmount: big.NewInt(5_000_000),
		Auth:         common.HexToAddress("0x00000000000000000000000000000000c0ffee"),
		Status:       0,
		LastEvent:    lhash.Hash{1, 2, 3},
	}
	source := fakeSource{7: want}
	c := NewValidatorInfoContract(source)

	out, err := c.Run(callGetValidatorInfo(t, 7))
	require.NoError(t, err)

	var decoded validatorInfoTuple
	require.NoError(t, (&decoded).readValue(abi.New(out)))
	require.Equal(t, 0, want.StakedAmount.Cmp(decoded.VA.Int))
	require.Equal(t, want.Auth, decoded.VB.Common())
	require.Equal(t, want.Status, uint64(decoded.VC))
	require.Equal(t, want.LastEvent, decoded.VD.ToHash())
}

func TestValidatorInfoContract_UnknownValidator(t *testing.T) {
	c := NewValidatorInfoContract(fakeSource{})
	_, err := c.Run(callGetValidatorInfo(t, 99))
	require.Error(t, err)
}

func TestValidatorInfoContract_UnknownSelector(t *testing.T) {
	c := NewValidatorInfoContract(fakeSource{})
	_, err := c.Run([]byte{0xde, 0xad, 0xbe, 0xef, 0, 0, 0, 0})
	require.ErrorIs(t, err, ErrUnknownSelector)
}
