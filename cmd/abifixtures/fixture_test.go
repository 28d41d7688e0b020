package abifixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rony4d/opera-abicodec/internal/abi"
)

func TestFixture_RoundTripUint256(t *testing.T) {
	encoded := abi.Encode[abi.U256, *abi.U256](abi.Uint64U256(1))
	hexStr := "0x" + encodeHex(encoded)

	f := Fixture{Name: "one", Kind: KindUint256, Input: hexStr, Want: hexStr}
	ok, detail := f.Run()
	require.True(t, ok, detail)
}

func TestFixture_WantErr(t *testing.T) {
	f := Fixture{Name: "short", Kind: KindUint256, Input: "0x0102", WantErr: true}
	ok, detail := f.Run()
	require.True(t, ok, detail)
}

func TestFixture_MismatchFails(t *testing.T) {
	encoded := abi.Encode[abi.U256, *abi.U256](abi.Uint64U256(1))
	badWant := abi.Encode[abi.U256, *abi.U256](abi.Uint64U256(2))

	f := Fixture{
		Name:  "mismatch",
		Kind:  KindUint256,
		Input: "0x" + encodeHex(encoded),
		Want:  "0x" + encodeHex(badWant),
	}
	ok, _ := f.Run()
	require.False(t, ok)
}

func TestFixture_UnknownKind(t *testing.T) {
	f := Fixture{Name: "x", Kind: "nope", Input: "0x00"}
	ok, detail := f.Run()
	require.False(t, ok)
	require.Contains(t, detail, "unknown kind")
}

func TestLoadFixtures_Directory(t *testing.T) {
	dir := t.TempDir()
	content := `[{"name":"true","kind":"bool","input":"` + "0x" + encodeHex(abi.Encode[abi.Bool, *abi.Bool](true)) + `"}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(content), 0o600))

	fixtures, err := LoadFixtures(dir)
	require.NoError(t, err)
	require.Len(t, fixtures, 1)
	ok, detail := fixtures[0].Run()
	require.True(t, ok, detail)
}

func encodeHex(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = hextable[c>>4]
		out[i*2+1] = hextable[c&0xf]
	}
	return string(out)
}
