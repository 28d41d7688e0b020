package abifixtures

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/rony4d/opera-abicodec/internal/abi"
)

// Kind names one of the codec's concrete value types a fixture exercises.
// The CLI covers the fixed-width word and dynamic bytes/string families
// only; dynamic sequences, bounded vectors and tuples are covered by the
// package's own Go tests rather than the fixture format, since those
// need compile-time type parameters a hex fixture can't express.
type Kind string

const (
	KindUint256 Kind = "uint256"
	KindBool    Kind = "bool"
	KindAddress Kind = "address"
	KindBytes   Kind = "bytes"
	KindString  Kind = "string"
)

// Fixture is one row of a JSON fixture file: decode Input as Kind, and
// if Want is non-empty, re-encode and require the result match it
// byte-for-byte. If WantErr is true, decoding Input must fail.
type Fixture struct {
	Name    string `json:"name"`
	Kind    Kind   `json:"kind"`
	Input   string `json:"input"`
	Want    string `json:"want,omitempty"`
	WantErr bool   `json:"want_err,omitempty"`
}

// LoadFixtures reads a single fixture file, or every *.json file in a
// directory, and returns their concatenated contents in file order.
func LoadFixtures(path string) ([]Fixture, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	var paths []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
				paths = append(paths, filepath.Join(path, e.Name()))
			}
		}
	} else {
		paths = []string{path}
	}

	var all []Fixture
	for _, p := range paths {
		raw, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		var fixtures []Fixture
		if err := json.Unmarshal(raw, &fixtures); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		all = append(all, fixtures...)
	}
	return all, nil
}

// Run decodes f.Input per f.Kind, checking it against f.Want/f.WantErr,
// and returns a one-line pass/fail description.
func (f Fixture) Run() (ok bool, detail string) {
	input, err := hexutil.Decode(ensureHexPrefix(f.Input))
	if err != nil {
		return false, fmt.Sprintf("invalid input hex: %v", err)
	}

	var out []byte
	var decodeErr error
	switch f.Kind {
	case KindUint256:
		v, err := abi.Read[abi.U256, *abi.U256](abi.New(input))
		decodeErr = err
		if err == nil {
			out = abi.Encode[abi.U256, *abi.U256](v)
		}
	case KindBool:
		v, err := abi.Read[abi.Bool, *abi.Bool](abi.New(input))
		decodeErr = err
		if err == nil {
			out = abi.Encode[abi.Bool, *abi.Bool](v)
		}
	case KindAddress:
		v, err := abi.Read[abi.Address, *abi.Address](abi.New(input))
		decodeErr = err
		if err == nil {
			out = abi.Encode[abi.Address, *abi.Address](v)
		}
	case KindBytes:
		v, err := abi.Read[abi.Bytes, *abi.Bytes](abi.New(input))
		decodeErr = err
		if err == nil {
			out = abi.Encode[abi.Bytes, *abi.Bytes](v)
		}
	case KindString:
		v, err := abi.Read[abi.String, *abi.String](abi.New(input))
		decodeErr = err
		if err == nil {
			out = abi.Encode[abi.String, *abi.String](v)
		}
	default:
		return false, fmt.Sprintf("unknown kind %q", f.Kind)
	}

	if f.WantErr {
		if decodeErr == nil {
			return false, "expected an error, decoded successfully instead"
		}
		return true, "reverted as expected: " + decodeErr.Error()
	}
	if decodeErr != nil {
		return false, fmt.Sprintf("unexpected error: %v", decodeErr)
	}
	if f.Want == "" {
		return true, "decoded without error"
	}
	want, err := hexutil.Decode(ensureHexPrefix(f.Want))
	if err != nil {
		return false, fmt.Sprintf("invalid want hex: %v", err)
	}
	if hexutil.Encode(out) != hexutil.Encode(want) {
		return false, fmt.Sprintf("re-encoded mismatch: got %s want %s", hexutil.Encode(out), hexutil.Encode(want))
	}
	return true, "round-trip matched"
}

// ensureHexPrefix adds the "0x" hexutil requires, tolerating fixture
// files that were written without it.
func ensureHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") {
		return s
	}
	return "0x" + s
}
