package crypto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

const (
	// CoinType is the registered BIP44 coin type of Binance Chain.
	CoinType = 714

	// DerivationPath is the path of the first account key.
	DerivationPath = "m/44'/714'/0'/0/0"
)

// Path is a parsed BIP32 derivation path, one child number per level.
type Path []uint32

// AccountPath returns the path of the key with the given address index,
// m/44'/714'/0'/0/index.
func AccountPath(index uint32) Path {
	return Path{
		44 + hdkeychain.HardenedKeyStart,
		CoinType + hdkeychain.HardenedKeyStart,
		hdkeychain.HardenedKeyStart,
		0,
		index,
	}
}

// ParsePath parses a path like "m/44'/714'/0'/0/0". A trailing ' (or h)
// marks a hardened level.
func ParsePath(path string) (Path, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if len(parts) < 2 || parts[0] != "m" {
		return nil, fmt.Errorf("invalid derivation path %q", path)
	}

	res := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		childNum, err := parseChildNum(part)
		if err != nil {
			return nil, fmt.Errorf("invalid derivation path %q: %w", path, err)
		}
		res = append(res, childNum)
	}
	return res, nil
}

// String formats the path back into its textual form.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, n := range p {
		sb.WriteString("/")
		if n >= hdkeychain.HardenedKeyStart {
			sb.WriteString(strconv.FormatUint(uint64(n-hdkeychain.HardenedKeyStart), 10))
			sb.WriteString("'")
		} else {
			sb.WriteString(strconv.FormatUint(uint64(n), 10))
		}
	}
	return sb.String()
}

func parseChildNum(s string) (uint32, error) {
	hardened := strings.HasSuffix(s, "'") || strings.HasSuffix(s, "h")
	if hardened {
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad child number %q", s)
	}
	if n >= hdkeychain.HardenedKeyStart {
		return 0, fmt.Errorf("child number %d out of range", n)
	}
	if hardened {
		n += hdkeychain.HardenedKeyStart
	}
	return uint32(n), nil
}
