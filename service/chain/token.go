package chain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var ErrInvalidTokenId = xerrors.New("invalid token id")

// ParseTokenId accepts decimal or 0x prefixed hex token ids
func ParseTokenId(tokenId string) (*big.Int, error) {
	s := strings.TrimSpace(tokenId)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	id, ok := new(big.Int).SetString(s, base)
	if !ok || id.Sign() < 0 {
		return nil, xerrors.Errorf("%q: %w", tokenId, ErrInvalidTokenId)
	}
	return id, nil
}
