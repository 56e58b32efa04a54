package filter

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goran-ethernal/ShadowLogs/internal/common"
)

var errMissingPrefix = errors.New("hex string without 0x prefix")

// normalizeHex checks s is 0x-prefixed even-length hex and returns it in lowercase.
func normalizeHex(s string) (string, error) {
	if !common.HasHexPrefix(s) {
		return "", errMissingPrefix
	}

	if _, err := hexutil.Decode(s); err != nil {
		return "", err
	}

	return "0x" + strings.ToLower(s[2:]), nil
}
