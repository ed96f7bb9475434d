package hdkey

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip32"
)

// DefaultBasePath derives children directly under the master key.
const DefaultBasePath = "m"

// ParsePath parses a BIP32 path string into child indices.
// Example: "m/84'/1'/0'" -> [2147483732, 2147483649, 2147483648]
// Hardened segments may be marked with ' or h.
func ParsePath(path string) ([]uint32, error) {
	path = strings.TrimSpace(path)
	if path == "" || path[0] != 'm' {
		return nil, fmt.Errorf("invalid BIP32 path: %q", path)
	}

	rest := strings.TrimPrefix(path[1:], "/")
	if rest == "" {
		return nil, nil
	}

	parts := strings.Split(rest, "/")
	indices := make([]uint32, 0, len(parts))
	for _, part := range parts {
		hardened := false
		if strings.HasSuffix(part, "'") || strings.HasSuffix(part, "h") || strings.HasSuffix(part, "H") {
			hardened = true
			part = part[:len(part)-1]
		}

		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil || uint32(index) >= bip32.FirstHardenedChild {
			return nil, fmt.Errorf("invalid path segment: %q", part)
		}

		if hardened {
			index += uint64(bip32.FirstHardenedChild)
		}

		indices = append(indices, uint32(index))
	}

	return indices, nil
}
