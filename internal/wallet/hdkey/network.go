package hdkey

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github/dlcplaza/go-dlcsigner/internal/dlcerr"
)

var networks = map[string]*chaincfg.Params{
	"mainnet":  &chaincfg.MainNetParams,
	"main":     &chaincfg.MainNetParams,
	"bitcoin":  &chaincfg.MainNetParams,
	"testnet":  &chaincfg.TestNet3Params,
	"testnet3": &chaincfg.TestNet3Params,
	"test":     &chaincfg.TestNet3Params,
	"signet":   &chaincfg.SigNetParams,
	"regtest":  &chaincfg.RegressionNetParams,
}

// ParseNetwork maps a network tag to its chain parameters. The tag only
// selects serialisation prefixes; the curve is the same for all networks.
func ParseNetwork(name string) (*chaincfg.Params, error) {
	params, ok := networks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, dlcerr.New(dlcerr.KindInvalidNetwork, "network", "unknown network %q", name)
	}
	return params, nil
}
