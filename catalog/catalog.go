package catalog

import (
	"strings"

	dispCfg "github.com/sofmon/dispatch/cfg"
)

// Static resolves service URLs from a fixed map. Entries may be keyed by the
// contract's canonical name or by its bare type name.
type Static map[string]string

func (s Static) Resolve(contract string) (string, error) {
	if url, ok := s[contract]; ok {
		return url, nil
	}
	if url, ok := s[shortName(contract)]; ok {
		return url, nil
	}
	return "", nil
}

// FromConfig loads a Static catalog from the 'services' config file, a JSON
// object of contract name to base URL.
func FromConfig() (Static, error) {
	return dispCfg.Object[Static](dispCfg.ConfigKeyServices)
}

func shortName(contract string) string {
	if i := strings.LastIndex(contract, "."); i >= 0 {
		return contract[i+1:]
	}
	return contract
}
