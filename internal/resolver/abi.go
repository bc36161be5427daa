package resolver

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// l2ResolverABI covers the two read methods used against the basename resolver.
const l2ResolverABI = `[
	{
		"inputs": [{"internalType": "bytes32", "name": "node", "type": "bytes32"}],
		"name": "addr",
		"outputs": [{"internalType": "address payable", "name": "", "type": "address"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [{"internalType": "bytes32", "name": "node", "type": "bytes32"}],
		"name": "name",
		"outputs": [{"internalType": "string", "name": "", "type": "string"}],
		"stateMutability": "view",
		"type": "function"
	}
]`

var resolverABI = mustParseABI(l2ResolverABI)

func mustParseABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return parsed
}
