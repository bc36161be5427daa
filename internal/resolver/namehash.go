package resolver

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize trims the name, applies NFC and lower-cases it.
func Normalize(name string) string {
	// Caser 有状态, 每次新建
	return cases.Lower(language.Und).String(norm.NFC.String(strings.TrimSpace(name)))
}

// NameHash computes the EIP-137 node of an already normalized name.
func NameHash(name string) common.Hash {
	var node common.Hash
	if name == "" {
		return node
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		label := crypto.Keccak256([]byte(labels[i]))
		node = crypto.Keccak256Hash(node.Bytes(), label)
	}
	return node
}

// CoinType is the ENSIP-11 coin type of an EVM chain.
func CoinType(chainID int64) uint32 {
	return 0x80000000 | uint32(chainID)
}

// ReverseNode is the node holding the primary name of addr on chainID,
// i.e. namehash("<addr hex>.<coin type hex>.reverse").
func ReverseNode(addr common.Address, chainID int64) common.Hash {
	return NameHash(fmt.Sprintf("%x.%x.reverse", addr.Bytes(), CoinType(chainID)))
}
