// Package resolver maps basenames to wallet addresses, and addresses back to
// their primary basename, through the Base L2 resolver contract.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// ErrNoRecord is returned when the resolver has nothing for a node.
var ErrNoRecord = errors.New("resolver: no record")

type Source string

const (
	// SourceResolved means the address came from the resolver contract.
	SourceResolved Source = "resolved"
	// SourceLiteral means the input was used as the address verbatim.
	SourceLiteral Source = "literal"
)

// Resolution is the outcome of Resolve. A failed lookup is not an error: it
// produces a literal resolution with Cause set.
type Resolution struct {
	Address string
	Source  Source
	Cause   error
}

func (r Resolution) Resolved() bool {
	return r.Source == SourceResolved
}

// Resolver reads the L2 resolver through any contract caller, usually an
// *ethclient.Client.
type Resolver struct {
	caller   ethereum.ContractCaller
	contract common.Address
	suffix   string
	chainID  int64
}

func NewResolver(caller ethereum.ContractCaller, contract common.Address, suffix string, chainID int64) *Resolver {
	return &Resolver{
		caller:   caller,
		contract: contract,
		suffix:   strings.ToLower(suffix),
		chainID:  chainID,
	}
}

// IsName reports whether input is in the resolver's namespace.
func (r *Resolver) IsName(input string) bool {
	return strings.HasSuffix(Normalize(input), r.suffix)
}

// Resolve returns the canonical address for input. Inputs outside the name
// namespace, and names that cannot be resolved, come back unchanged.
func (r *Resolver) Resolve(ctx context.Context, input string) Resolution {
	if !r.IsName(input) {
		return Resolution{Address: input, Source: SourceLiteral}
	}

	addr, err := r.Address(ctx, input)
	if err != nil {
		return Resolution{Address: input, Source: SourceLiteral, Cause: err}
	}
	return Resolution{Address: addr.Hex(), Source: SourceResolved}
}

// Address resolves name via addr(bytes32).
func (r *Resolver) Address(ctx context.Context, name string) (common.Address, error) {
	out, err := r.call(ctx, "addr", NameHash(Normalize(name)))
	if err != nil {
		return common.Address{}, err
	}
	addr, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("resolver: unexpected addr output %T", out[0])
	}
	if addr == (common.Address{}) {
		return common.Address{}, ErrNoRecord
	}
	return addr, nil
}

// LookupName returns the primary basename of address, or "" when it has
// none. Strings that are not hex addresses have no name.
func (r *Resolver) LookupName(ctx context.Context, address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", nil
	}

	out, err := r.call(ctx, "name", ReverseNode(common.HexToAddress(address), r.chainID))
	if errors.Is(err, ErrNoRecord) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	name, ok := out[0].(string)
	if !ok {
		return "", fmt.Errorf("resolver: unexpected name output %T", out[0])
	}
	return name, nil
}

func (r *Resolver) call(ctx context.Context, method string, node common.Hash) ([]interface{}, error) {
	data, err := resolverABI.Pack(method, [32]byte(node))
	if err != nil {
		return nil, fmt.Errorf("resolver: pack %s: %w", method, err)
	}

	contract := r.contract
	raw, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("resolver: call %s: %w", method, err)
	}
	if len(raw) == 0 {
		return nil, ErrNoRecord
	}

	out, err := resolverABI.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("resolver: unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, ErrNoRecord
	}
	return out, nil
}
