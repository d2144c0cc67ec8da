package decoder

import (
	"context"
	"errors"
	"fmt"

	"github.com/tranvictor/decipher/common"
	"github.com/tranvictor/decipher/util/cache"
	"github.com/tranvictor/decipher/util/explorers"
)

// ABIStringSource serves raw verified-ABI JSON documents for contract
// addresses. networks.Network satisfies it.
type ABIStringSource interface {
	GetABIString(ctx context.Context, address string) (string, error)
}

// VerifiedABIClient resolves function descriptors from verified contract
// ABIs, reading through a local cache so each contract is fetched over the
// network at most once.
type VerifiedABIClient struct {
	explorer ABIStringSource
	store    *cache.Store
}

func NewVerifiedABIClient(explorer ABIStringSource, store *cache.Store) *VerifiedABIClient {
	return &VerifiedABIClient{explorer: explorer, store: store}
}

// Functions returns all function descriptors of the contract's verified ABI,
// ordered by signature. The cache answers when it can; a miss, or an entry
// that no longer parses, triggers a refetch that repairs the cache.
func (c *VerifiedABIClient) Functions(ctx context.Context, address string) ([]*FunctionDescriptor, error) {
	if content, found := c.store.Get(address); found {
		descriptors, err := ParseABI(content)
		if err == nil {
			return descriptors, nil
		}
		common.DebugPrintf("cached ABI for %s is corrupt (%s), refetching\n", address, err)
	}
	return c.fetch(ctx, address)
}

// FunctionBySelector returns the descriptor of the contract function with
// the given selector. A cached ABI that doesn't contain the selector is
// refetched once before concluding the function doesn't exist, so a cache
// entry written before a proxy upgrade can't hide new functions.
func (c *VerifiedABIClient) FunctionBySelector(ctx context.Context, address string, sel Selector) (*FunctionDescriptor, error) {
	if content, found := c.store.Get(address); found {
		if descriptors, err := ParseABI(content); err == nil {
			if d := findBySelector(descriptors, sel); d != nil {
				return d, nil
			}
		} else {
			common.DebugPrintf("cached ABI for %s is corrupt (%s), refetching\n", address, err)
		}
	}
	descriptors, err := c.fetch(ctx, address)
	if err != nil {
		return nil, err
	}
	if d := findBySelector(descriptors, sel); d != nil {
		return d, nil
	}
	return nil, fmt.Errorf(
		"%w: no function with selector %s in the verified ABI of %s",
		ErrFunctionNotFound, sel, address,
	)
}

// fetch pulls the verified ABI over the network and repopulates the cache.
// A cache write failure is logged and swallowed: the decode already has what
// it needs.
func (c *VerifiedABIClient) fetch(ctx context.Context, address string) ([]*FunctionDescriptor, error) {
	abiJSON, err := c.explorer.GetABIString(ctx, address)
	if err != nil {
		if errors.Is(err, explorers.ErrRejected) {
			return nil, fmt.Errorf("%w: %w", ErrABIRejected, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrABIUnavailable, err)
	}
	descriptors, err := ParseABI(abiJSON)
	if err != nil {
		return nil, err
	}
	if content, err := MarshalDescriptors(descriptors); err == nil {
		if err := c.store.Set(address, content); err != nil {
			common.DebugPrintf("couldn't cache ABI for %s: %s\n", address, err)
		}
	}
	return descriptors, nil
}

func findBySelector(descriptors []*FunctionDescriptor, sel Selector) *FunctionDescriptor {
	for _, d := range descriptors {
		if d.Selector == sel {
			return d
		}
	}
	return nil
}
