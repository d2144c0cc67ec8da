package networks

import (
	"fmt"
	"strings"
	"sync"
)

var (
	cachedNetwork Network
	mu            sync.Mutex
)

// CurrentNetwork returns the network selected with SetNetwork, defaulting to
// Ethereum mainnet when no selection was made.
func CurrentNetwork() Network {
	mu.Lock()
	defer mu.Unlock()

	if cachedNetwork == nil {
		cachedNetwork = EthereumMainnet
	}
	return cachedNetwork
}

// SetNetwork selects the network decipher operates on, by name or alternative
// name. On an unknown name the current selection is left unchanged and the
// returned error carries close-match suggestions when there are any.
func SetNetwork(name string) error {
	mu.Lock()
	defer mu.Unlock()

	network, err := GetNetwork(name)
	if err != nil {
		if suggestions := SuggestNetworks(name); len(suggestions) > 0 {
			return fmt.Errorf("%w (did you mean: %s?)", err, strings.Join(suggestions, ", "))
		}
		return err
	}
	cachedNetwork = network
	return nil
}
