package common

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tranvictor/decipher/config"
)

var groupedPrinter = message.NewPrinter(language.English)

// ReadableNumber appends a digit-grouped rendering to value so that long
// integers (wei amounts, token units) can be read at a glance.
// Example: "1000000" -> "1000000 (1,000,000)".
func ReadableNumber(value string) string {
	if len(value) <= 4 {
		return value
	}
	return fmt.Sprintf("%s (%s)", value, groupDigits(value))
}

func groupDigits(value string) string {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return value
	}
	if n.IsInt64() {
		return groupedPrinter.Sprintf("%d", n.Int64())
	}
	// x/text groups machine-sized ints only; wider values get grouped by hand.
	digits := strings.TrimPrefix(n.Text(10), "-")
	groups := []string{}
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	if n.Sign() < 0 {
		return "-" + strings.Join(groups, ",")
	}
	return strings.Join(groups, ",")
}

// PlainAddress formats an Address as a plain string with no ANSI color codes.
// Use this when the result will be stored in a data structure or serialized to
// JSON so that consumers don't receive terminal markup.
func PlainAddress(addr Address) string {
	if addr.Address == "" {
		return ""
	}
	if addr.Decimal != 0 {
		return fmt.Sprintf("%s (%s - %d)", addr.Address, addr.Desc, addr.Decimal)
	}
	if addr.Desc != "" {
		return fmt.Sprintf("%s (%s)", addr.Address, addr.Desc)
	}
	return addr.Address
}

// PlainValue returns a human-readable string for a single decoded ABI value
// with no ANSI color codes.
func PlainValue(value Value) string {
	switch value.Kind {
	case DisplayAddress:
		if value.Address == nil {
			return value.Raw
		}
		return PlainAddress(*value.Address)
	case DisplayInteger:
		return ReadableNumber(value.Raw)
	default:
		return value.Raw
	}
}

func DebugPrintf(format string, a ...any) (n int, err error) {
	if config.Debug {
		return fmt.Printf(format, a...)
	}

	return 0, nil
}
