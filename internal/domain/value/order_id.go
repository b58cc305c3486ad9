package value

import (
	"strconv"
	"strings"

	"robux_topup/internal/domain"
	"robux_topup/pkg/errcodes"
)

const OrderIDPrefix = "UDN"

// OrderID is "<prefix>-<unix milliseconds of creation>".
type OrderID string

func NewOrderID(prefix string, createdAtMs int64) OrderID {
	return OrderID(prefix + "-" + strconv.FormatInt(createdAtMs, 10))
}

func ParseOrderID(s string) (OrderID, error) {
	prefix, ms, ok := splitOrderID(s)
	if !ok || prefix == "" {
		return "", domain.NewError(errcodes.InvalidOrderID, "order id must look like <prefix>-<timestamp>")
	}

	ts, err := strconv.ParseInt(ms, 10, 64)
	if err != nil || ts <= 0 {
		return "", domain.NewError(errcodes.InvalidOrderID, "order id timestamp must be a positive integer")
	}

	return NewOrderID(prefix, ts), nil
}

func (id OrderID) String() string {
	return string(id)
}

// CreatedAtMs returns the creation timestamp encoded in the identifier.
func (id OrderID) CreatedAtMs() int64 {
	_, ms, _ := splitOrderID(string(id))
	ts, _ := strconv.ParseInt(ms, 10, 64) //nolint:errcheck

	return ts
}

// splitOrderID splits at the last separator so prefixes may contain "-".
func splitOrderID(s string) (prefix, ms string, ok bool) {
	i := strings.LastIndex(s, "-")
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+1:], true
}
