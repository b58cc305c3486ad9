package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"robux_topup/internal/domain"
	"robux_topup/internal/domain/value"
	"robux_topup/pkg/errcodes"
)

func TestParseOrderID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		input string
		want  value.OrderID
		valid bool
	}{
		{name: "Valid", input: "UDN-1678886400000", want: "UDN-1678886400000", valid: true},
		{name: "Other prefix", input: "ABC-1", want: "ABC-1", valid: true},
		{name: "Prefix with separator", input: "UDN-EU-1678886400000", want: "UDN-EU-1678886400000", valid: true},
		{name: "Prefix with separator, no timestamp", input: "UDN-EU-"},
		{name: "Prefix with separator, not a number", input: "UDN-EU-abc"},
		{name: "No separator", input: "UDN1678886400000"},
		{name: "No prefix", input: "-1678886400000"},
		{name: "Not a number", input: "UDN-abc"},
		{name: "Zero timestamp", input: "UDN-0"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			id, err := value.ParseOrderID(tc.input)
			if !tc.valid {
				rq.True(domain.HasCode(err, errcodes.InvalidOrderID))
				return
			}

			rq.NoError(err)
			rq.Equal(tc.want, id)
		})
	}
}

func TestOrderIDCreatedAtMs(t *testing.T) {
	rq := require.New(t)

	id := value.NewOrderID(value.OrderIDPrefix, 1678886400123)

	rq.Equal("UDN-1678886400123", id.String())
	rq.Equal(int64(1678886400123), id.CreatedAtMs())

	id = value.NewOrderID("UDN-EU", 1678886400000)
	rq.Equal(int64(1678886400000), id.CreatedAtMs())

	parsed, err := value.ParseOrderID(id.String())
	rq.NoError(err)
	rq.Equal(id, parsed)
}

func TestParseSessionID(t *testing.T) {
	rq := require.New(t)

	id := value.NewSessionID()

	parsed, err := value.ParseSessionID(id.String())
	rq.NoError(err)
	rq.Equal(id, parsed)

	_, err = value.ParseSessionID("not-an-xid")
	rq.True(domain.HasCode(err, errcodes.InvalidSessionID))
}
