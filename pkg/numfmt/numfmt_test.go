package numfmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"robux_topup/pkg/numfmt"
)

func TestAmount(t *testing.T) {
	rq := require.New(t)

	rq.Equal("70", numfmt.Amount(70))
	rq.Equal("1,000", numfmt.Amount(1000))
	rq.Equal("10,000", numfmt.Amount(10000))
	rq.Equal("1,234,567", numfmt.Amount(1234567))
}

func TestRupiah(t *testing.T) {
	rq := require.New(t)

	rq.Equal("572", numfmt.Rupiah(572))
	rq.Equal("12.500", numfmt.Rupiah(12500))
	rq.Equal("125.000", numfmt.Rupiah(125000))
	rq.Equal("1.250.000", numfmt.Rupiah(1250000))
}
