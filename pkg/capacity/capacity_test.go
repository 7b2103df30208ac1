package capacity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"0", "0", false},
		{"6100000000", "6100000000", false},
		{" 42 ", "42", false},
		{"-10", "-10", false},
		{"340282366920938463463374607431768211457", "340282366920938463463374607431768211457", false},
		{"", "", true},
		{"1.5", "", true},
		{"0x10", "", true},
		{"abc", "", true},
	}
	for _, tt := range tests {
		c, err := Parse(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrInvalidCapacity, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c.String())
	}
}

func TestParseNonNegative(t *testing.T) {
	t.Parallel()

	_, err := ParseNonNegative("-1")
	require.ErrorIs(t, err, ErrNegativeCapacity)

	c, err := ParseNonNegative("1")
	require.NoError(t, err)
	assert.Equal(t, "1", c.String())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := MustParse("20000000000")
	b := MustParse("6100000000")

	assert.Equal(t, "26100000000", a.Add(b).String())
	assert.Equal(t, "13900000000", a.Sub(b).String())
	assert.Equal(t, "-13900000000", b.Sub(a).String())
	assert.Equal(t, -1, b.Sub(a).Sign())
	assert.Equal(t, 1, a.Cmp(b))
	assert.True(t, b.LessThan(a))
	assert.True(t, a.Sub(a).IsZero())
	assert.True(t, Capacity{}.IsZero())
	assert.Equal(t, "0", Capacity{}.String())

	// operations never mutate their operands
	_ = a.Add(b)
	assert.Equal(t, "20000000000", a.String())
	assert.Equal(t, "6100000000", b.String())
}

func TestArithmeticBeyondUint64(t *testing.T) {
	t.Parallel()

	max := MustParse("18446744073709551615")
	sum := max.Add(FromUint64(1))
	assert.Equal(t, "18446744073709551616", sum.String())
	assert.True(t, sum.Sub(FromUint64(1)).Equal(max))
}

func TestSum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", Sum().String())
	assert.Equal(t, "32200000000", Sum(
		MustParse("6100000000"), MustParse("6100000000"), MustParse("20000000000"),
	).String())
}

func TestJSONAndGob(t *testing.T) {
	t.Parallel()

	c := MustParse("6100000000")
	buf, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, `"6100000000"`, string(buf))

	var decoded Capacity
	require.NoError(t, json.Unmarshal(buf, &decoded))
	assert.True(t, decoded.Equal(c))

	require.NoError(t, json.Unmarshal([]byte(`123`), &decoded))
	assert.Equal(t, "123", decoded.String())

	gob, err := c.GobEncode()
	require.NoError(t, err)
	var fromGob Capacity
	require.NoError(t, fromGob.GobDecode(gob))
	assert.True(t, fromGob.Equal(c))
}

func TestFromUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		amount string
		unit   Unit
		want   string
		err    error
	}{
		{"100", UnitShannon, "100", nil},
		{"100", UnitCKB, "10000000000", nil},
		{"61", UnitCKB, "6100000000", nil},
		{"1.5", UnitCKB, "150000000", nil},
		{"0.00000001", UnitCKB, "1", nil},
		{"0.000000001", UnitCKB, "", ErrFractionalShannons},
		{"1.5", UnitShannon, "", ErrInvalidCapacity},
		{"one", UnitCKB, "", ErrInvalidCapacity},
		{"1", Unit("byte"), "", ErrUnknownUnit},
	}
	for _, tt := range tests {
		c, err := FromUnit(tt.amount, tt.unit)
		if tt.err != nil {
			require.ErrorIs(t, err, tt.err, tt.amount)
			continue
		}
		require.NoError(t, err, tt.amount)
		assert.Equal(t, tt.want, c.String())
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	u, err := ParseUnit("", UnitCKB)
	require.NoError(t, err)
	assert.Equal(t, UnitCKB, u)

	u, err = ParseUnit("Shannon", UnitCKB)
	require.NoError(t, err)
	assert.Equal(t, UnitShannon, u)

	_, err = ParseUnit("sat", UnitCKB)
	require.ErrorIs(t, err, ErrUnknownUnit)
}

func TestToCKB(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "61", ToCKB(MustParse("6100000000")))
	assert.Equal(t, "1.5", ToCKB(MustParse("150000000")))
	assert.Equal(t, "0", ToCKB(Zero()))
}

func TestHex(t *testing.T) {
	t.Parallel()

	h, err := ToHex("6100000000")
	require.NoError(t, err)
	assert.Equal(t, "0x16b969d00", h)

	_, err = ToHex("0x16b969d00")
	require.ErrorIs(t, err, ErrInvalidCapacity)

	assert.Equal(t, "0x0", Zero().Hex())
	assert.Equal(t, "-0xa", MustParse("-10").Hex())
}
