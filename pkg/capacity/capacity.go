package capacity

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrInvalidCapacity is returned when a string does not encode a base-10
	// integer.
	ErrInvalidCapacity = errors.New("capacity must be a base-10 integer")
	// ErrNegativeCapacity is returned when a value that is going to be
	// persisted or sent over the wire is negative.
	ErrNegativeCapacity = errors.New("capacity must not be negative")
)

// Capacity is an arbitrary precision integer amount expressed in the
// smallest denomination. Values are immutable: every operation allocates a
// new underlying big.Int. The zero value is a valid 0.
type Capacity struct {
	v *big.Int
}

// Zero returns a zero Capacity.
func Zero() Capacity {
	return Capacity{new(big.Int)}
}

// FromUint64 returns a Capacity holding n.
func FromUint64(n uint64) Capacity {
	return Capacity{new(big.Int).SetUint64(n)}
}

// FromBigInt copies n into a new Capacity.
func FromBigInt(n *big.Int) Capacity {
	if n == nil {
		return Zero()
	}
	return Capacity{new(big.Int).Set(n)}
}

// Parse decodes a decimal string. A leading '-' is accepted so that signed
// intermediates round trip, use ParseNonNegative at persistence boundaries.
func Parse(s string) (Capacity, error) {
	s = strings.TrimSpace(s)
	if len(s) <= 0 {
		return Capacity{}, ErrInvalidCapacity
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Capacity{}, fmt.Errorf("%w: %q", ErrInvalidCapacity, s)
	}
	return Capacity{n}, nil
}

// ParseNonNegative is like Parse but rejects negative values.
func ParseNonNegative(s string) (Capacity, error) {
	c, err := Parse(s)
	if err != nil {
		return Capacity{}, err
	}
	if c.Sign() < 0 {
		return Capacity{}, ErrNegativeCapacity
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Meant for constants.
func MustParse(s string) Capacity {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Capacity) int() *big.Int {
	if c.v == nil {
		return new(big.Int)
	}
	return c.v
}

// BigInt returns a copy of the underlying value.
func (c Capacity) BigInt() *big.Int {
	return new(big.Int).Set(c.int())
}

// Add returns c + o.
func (c Capacity) Add(o Capacity) Capacity {
	return Capacity{new(big.Int).Add(c.int(), o.int())}
}

// Sub returns c - o, which might be negative.
func (c Capacity) Sub(o Capacity) Capacity {
	return Capacity{new(big.Int).Sub(c.int(), o.int())}
}

// Mul returns c * o.
func (c Capacity) Mul(o Capacity) Capacity {
	return Capacity{new(big.Int).Mul(c.int(), o.int())}
}

// Cmp compares c and o and returns -1, 0 or +1.
func (c Capacity) Cmp(o Capacity) int {
	return c.int().Cmp(o.int())
}

// Sign returns -1, 0 or +1 depending on the sign of c.
func (c Capacity) Sign() int {
	return c.int().Sign()
}

// IsZero returns whether c == 0.
func (c Capacity) IsZero() bool {
	return c.Sign() == 0
}

// LessThan returns whether c < o.
func (c Capacity) LessThan(o Capacity) bool {
	return c.Cmp(o) < 0
}

// Equal returns whether c == o.
func (c Capacity) Equal(o Capacity) bool {
	return c.Cmp(o) == 0
}

// String returns the base-10 representation of c.
func (c Capacity) String() string {
	return c.int().String()
}

// Sum adds up all the given values.
func Sum(values ...Capacity) Capacity {
	total := new(big.Int)
	for _, v := range values {
		total.Add(total, v.int())
	}
	return Capacity{total}
}

// MarshalJSON encodes c as a JSON string to avoid any float conversion on
// the consumer side.
func (c Capacity) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON accepts both a JSON string and a bare JSON number.
func (c *Capacity) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// GobEncode implements gob.GobEncoder so that Capacity can be stored by
// badgerhold's default encoder.
func (c Capacity) GobEncode() ([]byte, error) {
	return []byte(c.String()), nil
}

// GobDecode implements gob.GobDecoder.
func (c *Capacity) GobDecode(data []byte) error {
	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
