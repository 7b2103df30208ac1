package capacity

import "math/big"

// ToHex returns the 0x-prefixed hexadecimal form of a decimal string.
func ToHex(num string) (string, error) {
	c, err := Parse(num)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// Hex returns the 0x-prefixed hexadecimal form of c.
func (c Capacity) Hex() string {
	n := c.int()
	if n.Sign() < 0 {
		return "-0x" + new(big.Int).Neg(n).Text(16)
	}
	return "0x" + n.Text(16)
}
