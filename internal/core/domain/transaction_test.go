package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/pkg/capacity"
	"github.com/stretchr/testify/require"
)

func TestNewWitness(t *testing.T) {
	t.Parallel()

	pubkey := []byte{0x02, 0xaa}
	signature := make([]byte, 71)
	w := domain.NewWitness(pubkey, signature)

	require.Len(t, w.Data, 3)
	require.Equal(t, "0x02aa", w.Data[0])
	require.Equal(t, "0x4700000000000000", w.Data[2])
}

func TestTransactionCapacities(t *testing.T) {
	t.Parallel()

	tx := domain.RawTransaction{
		Inputs: []domain.Input{
			{Capacity: capacity.MustParse("6100000000")},
			{Capacity: capacity.MustParse("20000000000")},
		},
		Outputs: []domain.Output{
			{Capacity: capacity.MustParse("10000000000")},
			{Capacity: capacity.MustParse("16099999000")},
		},
	}

	require.Equal(t, "26100000000", tx.InputsCapacity().String())
	require.Equal(t, "26099999000", tx.OutputsCapacity().String())
	require.Equal(t, "1000", tx.Fee().String())
	require.False(t, tx.IsSigned())

	tx.Witnesses = []domain.Witness{{}, {}}
	require.True(t, tx.IsSigned())
	require.Len(t, tx.SpentOutPoints(), 2)
}

func TestRawTransactionJSON(t *testing.T) {
	t.Parallel()

	tx := domain.RawTransaction{
		Version: domain.TxVersion,
		Inputs: []domain.Input{{
			PreviousOutput: domain.OutPoint{TxHash: "0xabc", Index: 1},
			Since:          domain.DefaultSince,
			Capacity:       capacity.MustParse("6100000000"),
		}},
	}
	buf, err := json.Marshal(tx)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf, &decoded))
	in := decoded["inputs"].([]interface{})[0].(map[string]interface{})
	prevout := in["previous_output"].(map[string]interface{})
	require.Equal(t, "1", prevout["index"])
	require.Equal(t, "6100000000", in["capacity"])
}
