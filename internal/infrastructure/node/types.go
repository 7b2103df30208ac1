package node

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/pkg/capacity"
)

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// RPCError is an error returned by the node for a well formed request.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("%s (code %d)", e.Message, e.Code)
}

type rpcOutPoint struct {
	TxHash string `json:"tx_hash"`
	Index  string `json:"index"`
}

type rpcCellDep struct {
	OutPoint rpcOutPoint `json:"out_point"`
	DepType  string      `json:"dep_type"`
}

type rpcInput struct {
	PreviousOutput rpcOutPoint `json:"previous_output"`
	Since          string      `json:"since"`
}

type rpcScript struct {
	CodeHash string   `json:"code_hash"`
	Args     []string `json:"args"`
}

type rpcOutput struct {
	Capacity string     `json:"capacity"`
	Lock     rpcScript  `json:"lock"`
	Type     *rpcScript `json:"type"`
}

type rpcWitness struct {
	Data []string `json:"data"`
}

type rpcTransaction struct {
	Version     string       `json:"version"`
	CellDeps    []rpcCellDep `json:"cell_deps"`
	HeaderDeps  []string     `json:"header_deps"`
	Inputs      []rpcInput   `json:"inputs"`
	Outputs     []rpcOutput  `json:"outputs"`
	OutputsData []string     `json:"outputs_data"`
	Witnesses   []rpcWitness `json:"witnesses"`
}

// toRPCTransaction converts the transaction into the node's wire format.
// Numbers are serialized as 0x-prefixed hex strings.
func toRPCTransaction(tx *domain.RawTransaction) (*rpcTransaction, error) {
	version, err := decimalToHex(tx.Version)
	if err != nil {
		return nil, err
	}

	cellDeps := make([]rpcCellDep, 0, len(tx.CellDeps))
	for _, d := range tx.CellDeps {
		cellDeps = append(cellDeps, rpcCellDep{
			OutPoint: toRPCOutPoint(d.OutPoint),
			DepType:  d.DepType,
		})
	}

	inputs := make([]rpcInput, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		since, err := decimalToHex(in.Since)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, rpcInput{
			PreviousOutput: toRPCOutPoint(in.PreviousOutput),
			Since:          since,
		})
	}

	outputs := make([]rpcOutput, 0, len(tx.Outputs))
	outputsData := make([]string, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		var typeScript *rpcScript
		if out.TypeScript != nil {
			s := toRPCScript(*out.TypeScript)
			typeScript = &s
		}
		outputs = append(outputs, rpcOutput{
			Capacity: out.Capacity.Hex(),
			Lock:     toRPCScript(out.Lock),
			Type:     typeScript,
		})
		data := out.Data
		if len(data) <= 0 {
			data = "0x"
		}
		outputsData = append(outputsData, data)
	}

	witnesses := make([]rpcWitness, 0, len(tx.Witnesses))
	for _, w := range tx.Witnesses {
		witnesses = append(witnesses, rpcWitness{Data: append([]string{}, w.Data...)})
	}

	headerDeps := tx.HeaderDeps
	if headerDeps == nil {
		headerDeps = []string{}
	}

	return &rpcTransaction{
		Version:     version,
		CellDeps:    cellDeps,
		HeaderDeps:  headerDeps,
		Inputs:      inputs,
		Outputs:     outputs,
		OutputsData: outputsData,
		Witnesses:   witnesses,
	}, nil
}

func toRPCOutPoint(o domain.OutPoint) rpcOutPoint {
	return rpcOutPoint{TxHash: o.TxHash, Index: uint64ToHex(uint64(o.Index))}
}

func toRPCScript(s domain.Script) rpcScript {
	args := s.Args
	if args == nil {
		args = []string{}
	}
	return rpcScript{CodeHash: s.CodeHash, Args: args}
}

func decimalToHex(num string) (string, error) {
	if len(num) <= 0 {
		return "0x0", nil
	}
	return capacity.ToHex(num)
}

func uint64ToHex(n uint64) string {
	return "0x" + strconv.FormatUint(n, 16)
}
