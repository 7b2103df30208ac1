package application

import (
	"fmt"

	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/pkg/capacity"
)

// AssemblerConfig holds the chain parameters used to build transactions.
type AssemblerConfig struct {
	Network      domain.Network
	SecpCodeHash string
	CellDeps     []domain.CellDep
	DefaultUnit  capacity.Unit

	// MinCellCapacity is the lower bound of every output capacity.
	MinCellCapacity capacity.Capacity
}

type TxAssembler interface {
	// LockScript returns the lock script paying to the given address.
	LockScript(address string) (domain.Script, error)
	// BuildOutputs turns the target outputs into transaction outputs, with
	// amounts normalized to shannons, and returns their total capacity.
	BuildOutputs(
		targets []domain.TargetOutput,
	) ([]domain.Output, capacity.Capacity, error)
	// Assemble builds the raw transaction spending the selected inputs to
	// the targets, paying the change, if any, to changeLock. It panics if the
	// selection does not cover targets plus fee, or if the change left is
	// positive but lower than the minimum cell capacity.
	Assemble(
		selection *Selection,
		targets []domain.TargetOutput,
		fee capacity.Capacity,
		changeLock domain.Script,
	) (*domain.RawTransaction, error)
}

type txAssembler struct {
	cfg AssemblerConfig
}

func NewTxAssembler(cfg AssemblerConfig) TxAssembler {
	if len(cfg.DefaultUnit) <= 0 {
		cfg.DefaultUnit = capacity.UnitShannon
	}
	return &txAssembler{cfg}
}

func (a *txAssembler) LockScript(address string) (domain.Script, error) {
	return domain.LockScriptFromAddress(
		address, a.cfg.Network, a.cfg.SecpCodeHash,
	)
}

func (a *txAssembler) BuildOutputs(
	targets []domain.TargetOutput,
) ([]domain.Output, capacity.Capacity, error) {
	if len(targets) <= 0 {
		return nil, capacity.Zero(), domain.ErrEmptyOutputs
	}

	outputs := make([]domain.Output, 0, len(targets))
	values := make([]capacity.Capacity, 0, len(targets))
	for i, t := range targets {
		value, err := a.parseAmount(t)
		if err != nil {
			return nil, capacity.Zero(), fmt.Errorf("output %d: %w", i, err)
		}
		lock, err := a.LockScript(t.Address)
		if err != nil {
			return nil, capacity.Zero(), err
		}

		outputs = append(outputs, domain.Output{
			Capacity: value,
			Lock:     lock,
			Data:     "0x",
		})
		values = append(values, value)
	}
	return outputs, capacity.Sum(values...), nil
}

func (a *txAssembler) Assemble(
	selection *Selection,
	targets []domain.TargetOutput,
	fee capacity.Capacity,
	changeLock domain.Script,
) (*domain.RawTransaction, error) {
	outputs, total, err := a.BuildOutputs(targets)
	if err != nil {
		return nil, err
	}

	change := selection.Change(total.Add(fee))
	if change.Sign() < 0 {
		panic(fmt.Sprintf(
			"selected inputs %s do not cover outputs %s and fee %s",
			selection.Total, total, fee,
		))
	}
	if !change.IsZero() && change.LessThan(a.cfg.MinCellCapacity) {
		panic(fmt.Sprintf(
			"change %s is lower than the minimum cell capacity %s",
			change, a.cfg.MinCellCapacity,
		))
	}
	if !change.IsZero() {
		outputs = append(outputs, domain.Output{
			Capacity: change,
			Lock:     changeLock,
			Data:     "0x",
		})
	}

	inputs := make([]domain.Input, len(selection.Inputs))
	copy(inputs, selection.Inputs)
	cellDeps := make([]domain.CellDep, len(a.cfg.CellDeps))
	copy(cellDeps, a.cfg.CellDeps)

	return &domain.RawTransaction{
		Version:    domain.TxVersion,
		CellDeps:   cellDeps,
		HeaderDeps: []string{},
		Inputs:     inputs,
		Outputs:    outputs,
		Witnesses:  []domain.Witness{},
	}, nil
}

func (a *txAssembler) parseAmount(t domain.TargetOutput) (capacity.Capacity, error) {
	unit, err := capacity.ParseUnit(string(t.Unit), a.cfg.DefaultUnit)
	if err != nil {
		return capacity.Zero(), fmt.Errorf("%w: %s", domain.ErrInvalidAmount, err)
	}
	value, err := capacity.FromUnit(t.Amount, unit)
	if err != nil {
		return capacity.Zero(), fmt.Errorf("%w: %s", domain.ErrInvalidAmount, err)
	}
	if value.Sign() <= 0 {
		return capacity.Zero(), fmt.Errorf(
			"%w: amount must be positive", domain.ErrInvalidAmount,
		)
	}
	if value.LessThan(a.cfg.MinCellCapacity) {
		return capacity.Zero(), fmt.Errorf(
			"%w: %s is lower than the minimum cell capacity %s",
			domain.ErrInvalidAmount, value, a.cfg.MinCellCapacity,
		)
	}
	return value, nil
}
