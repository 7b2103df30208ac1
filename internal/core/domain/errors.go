package domain

import "errors"

var (
	// ErrCapacityNotEnough is returned when the live cells of a wallet do not
	// cover the target amount plus fee.
	ErrCapacityNotEnough = errors.New("capacity not enough")
	// ErrCapacityNotEnoughForChange is returned when the live cells cover the
	// target plus fee but the surplus is too small to be paid back as a change
	// cell.
	ErrCapacityNotEnoughForChange = errors.New("capacity not enough for change")
	// ErrInvalidAmount is returned when the requested amount is below the
	// minimum cell capacity or is not a valid amount at all.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrWalletNotFound is returned when the requested wallet does not exist.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrWalletNameExists is returned when adding a wallet whose name is
	// already taken.
	ErrWalletNameExists = errors.New("wallet name existed")
	// ErrEmptyWalletName is returned when creating or renaming a wallet with
	// a blank name.
	ErrEmptyWalletName = errors.New("wallet name must not be empty")
	// ErrPasswordRequired is returned when signing without a password.
	ErrPasswordRequired = errors.New("password is required")
	// ErrIncorrectPassword is returned when the keystore can not be decrypted
	// with the given password.
	ErrIncorrectPassword = errors.New("password is incorrect")
	// ErrNoKeyData is returned when the decrypted keystore lacks the private
	// key.
	ErrNoKeyData = errors.New("key has no data")
	// ErrInvalidAddress is returned when an address fails prefix or format
	// validation.
	ErrInvalidAddress = errors.New("address is invalid")
	// ErrBroadcastRejected is returned when the node refuses a transaction.
	ErrBroadcastRejected = errors.New("transaction rejected by node")
	// ErrNoChangeAddress is returned when a wallet has no change address to
	// receive the change output.
	ErrNoChangeAddress = errors.New("wallet has no change address")
	// ErrCellNotLive is returned when trying to reserve a cell that is not
	// live anymore.
	ErrCellNotLive = errors.New("cell is not live")
	// ErrTransactionNotFound is returned when the requested transaction was
	// not sent by any wallet.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrLockHashNotOwned is returned when filtering the history of a wallet
	// by a lock hash of another wallet.
	ErrLockHashNotOwned = errors.New("lock hash does not belong to wallet")
	// ErrEmptyOutputs is returned when building a transaction without target
	// outputs.
	ErrEmptyOutputs = errors.New("at least one output is required")
)
