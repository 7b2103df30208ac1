package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/hulin115/neuron/internal/core/domain"
	"github.com/hulin115/neuron/internal/core/ports"
	"github.com/hulin115/neuron/pkg/capacity"
	"github.com/spf13/viper"
)

const (
	// DatadirKey is the local data directory to store the wallets and cells
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// NetworkKey selects the address prefix, either mainnet or testnet
	NetworkKey = "NETWORK"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// NodeRPCEndpointKey is the http endpoint of the CKB node JSON-RPC interface
	NodeRPCEndpointKey = "NODE_RPC_ENDPOINT"
	// NodeRequestTimeoutKey is the timeout in seconds of every call to the node
	NodeRequestTimeoutKey = "NODE_REQUEST_TIMEOUT"
	// NodeRateLimitKey is the max number of calls per second to the node, 0 disables the limit
	NodeRateLimitKey = "NODE_RATE_LIMIT"
	// SkipDataAndTypeKey excludes cells with data or type script from balance and spending
	SkipDataAndTypeKey = "SKIP_DATA_AND_TYPE"
	// MinCellCapacityKey is the minimum capacity in shannons of every output
	MinCellCapacityKey = "MIN_CELL_CAPACITY"
	// FeeKey is the default fee in shannons paid by every transaction
	FeeKey = "FEE"
	// DenominationUnitKey is the unit of amounts not specifying one, either shannon or ckb
	DenominationUnitKey = "DENOMINATION_UNIT"
	// SecpCodeHashKey is the code hash of the secp256k1 blake160 lock script
	SecpCodeHashKey = "SECP_CODE_HASH"
	// SecpDepTxHashKey is the hash of the transaction carrying the secp256k1 dep group
	SecpDepTxHashKey = "SECP_DEP_TX_HASH"
	// SecpDepIndexKey is the output index of the secp256k1 dep group
	SecpDepIndexKey = "SECP_DEP_INDEX"
	// KeystoreScryptNKey is the scrypt cost used to seal new keystores
	KeystoreScryptNKey = "KEYSTORE_SCRYPT_N"
	// TxSentWebhookKey is an optional endpoint notified of every spend outcome
	TxSentWebhookKey = "TX_SENT_WEBHOOK"
	// TxSentWebhookSecretKey is the secret used to sign the webhook requests
	TxSentWebhookSecretKey = "TX_SENT_WEBHOOK_SECRET"
	// EnableProfilerKey enables profiler that can be used to investigate performance issues
	EnableProfilerKey = "ENABLE_PROFILER"
	// StatsIntervalKey defines interval for printing basic statistics
	StatsIntervalKey = "STATS_INTERVAL"

	DbLocation       = "db"
	ProfilerLocation = "stats"
	SettingsFile     = "config.json"

	DBBadger   = "badger"
	DBInMemory = "inmemory"
)

var (
	vip            *viper.Viper
	defaultDatadir = btcutil.AppDataDir("neuron", false)

	// ErrMissingDatadir ...
	ErrMissingDatadir = errors.New("missing datadir")
)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("NEURON")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(NetworkKey, string(domain.NetworkTestnet))
	vip.SetDefault(DBTypeKey, DBBadger)
	vip.SetDefault(NodeRPCEndpointKey, "http://localhost:8114")
	vip.SetDefault(NodeRequestTimeoutKey, 15)
	vip.SetDefault(NodeRateLimitKey, 20)
	vip.SetDefault(SkipDataAndTypeKey, true)
	vip.SetDefault(MinCellCapacityKey, domain.MinCellCapacityValue)
	vip.SetDefault(FeeKey, "0")
	vip.SetDefault(DenominationUnitKey, string(capacity.UnitShannon))
	vip.SetDefault(SecpCodeHashKey, "0x9bd7e06f3ecf4be0f2fcd2188b23f1b9fcc88e5d4b65a8637b17723bbda3cce8")
	vip.SetDefault(SecpDepTxHashKey, "0x71a7ba8fc96349fea0ed3a5c47992e3b4084b031a42264a018e0072e8172e46c")
	vip.SetDefault(SecpDepIndexKey, 0)
	vip.SetDefault(KeystoreScryptNKey, 1<<18)
	vip.SetDefault(EnableProfilerKey, false)
	vip.SetDefault(StatsIntervalKey, 600)

	if err := readSettings(); err != nil {
		return fmt.Errorf("error while reading settings: %s", err)
	}

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetDuration(key string) time.Duration {
	return vip.GetDuration(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir returns the directory of the badger stores, or an empty string if
// the data must be kept in memory.
func GetDbDir() string {
	if GetString(DBTypeKey) == DBInMemory {
		return ""
	}
	return filepath.Join(GetDatadir(), DbLocation)
}

func GetNetwork() domain.Network {
	return domain.Network(GetString(NetworkKey))
}

func GetMinCellCapacity() capacity.Capacity {
	return capacity.MustParse(GetString(MinCellCapacityKey))
}

func GetFee() capacity.Capacity {
	return capacity.MustParse(GetString(FeeKey))
}

func GetDenominationUnit() capacity.Unit {
	unit, _ := capacity.ParseUnit(GetString(DenominationUnitKey), capacity.UnitShannon)
	return unit
}

func GetNodeRequestTimeout() time.Duration {
	return time.Duration(GetInt(NodeRequestTimeoutKey)) * time.Second
}

func GetStatsInterval() time.Duration {
	return time.Duration(GetInt(StatsIntervalKey)) * time.Second
}

// GetCellDeps returns the cell deps of the secp256k1 lock script.
func GetCellDeps() []domain.CellDep {
	return []domain.CellDep{{
		OutPoint: domain.OutPoint{
			TxHash: GetString(SecpDepTxHashKey),
			Index:  uint32(GetInt(SecpDepIndexKey)),
		},
		DepType: domain.DepTypeDepGroup,
	}}
}

// GetSettings returns the user preferences backed by the config.
func GetSettings() ports.Settings {
	return settings{}
}

type settings struct{}

func (settings) SkipDataAndType() bool {
	return GetBool(SkipDataAndTypeKey)
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return ErrMissingDatadir
	}

	if !GetNetwork().IsValid() {
		return fmt.Errorf("%s must be either mainnet or testnet", NetworkKey)
	}

	dbType := GetString(DBTypeKey)
	if dbType != DBBadger && dbType != DBInMemory {
		return fmt.Errorf("%s must be either %s or %s", DBTypeKey, DBBadger, DBInMemory)
	}

	if len(GetString(NodeRPCEndpointKey)) <= 0 {
		return fmt.Errorf("missing node rpc endpoint")
	}

	if GetInt(NodeRequestTimeoutKey) <= 0 {
		return fmt.Errorf("%s must be greater than zero", NodeRequestTimeoutKey)
	}

	if GetInt(NodeRateLimitKey) < 0 {
		return fmt.Errorf("%s must not be negative", NodeRateLimitKey)
	}

	minCellCapacity, err := capacity.ParseNonNegative(GetString(MinCellCapacityKey))
	if err != nil {
		return fmt.Errorf("%s: %s", MinCellCapacityKey, err)
	}
	if minCellCapacity.IsZero() {
		return fmt.Errorf("%s must be greater than zero", MinCellCapacityKey)
	}

	if _, err := capacity.ParseNonNegative(GetString(FeeKey)); err != nil {
		return fmt.Errorf("%s: %s", FeeKey, err)
	}

	if _, err := capacity.ParseUnit(GetString(DenominationUnitKey), ""); err != nil {
		return fmt.Errorf("%s: %s", DenominationUnitKey, err)
	}

	if n := GetInt(KeystoreScryptNKey); n <= 1 || n&(n-1) != 0 {
		return fmt.Errorf(
			"%s must be a power of 2 greater than 1", KeystoreScryptNKey,
		)
	}

	if GetInt(SecpDepIndexKey) < 0 {
		return fmt.Errorf("%s must not be negative", SecpDepIndexKey)
	}

	return nil
}

func initDatadir() error {
	datadir := GetDatadir()
	if err := makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation)); err != nil {
		return err
	}

	profilerEnabled := GetBool(EnableProfilerKey)
	if profilerEnabled {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, ProfilerLocation)); err != nil {
			return err
		}
	}
	return nil
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
