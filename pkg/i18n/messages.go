package i18n

import "golang.org/x/text/language"

var translations = map[string]map[language.Tag]string{
	"unknown": {
		language.English:           "Unknown error",
		language.SimplifiedChinese: "未知错误",
	},
	"capacity-not-enough": {
		language.English:           "Capacity not enough",
		language.SimplifiedChinese: "余额不足",
	},
	"capacity-not-enough-for-change": {
		language.English:           "Capacity not enough for change",
		language.SimplifiedChinese: "余额不足以支付找零",
	},
	"invalid-amount": {
		language.English:           "Amount is invalid",
		language.SimplifiedChinese: "金额无效",
	},
	"current-wallet-is-not-found": {
		language.English:           "Current wallet is not found",
		language.SimplifiedChinese: "未找到当前钱包",
	},
	"wallet-name-existed": {
		language.English:           "Wallet name existed",
		language.SimplifiedChinese: "钱包名称已存在",
	},
	"password-is-required": {
		language.English:           "Password is required",
		language.SimplifiedChinese: "需要输入密码",
	},
	"password-is-incorrect": {
		language.English:           "Password is incorrect",
		language.SimplifiedChinese: "密码错误",
	},
	"current-key-has-no-data": {
		language.English:           "Current Key has no data",
		language.SimplifiedChinese: "当前密钥没有数据",
	},
	"address-is-invalid": {
		language.English:           "Address %s is invalid",
		language.SimplifiedChinese: "地址 %s 无效",
	},
	"transaction-rejected": {
		language.English:           "Transaction rejected by the node",
		language.SimplifiedChinese: "交易被节点拒绝",
	},
	"no-change-address": {
		language.English:           "Wallet has no change address",
		language.SimplifiedChinese: "钱包没有找零地址",
	},
	"transaction-is-not-found": {
		language.English:           "Transaction is not found",
		language.SimplifiedChinese: "未找到交易",
	},
	"lock-hash-is-not-owned": {
		language.English:           "Lock hash does not belong to the wallet",
		language.SimplifiedChinese: "锁哈希不属于该钱包",
	},
}
