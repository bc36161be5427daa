package config

import (
	"strings"
	"time"

	"github.com/zeromicro/go-zero/rest"
)

type ChainConf struct {
	Name    string `json:"Name"`
	RpcUrl  string `json:"RpcUrl"`
	ChainId int64  `json:"ChainId"`
}

// IdentityConf carries the identity provider key. When the key is present the
// chain RPC goes through the provider's node instead of the public one.
type IdentityConf struct {
	ApiKey  string `json:",optional,env=ONCHAINKIT_API_KEY"`
	RpcBase string `json:",default=https://api.developer.coinbase.com/rpc/v1/base"`
}

type MoralisConf struct {
	ApiUrl  string        `json:",default=https://deep-index.moralis.io/api/v2.2"`
	ApiKey  string        `json:",optional,env=MORALIS_API_KEY"`
	Chain   string        `json:",default=base"`
	Timeout time.Duration `json:",default=30s"`
}

type ResolverConf struct {
	Address string `json:",default=0xC6d566A56A1aFf6508b41f6c90ff131615583BCD"`
	Suffix  string `json:",default=.base.eth"`
}

type Config struct {
	rest.RestConf
	Postgres struct {
		// 为空时不记录徽章快照
		DSN string `json:",optional"`
	}
	Chain    ChainConf
	Identity IdentityConf
	Moralis  MoralisConf
	Resolver ResolverConf
}

// NodeURL returns the RPC endpoint used for resolver calls.
func (c Config) NodeURL() string {
	if c.Identity.ApiKey != "" {
		return strings.TrimRight(c.Identity.RpcBase, "/") + "/" + c.Identity.ApiKey
	}
	return c.Chain.RpcUrl
}
