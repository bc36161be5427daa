package constant

// Milestone is the transaction count the badge measures progress against.
const Milestone = 1_000_000_000

// PercentThreshold is the smallest milestone ratio shown as a percentage.
// Anything below it is shown in parts per million.
const PercentThreshold = 0.0001

const (
	UnitPercent = "%"
	UnitPPM     = "ppm"
)

const (
	// BasenameSuffix marks inputs that go through the L2 resolver.
	BasenameSuffix = ".base.eth"
	// L2ResolverAddress is the basename resolver deployed on Base mainnet.
	L2ResolverAddress = "0xC6d566A56A1aFf6508b41f6c90ff131615583BCD"
	BaseChainID       = 8453
	AnalyticsChain    = "base"
)

const (
	BadgeTitle    = "1B(ase)"
	PageTitle     = "Contribution to 1B(ase)"
	BrandColor    = "rgb(0,82,255)"
	BadgeFilename = "1base-contribution-badge.png"
	ShareIntent   = "https://x.com/intent/tweet"
)
