package svc

import (
	"context"
	"log"
	"time"

	"onebase/internal/analytics"
	"onebase/internal/config"
	"onebase/internal/model"
	"onebase/internal/resolver"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/syncx"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NameResolver turns user input into an address and addresses into names.
type NameResolver interface {
	Resolve(ctx context.Context, input string) resolver.Resolution
	LookupName(ctx context.Context, address string) (string, error)
}

// WalletAnalytics reads aggregate wallet totals.
type WalletAnalytics interface {
	TransactionCount(ctx context.Context, address string) (uint64, error)
	TradeVolume(ctx context.Context, address string) (float64, error)
}

// ServiceContext holds every client the handlers need. It is built once at
// startup and released with Close on shutdown.
type ServiceContext struct {
	Config      config.Config
	Resolver    NameResolver
	Analytics   WalletAnalytics
	BadgesDao   model.BadgeSnapshotsDao
	DB          *gorm.DB
	BadgeFlight syncx.SingleFlight

	eth *ethclient.Client
}

func NewServiceContext(c config.Config) *ServiceContext {
	eth, err := ethclient.Dial(c.NodeURL())
	if err != nil {
		log.Fatalf("failed to dial %s rpc: %v", c.Chain.Name, err)
	}

	svcCtx := &ServiceContext{
		Config:      c,
		Resolver:    resolver.NewResolver(eth, common.HexToAddress(c.Resolver.Address), c.Resolver.Suffix, c.Chain.ChainId),
		Analytics:   analytics.NewClient(c.Moralis),
		BadgesDao:   model.NewNopBadgeSnapshotsDao(),
		BadgeFlight: syncx.NewSingleFlight(),
		eth:         eth,
	}

	if c.Postgres.DSN == "" {
		logx.Info("Postgres DSN 未配置, 徽章快照不会被记录")
		return svcCtx
	}

	db, err := initDB(c.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}
	svcCtx.DB = db
	svcCtx.BadgesDao = model.NewBadgeSnapshotsDao(db)

	return svcCtx
}

// Close releases the RPC client and the database pool.
func (s *ServiceContext) Close() {
	if s.eth != nil {
		s.eth.Close()
	}
	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

func initDB(dsn string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(log.Writer(), "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.BadgeSnapshots{}); err != nil {
		return nil, err
	}

	// 设置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}
