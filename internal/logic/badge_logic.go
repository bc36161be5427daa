package logic

import (
	"context"
	"errors"
	"strings"
	"time"

	"onebase/internal/badge"
	"onebase/internal/model"
	"onebase/internal/resolver"
	"onebase/internal/svc"
	"onebase/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// flightTimeout bounds a shared pipeline run, which outlives the request
// that started it.
const flightTimeout = 30 * time.Second

var (
	ErrEmptyInput = errors.New("empty input")
	// ErrBadgeUnavailable is the single outcome of every pipeline failure.
	// The cause is logged, never returned.
	ErrBadgeUnavailable = errors.New("badge unavailable")
)

// Issued is a complete, consistent badge together with how its address was
// obtained.
type Issued struct {
	Input      string
	Resolution resolver.Resolution
	Badge      badge.Badge
}

type BadgeLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewBadgeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *BadgeLogic {
	return &BadgeLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Badge handles POST /api/badge.
func (l *BadgeLogic) Badge(req *types.BadgeReq) (*types.BadgeResp, error) {
	issued, err := l.Issue(req.Input)
	if err != nil {
		return nil, err
	}
	return toBadgeResp(issued), nil
}

// Issue runs the submission pipeline for input. Inputs that normalize to the
// same key while a run is in flight share that run. The shared run does not
// stop when one of the waiting requests goes away.
func (l *BadgeLogic) Issue(input string) (*Issued, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	v, err := l.svcCtx.BadgeFlight.Do(flightKey(input), func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(l.ctx), flightTimeout)
		defer cancel()
		return l.issue(ctx, input)
	})
	if err != nil {
		return nil, err
	}
	return adopt(v.(*Issued), input), nil
}

// flightKey folds inputs naming the same wallet onto one key. Basenames and
// hex addresses are both case-insensitive.
func flightKey(input string) string {
	return resolver.Normalize(input)
}

// adopt returns issued as seen by a caller that typed input. A shared run
// carries the input of the request that started it, and the badge name falls
// back to that input.
func adopt(issued *Issued, input string) *Issued {
	if issued.Input == input {
		return issued
	}
	return &Issued{
		Input:      input,
		Resolution: issued.Resolution,
		Badge:      badge.New(input, issued.Badge.Stats),
	}
}

func (l *BadgeLogic) issue(ctx context.Context, input string) (*Issued, error) {
	l.Infof("--- 开始生成徽章, input: %s ---", input)

	// 1. 解析 basename, 失败时直接使用原始输入
	res := l.svcCtx.Resolver.Resolve(ctx, input)
	switch {
	case res.Resolved():
		l.Infof("步骤 1: %s 解析为 %s", input, res.Address)
	case res.Cause != nil:
		l.Infof("步骤 1: %s 解析失败, 使用原始输入: %v", input, res.Cause)
	}

	// 2. 交易总数
	txCount, err := l.svcCtx.Analytics.TransactionCount(ctx, res.Address)
	if err != nil {
		l.Errorf("获取交易统计失败, address: %s, err: %v", res.Address, err)
		return nil, ErrBadgeUnavailable
	}
	l.Infof("步骤 2: 交易总数 %d", txCount)

	// 3. 交易量
	volume, err := l.svcCtx.Analytics.TradeVolume(ctx, res.Address)
	if err != nil {
		l.Errorf("获取交易量失败, address: %s, err: %v", res.Address, err)
		return nil, ErrBadgeUnavailable
	}
	l.Infof("步骤 3: 交易量 %v", volume)

	// 4. 反向查询显示名称
	name, err := l.svcCtx.Resolver.LookupName(ctx, res.Address)
	if err != nil {
		l.Errorf("查询 basename 失败, address: %s, err: %v", res.Address, err)
		return nil, ErrBadgeUnavailable
	}
	l.Infof("步骤 4: basename %q", name)

	issued := &Issued{
		Input:      input,
		Resolution: res,
		Badge: badge.New(input, badge.Stats{
			Transactions: txCount,
			Volume:       volume,
			DisplayName:  name,
		}),
	}

	// 快照记录失败不影响徽章
	if err := l.svcCtx.BadgesDao.Insert(ctx, &model.BadgeSnapshots{
		Input:            input,
		Address:          res.Address,
		DisplayName:      name,
		TransactionCount: txCount,
		TotalVolume:      volume,
		Resolved:         res.Resolved(),
	}); err != nil {
		l.Errorf("记录徽章快照失败: %v", err)
	}

	l.Infof("--- 徽章生成完成: %s, %s ---", issued.Badge.Name, issued.Badge.Progress)
	return issued, nil
}

func toBadgeResp(issued *Issued) *types.BadgeResp {
	b := issued.Badge
	return &types.BadgeResp{
		Input:            issued.Input,
		Address:          issued.Resolution.Address,
		Resolved:         issued.Resolution.Resolved(),
		Name:             b.Name,
		DisplayName:      b.Stats.DisplayName,
		TransactionCount: b.Stats.Transactions,
		TotalVolume:      b.Stats.Volume,
		Transactions:     b.Transactions,
		Volume:           b.Volume,
		Progress:         b.Progress,
		ShareUrl:         b.ShareURL,
	}
}
