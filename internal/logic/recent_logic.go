package logic

import (
	"context"

	"onebase/internal/model"
	"onebase/internal/svc"
	"onebase/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type RecentLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewRecentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RecentLogic {
	return &RecentLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Recent lists the newest issued badges, optionally for one address.
func (l *RecentLogic) Recent(req *types.RecentReq) (*types.RecentResp, error) {
	var (
		rows []*model.BadgeSnapshots
		err  error
	)
	if req.Address != "" {
		rows, err = l.svcCtx.BadgesDao.FindByAddress(l.ctx, req.Address, req.Limit)
	} else {
		rows, err = l.svcCtx.BadgesDao.FindRecent(l.ctx, req.Limit)
	}
	if err != nil {
		l.Errorf("查询徽章快照失败: %v", err)
		return nil, err
	}

	resp := &types.RecentResp{Badges: make([]types.BadgeSnapshot, 0, len(rows))}
	for _, row := range rows {
		resp.Badges = append(resp.Badges, types.BadgeSnapshot{
			Input:            row.Input,
			Address:          row.Address,
			DisplayName:      row.DisplayName,
			TransactionCount: row.TransactionCount,
			TotalVolume:      row.TotalVolume,
			Resolved:         row.Resolved,
			CreatedAt:        row.CreatedAt.Unix(),
		})
	}
	resp.Total = len(resp.Badges)
	return resp, nil
}
