package handler

import (
	"errors"
	"net/http"

	"onebase/internal/badge"
	"onebase/internal/constant"
	"onebase/internal/logic"
	"onebase/internal/svc"
	"onebase/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// BadgeHandler issues a badge and returns it as JSON.
func BadgeHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logx.WithContext(r.Context()).Infof("BadgeHandler")
		var req types.BadgeReq
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Errorf("failed to parse request body: %v", err)
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewBadgeLogic(r.Context(), svcCtx)
		resp, err := l.Badge(&req)
		if err != nil {
			badgeError(w, r, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

// BadgeImageHandler issues a badge and serves it as a downloadable PNG.
func BadgeImageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logx.WithContext(r.Context()).Infof("BadgeImageHandler")
		var req types.BadgeQuery
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Errorf("failed to parse request query: %v", err)
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewBadgeLogic(r.Context(), svcCtx)
		issued, err := l.Issue(req.Input)
		if err != nil {
			badgeError(w, r, err)
			return
		}

		img, err := badge.PNG(issued.Badge)
		if err != nil {
			logx.WithContext(r.Context()).Errorf("failed to render badge: %v", err)
			badgeError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", `attachment; filename="`+constant.BadgeFilename+`"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(img)
	}
}

// RecentBadgesHandler lists the newest issued badges.
func RecentBadgesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RecentReq
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Errorf("failed to parse request query: %v", err)
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewRecentLogic(r.Context(), svcCtx)
		resp, err := l.Recent(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}

// badgeError hides every pipeline failure behind one generic error.
func badgeError(w http.ResponseWriter, r *http.Request, err error) {
	if !errors.Is(err, logic.ErrEmptyInput) {
		err = logic.ErrBadgeUnavailable
	}
	httpx.ErrorCtx(r.Context(), w, err)
}
