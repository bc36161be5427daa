package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"onebase/internal/badge"
	"onebase/internal/constant"
	"onebase/internal/logic"
	"onebase/internal/svc"
	"onebase/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

//go:embed templates/index.html
var pageFS embed.FS

var pageTemplate = template.Must(template.ParseFS(pageFS, "templates/index.html"))

type pageView struct {
	Title string
	Color template.CSS
	Input string
	// Set only when a badge was issued; the form is shown otherwise.
	Badge    *badge.Badge
	BadgeSVG template.HTML
	ImageURL string
}

// IndexHandler renders the input form.
func IndexHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, r, newPageView(""))
	}
}

// BadgePageHandler issues a badge and renders it. On any failure the form is
// rendered again with the input kept and no message.
func BadgePageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.BadgeQuery
		if err := httpx.Parse(r, &req); err != nil {
			logx.WithContext(r.Context()).Errorf("failed to parse request query: %v", err)
			renderPage(w, r, newPageView(""))
			return
		}

		view := newPageView(req.Input)
		issued, err := logic.NewBadgeLogic(r.Context(), svcCtx).Issue(req.Input)
		if err != nil {
			renderPage(w, r, view)
			return
		}

		svg, err := badge.SVG(issued.Badge)
		if err != nil {
			logx.WithContext(r.Context()).Errorf("failed to render badge: %v", err)
			renderPage(w, r, view)
			return
		}

		view.Badge = &issued.Badge
		// svg 由 html/template 渲染, 内容已转义
		view.BadgeSVG = template.HTML(svg)
		view.ImageURL = "/api/badge/image?" + url.Values{"input": {issued.Input}}.Encode()
		renderPage(w, r, view)
	}
}

func newPageView(input string) pageView {
	return pageView{
		Title: constant.PageTitle,
		Color: template.CSS(constant.BrandColor),
		Input: input,
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, view pageView) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		logx.WithContext(r.Context()).Errorf("failed to render page: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
