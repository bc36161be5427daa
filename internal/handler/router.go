package handler

import (
	"net/http"
	"time"

	"onebase/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	// --- Page Routes ---
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: IndexHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/badge",
				Handler: BadgePageHandler(serverCtx),
			},
		},
		rest.WithTimeout(30000*time.Millisecond),
	)

	// --- Badge API Routes ---
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/badge",
				Handler: BadgeHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/badge/image",
				Handler: BadgeImageHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/badge/recent",
				Handler: RecentBadgesHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
		rest.WithTimeout(30000*time.Millisecond),
	)
}
