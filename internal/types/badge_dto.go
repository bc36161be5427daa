package types

import "onebase/internal/badge"

// BadgeReq defines the request body of POST /api/badge.
type BadgeReq struct {
	// A wallet address or a basename such as jesse.base.eth.
	Input string `json:"input"`
}

// BadgeQuery carries the same input as a query parameter for the page and
// image routes.
type BadgeQuery struct {
	Input string `form:"input,optional"`
}

// BadgeResp defines the response body of a successfully issued badge.
type BadgeResp struct {
	Input string `json:"input"`
	// Address used for the analytics lookups.
	Address string `json:"address"`
	// Resolved is true when Address came from the basename resolver.
	Resolved         bool                  `json:"resolved"`
	Name             string                `json:"name"`
	DisplayName      string                `json:"display_name,omitempty"`
	TransactionCount uint64                `json:"transaction_count"`
	TotalVolume      float64               `json:"total_volume"`
	Transactions     string                `json:"transactions"`
	Volume           string                `json:"volume"`
	Progress         badge.ProgressReading `json:"progress"`
	ShareUrl         string                `json:"share_url"`
}

// RecentReq defines the query of GET /api/badge/recent.
type RecentReq struct {
	Limit   int    `form:"limit,default=10,range=[1:100]"`
	Address string `form:"address,optional"`
}

// BadgeSnapshot is one row of the issuance log.
type BadgeSnapshot struct {
	Input            string  `json:"input"`
	Address          string  `json:"address"`
	DisplayName      string  `json:"display_name,omitempty"`
	TransactionCount uint64  `json:"transaction_count"`
	TotalVolume      float64 `json:"total_volume"`
	Resolved         bool    `json:"resolved"`
	CreatedAt        int64   `json:"created_at"`
}

// RecentResp defines the response body of GET /api/badge/recent.
type RecentResp struct {
	Badges []BadgeSnapshot `json:"badges"`
	Total  int             `json:"total"`
}
