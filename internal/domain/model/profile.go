package model

import "time"

// ProfileStats summarizes a user's public activity on their profile page.
type ProfileStats struct {
	TotalPublicProcesses int     `json:"total_public_processes"`
	OffersReceived       int     `json:"offers_received"`
	ActiveApplications   int     `json:"active_applications"`
	Rejected             int     `json:"rejected"`
	SuccessRate          float64 `json:"success_rate"`
	CommentCount         int     `json:"comment_count"`
}

// PublicProfile is the unauthenticated view of a user.
type PublicProfile struct {
	Username         string       `json:"username"`
	DisplayName      *string      `json:"display_name,omitempty"`
	IsAnonymous      bool         `json:"is_anonymous"`
	CommentsEnabled  bool         `json:"comments_enabled"`
	AccountCreatedAt time.Time    `json:"account_created_at"`
	Processes        []Process    `json:"processes"`
	Stats            ProfileStats `json:"stats"`
}

// AnalyticsStats accompanies the public analytics payload.
type AnalyticsStats struct {
	TotalPublicProcesses int               `json:"total_public_processes"`
	StageCounts          map[StageName]int `json:"stage_counts"`
}

// PublicAnalytics bundles a user's public processes with their details and
// stats, as served by the upstream analytics endpoint.
type PublicAnalytics struct {
	Username    string          `json:"username"`
	DisplayName *string         `json:"display_name,omitempty"`
	IsAnonymous bool            `json:"is_anonymous"`
	Processes   []Process       `json:"processes"`
	Details     []ProcessDetail `json:"process_details"`
	Stats       AnalyticsStats  `json:"stats"`
}
