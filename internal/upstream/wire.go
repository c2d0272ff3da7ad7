package upstream

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// apiTime decodes the tracker API's timestamp strings. The API emits
// datetime.isoformat() output, which may carry fractional seconds and may
// omit the timezone. Naive timestamps are taken as UTC.
type apiTime struct {
	time.Time
}

var apiTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func (t *apiTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", raw)
}

func (t apiTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// wireProcess mirrors the upstream ProcessResponse schema.
type wireProcess struct {
	ID        int64   `json:"id"`
	Company   string  `json:"company_name"`
	Position  *string `json:"position"`
	Status    string  `json:"status"`
	IsPublic  bool    `json:"is_public"`
	ShareID   *string `json:"share_id"`
	CreatedAt apiTime `json:"created_at"`
	UpdatedAt apiTime `json:"updated_at"`
}

func (w *wireProcess) toModel() *model.Process {
	status, ok := model.ParseProcessStatus(w.Status)
	if !ok {
		status = model.ProcessStatusActive
	}
	return &model.Process{
		ID:        w.ID,
		Company:   w.Company,
		Position:  w.Position,
		Status:    status,
		IsPublic:  w.IsPublic,
		ShareID:   w.ShareID,
		CreatedAt: w.CreatedAt.Time,
		UpdatedAt: w.UpdatedAt.Time,
	}
}

// wireStage mirrors the upstream StageResponse schema.
type wireStage struct {
	ID        int64   `json:"id"`
	ProcessID int64   `json:"process_id"`
	Name      string  `json:"stage_name"`
	Date      apiTime `json:"stage_date"`
	Notes     *string `json:"notes"`
	Order     int     `json:"order"`
	CreatedAt apiTime `json:"created_at"`
	UpdatedAt apiTime `json:"updated_at"`
}

func (w *wireStage) toModel() *model.Stage {
	return &model.Stage{
		ID:        w.ID,
		ProcessID: w.ProcessID,
		Name:      model.StageName(w.Name),
		Date:      w.Date.Time,
		Notes:     w.Notes,
		Order:     w.Order,
		CreatedAt: w.CreatedAt.Time,
		UpdatedAt: w.UpdatedAt.Time,
	}
}

// wireProcessDetail mirrors the upstream ProcessDetailResponse schema.
type wireProcessDetail struct {
	wireProcess
	Stages []wireStage `json:"stages"`
}

func (w *wireProcessDetail) toModel() *model.ProcessDetail {
	stages := make([]model.Stage, 0, len(w.Stages))
	for i := range w.Stages {
		stages = append(stages, *w.Stages[i].toModel())
	}
	return &model.ProcessDetail{
		Process: *w.wireProcess.toModel(),
		Stages:  stages,
	}
}

// wireComment mirrors the upstream ProfileCommentResponse schema.
type wireComment struct {
	ID                int64         `json:"id"`
	AuthorUsername    *string       `json:"author_username"`
	AuthorDisplayName *string       `json:"author_display_name"`
	ParentID          *int64        `json:"parent_comment_id"`
	Content           string        `json:"content"`
	IsQuestion        bool          `json:"is_question"`
	IsAnswered        bool          `json:"is_answered"`
	Upvotes           int           `json:"upvotes"`
	UserHasUpvoted    bool          `json:"user_has_upvoted"`
	CreatedAt         apiTime       `json:"created_at"`
	UpdatedAt         apiTime       `json:"updated_at"`
	Replies           []wireComment `json:"replies"`
}

func (w *wireComment) toModel(profileUsername string) *model.ProfileComment {
	replies := make([]model.ProfileComment, 0, len(w.Replies))
	for i := range w.Replies {
		replies = append(replies, *w.Replies[i].toModel(profileUsername))
	}
	return &model.ProfileComment{
		ID:                w.ID,
		ProfileUsername:   profileUsername,
		AuthorUsername:    w.AuthorUsername,
		AuthorDisplayName: w.AuthorDisplayName,
		ParentID:          w.ParentID,
		Content:           w.Content,
		IsQuestion:        w.IsQuestion,
		IsAnswered:        w.IsAnswered,
		Upvotes:           w.Upvotes,
		UserHasUpvoted:    w.UserHasUpvoted,
		CreatedAt:         w.CreatedAt.Time,
		UpdatedAt:         w.UpdatedAt.Time,
		Replies:           replies,
	}
}

// wireNotification mirrors the upstream NotificationResponse schema.
type wireNotification struct {
	ID                int64   `json:"id"`
	Type              string  `json:"type"`
	CommentID         *int64  `json:"comment_id"`
	CommentContent    *string `json:"comment_content"`
	AuthorUsername    *string `json:"author_username"`
	AuthorDisplayName *string `json:"author_display_name"`
	ProfileUsername   *string `json:"profile_username"`
	IsRead            bool    `json:"is_read"`
	CreatedAt         apiTime `json:"created_at"`
}

func (w *wireNotification) toModel() *model.Notification {
	return &model.Notification{
		ID:                w.ID,
		Type:              model.NotificationType(w.Type),
		CommentID:         w.CommentID,
		CommentContent:    w.CommentContent,
		AuthorUsername:    w.AuthorUsername,
		AuthorDisplayName: w.AuthorDisplayName,
		ProfileUsername:   w.ProfileUsername,
		IsRead:            w.IsRead,
		CreatedAt:         w.CreatedAt.Time,
	}
}

// wireFeedback mirrors the upstream FeedbackResponse schema.
type wireFeedback struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Message   string  `json:"message"`
	Username  *string `json:"username"`
	CreatedAt apiTime `json:"created_at"`
}

func (w *wireFeedback) toModel() *model.Feedback {
	return &model.Feedback{
		ID:        w.ID,
		Name:      w.Name,
		Email:     w.Email,
		Message:   w.Message,
		Username:  w.Username,
		CreatedAt: w.CreatedAt.Time,
	}
}

// wirePublicProfile mirrors the upstream PublicProfileResponse schema.
type wirePublicProfile struct {
	Username         string           `json:"username"`
	DisplayName      *string          `json:"display_name"`
	IsAnonymous      bool             `json:"is_anonymous"`
	CommentsEnabled  bool             `json:"comments_enabled"`
	AccountCreatedAt apiTime          `json:"account_created_at"`
	Processes        []wireProcess    `json:"processes"`
	Stats            wireProfileStats `json:"stats"`
}

type wireProfileStats struct {
	TotalPublicProcesses int     `json:"total_public_processes"`
	OffersReceived       int     `json:"offers_received"`
	ActiveApplications   int     `json:"active_applications"`
	Rejected             int     `json:"rejected"`
	SuccessRate          float64 `json:"success_rate"`
	CommentCount         int     `json:"comment_count"`
}

func (w *wirePublicProfile) toModel() *model.PublicProfile {
	processes := make([]model.Process, 0, len(w.Processes))
	for i := range w.Processes {
		processes = append(processes, *w.Processes[i].toModel())
	}
	return &model.PublicProfile{
		Username:         w.Username,
		DisplayName:      w.DisplayName,
		IsAnonymous:      w.IsAnonymous,
		CommentsEnabled:  w.CommentsEnabled,
		AccountCreatedAt: w.AccountCreatedAt.Time,
		Processes:        processes,
		Stats: model.ProfileStats{
			TotalPublicProcesses: w.Stats.TotalPublicProcesses,
			OffersReceived:       w.Stats.OffersReceived,
			ActiveApplications:   w.Stats.ActiveApplications,
			Rejected:             w.Stats.Rejected,
			SuccessRate:          w.Stats.SuccessRate,
			CommentCount:         w.Stats.CommentCount,
		},
	}
}

// wirePublicAnalytics mirrors the upstream public analytics payload.
type wirePublicAnalytics struct {
	Username    string              `json:"username"`
	DisplayName *string             `json:"display_name"`
	IsAnonymous bool                `json:"is_anonymous"`
	Processes   []wireProcess       `json:"processes"`
	Details     []wireProcessDetail `json:"process_details"`
	Stats       struct {
		TotalPublicProcesses int            `json:"total_public_processes"`
		StageCounts          map[string]int `json:"stage_counts"`
	} `json:"stats"`
}

func (w *wirePublicAnalytics) toModel() *model.PublicAnalytics {
	processes := make([]model.Process, 0, len(w.Processes))
	for i := range w.Processes {
		processes = append(processes, *w.Processes[i].toModel())
	}
	details := make([]model.ProcessDetail, 0, len(w.Details))
	for i := range w.Details {
		details = append(details, *w.Details[i].toModel())
	}
	counts := make(map[model.StageName]int, len(w.Stats.StageCounts))
	for name, count := range w.Stats.StageCounts {
		counts[model.StageName(name)] = count
	}
	return &model.PublicAnalytics{
		Username:    w.Username,
		DisplayName: w.DisplayName,
		IsAnonymous: w.IsAnonymous,
		Processes:   processes,
		Details:     details,
		Stats: model.AnalyticsStats{
			TotalPublicProcesses: w.Stats.TotalPublicProcesses,
			StageCounts:          counts,
		},
	}
}
