package model

import "time"

// NotificationType categorizes a notification event.
type NotificationType string

const (
	NotificationComment NotificationType = "comment"
	NotificationReply   NotificationType = "reply"
	NotificationAnswer  NotificationType = "answer"
	NotificationUpvote  NotificationType = "upvote"
)

// Valid reports whether the notification type is supported.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationComment, NotificationReply, NotificationAnswer, NotificationUpvote:
		return true
	default:
		return false
	}
}

// Notification is a social event addressed to a user, generated upstream
// when someone interacts with their profile.
type Notification struct {
	ID                int64            `json:"id"`
	Type              NotificationType `json:"type"`
	CommentID         *int64           `json:"comment_id,omitempty"`
	CommentContent    *string          `json:"comment_content,omitempty"`
	AuthorUsername    *string          `json:"author_username,omitempty"`
	AuthorDisplayName *string          `json:"author_display_name,omitempty"`
	ProfileUsername   *string          `json:"profile_username,omitempty"`
	IsRead            bool             `json:"is_read"`
	CreatedAt         time.Time        `json:"created_at"`
}

// UnreadCount is the shape returned by the unread-count endpoint.
type UnreadCount struct {
	Count int `json:"count"`
}
