package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxCommentLen = 2000

// ProfileComment is a comment or question left on a public profile.
// Replies are nested one level deep via ParentID.
type ProfileComment struct {
	ID                int64            `json:"id"`
	ProfileUsername   string           `json:"profile_username"`
	AuthorUsername    *string          `json:"author_username,omitempty"`
	AuthorDisplayName *string          `json:"author_display_name,omitempty"`
	ParentID          *int64           `json:"parent_comment_id,omitempty"`
	Content           string           `json:"content"`
	IsQuestion        bool             `json:"is_question"`
	IsAnswered        bool             `json:"is_answered"`
	Upvotes           int              `json:"upvotes"`
	UserHasUpvoted    bool             `json:"user_has_upvoted"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Replies           []ProfileComment `json:"replies,omitempty"`
}

// CreateCommentRequest represents parameters to post a profile comment
// or a reply.
type CreateCommentRequest struct {
	Content    string `json:"content"`
	IsQuestion bool   `json:"is_question"`
	Anonymous  bool   `json:"anonymous"`
}

// UpdateCommentRequest edits an existing comment's content.
type UpdateCommentRequest struct {
	Content string `json:"content"`
}

// Validate validates CreateCommentRequest.
func (r *CreateCommentRequest) Validate() error {
	content := strings.TrimSpace(r.Content)
	if content == "" {
		return errors.New("content is required and cannot be empty")
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return errors.New("content cannot exceed 2000 characters")
	}
	r.Content = content
	return nil
}

// Validate validates UpdateCommentRequest.
func (r *UpdateCommentRequest) Validate() error {
	content := strings.TrimSpace(r.Content)
	if content == "" {
		return errors.New("content cannot be empty")
	}
	if utf8.RuneCountInString(content) > maxCommentLen {
		return errors.New("content cannot exceed 2000 characters")
	}
	r.Content = content
	return nil
}
