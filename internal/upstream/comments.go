package upstream

import (
	"context"
	"fmt"
	"net/url"

	"github.com/offertrack/track-ui-api/internal/core"
	"github.com/offertrack/track-ui-api/internal/domain/model"
)

// CommentClient implements core.CommentRepository against the tracker API.
type CommentClient struct {
	c *Client
}

// NewCommentClient creates a CommentClient on the shared client.
func NewCommentClient(c *Client) *CommentClient {
	return &CommentClient{c: c}
}

var _ core.CommentRepository = (*CommentClient)(nil)

func commentsPath(username string) string {
	return "/api/profiles/" + url.PathEscape(username) + "/comments"
}

func commentPath(ref core.CommentRef) string {
	return fmt.Sprintf("%s/%d", commentsPath(ref.Username), ref.CommentID)
}

// List returns a profile's top-level comments with nested replies.
func (cc *CommentClient) List(ctx context.Context, username string) ([]*model.ProfileComment, error) {
	var wires []wireComment
	if err := cc.c.get(ctx, commentsPath(username), &wires); err != nil {
		return nil, fmt.Errorf("list comments for %q: %w", username, err)
	}
	out := make([]*model.ProfileComment, 0, len(wires))
	for i := range wires {
		out = append(out, wires[i].toModel(username))
	}
	return out, nil
}

// Create posts a comment or question on a profile.
func (cc *CommentClient) Create(ctx context.Context, username string, req *model.CreateCommentRequest) (*model.ProfileComment, error) {
	var wire wireComment
	if err := cc.c.post(ctx, commentsPath(username), req, &wire); err != nil {
		return nil, fmt.Errorf("create comment on %q: %w", username, err)
	}
	return wire.toModel(username), nil
}

// Reply posts a reply under an existing comment.
func (cc *CommentClient) Reply(ctx context.Context, ref core.CommentRef, req *model.CreateCommentRequest) (*model.ProfileComment, error) {
	var wire wireComment
	if err := cc.c.post(ctx, commentPath(ref)+"/reply", req, &wire); err != nil {
		return nil, fmt.Errorf("reply to comment %d: %w", ref.CommentID, err)
	}
	return wire.toModel(ref.Username), nil
}

// Update edits a comment's content. Authors can only edit their own comments.
func (cc *CommentClient) Update(ctx context.Context, ref core.CommentRef, req *model.UpdateCommentRequest) (*model.ProfileComment, error) {
	var wire wireComment
	if err := cc.c.patch(ctx, commentPath(ref), req, &wire); err != nil {
		return nil, fmt.Errorf("update comment %d: %w", ref.CommentID, err)
	}
	return wire.toModel(ref.Username), nil
}

// Delete removes a comment.
func (cc *CommentClient) Delete(ctx context.Context, ref core.CommentRef) error {
	if err := cc.c.delete(ctx, commentPath(ref), nil); err != nil {
		return fmt.Errorf("delete comment %d: %w", ref.CommentID, err)
	}
	return nil
}

// ToggleUpvote adds or removes the acting user's upvote.
func (cc *CommentClient) ToggleUpvote(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
	var wire wireComment
	if err := cc.c.post(ctx, commentPath(ref)+"/upvote", nil, &wire); err != nil {
		return nil, fmt.Errorf("toggle upvote on comment %d: %w", ref.CommentID, err)
	}
	return wire.toModel(ref.Username), nil
}

// MarkAnswered flags a question as answered by the profile owner.
func (cc *CommentClient) MarkAnswered(ctx context.Context, ref core.CommentRef) (*model.ProfileComment, error) {
	var wire wireComment
	if err := cc.c.patch(ctx, commentPath(ref)+"/answer", nil, &wire); err != nil {
		return nil, fmt.Errorf("mark comment %d answered: %w", ref.CommentID, err)
	}
	return wire.toModel(ref.Username), nil
}
