package services

import (
	"context"
	"time"

	"github.com/apopescu/daily-journal/internal/models"
)

// postDateFormat is the display string stamped on a post at creation.
// Posts store this string, not a timestamp; the owner listing sorts it
// under the store's collation.
const postDateFormat = "January 2, 2006"

// PostStore is the document-store surface for journal entries.
// FindByOwner returns the owner's posts ordered by the date string,
// descending, under the store's configured collation.
type PostStore interface {
	Insert(ctx context.Context, post *models.Post) (*models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	FindByOwner(ctx context.Context, ownerID string) ([]models.Post, error)
	Delete(ctx context.Context, id string) error
}

// PostService is CRUD over journal entries. Listing is owner-scoped;
// GetByID and Delete are not (any caller may fetch or delete any post by
// id, which matches the app's trust model).
type PostService struct {
	posts PostStore
	now   func() time.Time
}

func NewPostService(posts PostStore) *PostService {
	return &PostService{posts: posts, now: time.Now}
}

// Create stamps the owner id and display date and persists the entry.
func (s *PostService) Create(ctx context.Context, ownerID, title, content string) (*models.Post, error) {
	return s.posts.Insert(ctx, &models.Post{
		UserID:  ownerID,
		Date:    s.now().Format(postDateFormat),
		Title:   title,
		Content: content,
	})
}

// ListByOwner returns only posts owned by ownerID, newest first. Each call
// opens a fresh store cursor, so the sequence is finite and restartable.
func (s *PostService) ListByOwner(ctx context.Context, ownerID string) ([]models.Post, error) {
	return s.posts.FindByOwner(ctx, ownerID)
}

// GetByID fetches any post by id; ErrNotFound when absent.
func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// Delete removes a post by id with no ownership check.
func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}
