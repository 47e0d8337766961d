package blogs

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/content"
	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// Service exposes blog post management use-cases.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*BlogPost, error)
	Get(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	List(ctx context.Context) ([]*BlogPost, error)
	Update(ctx context.Context, req UpdateRequest) (*BlogPost, error)
	Publish(ctx context.Context, id uuid.UUID, at *time.Time) (*BlogPost, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateRequest captures the information required to create a blog post.
// When Slug is empty one is derived from Title and de-duplicated against
// the store. A non-nil ID pins the record identity, which importers use to
// keep re-imported documents addressable; a nil ID draws from the service's
// generator.
type CreateRequest struct {
	ID         uuid.UUID
	Title      string
	Slug       string
	Status     string
	CoverImage string
	Tags       []string
	Author     string
	EN         *content.LocalizedContent
	AR         *content.LocalizedContent
}

// Validate enforces request-level constraints before any storage work.
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, content.TitleMaxLen)),
		validation.Field(&r.Status, validation.In("", string(domain.StatusDraft), string(domain.StatusPublished))),
	)
}

// UpdateRequest carries a full replacement payload for an existing post.
// Nil locale payloads leave the stored content untouched.
type UpdateRequest struct {
	ID         uuid.UUID
	Slug       *string
	Status     *string
	CoverImage *string
	Tags       []string
	Author     *string
	EN         *content.LocalizedContent
	AR         *content.LocalizedContent
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required),
	)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type IDGenerator func() uuid.UUID

func WithIDGenerator(generator IDGenerator) ServiceOption {
	return func(s *service) {
		if generator != nil {
			s.id = generator
		}
	}
}

// WithLogger overrides the logger used for service diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// service implements Service.
type service struct {
	posts  Repository
	now    func() time.Time
	id     IDGenerator
	logger interfaces.Logger
}

// NewService constructs a blog service with the required dependencies.
func NewService(posts Repository, opts ...ServiceOption) Service {
	s := &service{
		posts:  posts,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		existing, err := s.posts.ListSlugs(ctx)
		if err != nil {
			return nil, err
		}
		slug = content.GenerateSlug(title, existing)
	}

	id := req.ID
	if id == uuid.Nil {
		id = s.id()
	}

	now := s.now().UTC()
	record := &BlogPost{
		ID:         id,
		Slug:       slug,
		Status:     domain.NormalizeStatus(req.Status),
		CoverImage: strings.TrimSpace(req.CoverImage),
		Tags:       NormalizeTags(req.Tags),
		Author:     strings.TrimSpace(req.Author),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if req.EN != nil {
		record.EN = *req.EN
	} else {
		record.EN = content.PlaceholderFlat(title, "Start writing...")
	}
	if req.AR != nil {
		record.AR = *req.AR
	} else {
		record.AR = content.PlaceholderFlat(title, "ابدأ الكتابة...")
	}

	if record.Status == domain.StatusPublished {
		at := now
		record.PublishedAt = &at
	}

	if err := Validate(record); err != nil {
		return nil, err
	}

	created, err := s.posts.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("blog post created", "id", created.ID, "slug", created.Slug)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.posts.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	return s.posts.GetBySlug(ctx, strings.TrimSpace(slug))
}

func (s *service) List(ctx context.Context) ([]*BlogPost, error) {
	return s.posts.List(ctx)
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.posts.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Slug != nil {
		record.Slug = strings.TrimSpace(*req.Slug)
	}
	if req.Status != nil {
		record.Status = domain.NormalizeStatus(*req.Status)
	}
	if req.CoverImage != nil {
		record.CoverImage = strings.TrimSpace(*req.CoverImage)
	}
	if req.Tags != nil {
		record.Tags = NormalizeTags(req.Tags)
	}
	if req.Author != nil {
		record.Author = strings.TrimSpace(*req.Author)
	}
	if req.EN != nil {
		record.EN = *req.EN
	}
	if req.AR != nil {
		record.AR = *req.AR
	}

	if record.Status == domain.StatusPublished && record.PublishedAt == nil {
		at := s.now().UTC()
		record.PublishedAt = &at
	}
	record.UpdatedAt = s.now().UTC()

	if err := Validate(record); err != nil {
		return nil, err
	}

	return s.posts.Update(ctx, record)
}

// Publish transitions a post to the published status. A nil timestamp means
// now; an existing PublishedAt is preserved so re-publishing keeps the
// original date.
func (s *service) Publish(ctx context.Context, id uuid.UUID, at *time.Time) (*BlogPost, error) {
	record, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Status = domain.StatusPublished
	if at != nil {
		stamped := at.UTC()
		record.PublishedAt = &stamped
	} else if record.PublishedAt == nil {
		stamped := s.now().UTC()
		record.PublishedAt = &stamped
	}
	record.UpdatedAt = s.now().UTC()

	if err := Validate(record); err != nil {
		return nil, err
	}

	updated, err := s.posts.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("blog post published", "id", updated.ID, "slug", updated.Slug)
	return updated, nil
}

// Unpublish reverts a post to draft. The publication date is kept so a later
// re-publish does not rewrite history.
func (s *service) Unpublish(ctx context.Context, id uuid.UUID) (*BlogPost, error) {
	record, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Status = domain.StatusDraft
	record.UpdatedAt = s.now().UTC()

	updated, err := s.posts.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("blog post unpublished", "id", updated.ID, "slug", updated.Slug)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	return s.posts.Delete(ctx, id)
}
