package pages

import (
	"context"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/goliatone/go-pagebuilder/internal/content"
	"github.com/goliatone/go-pagebuilder/internal/domain"
	"github.com/goliatone/go-pagebuilder/internal/logging"
	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

// Service exposes page management use-cases.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Page, error)
	Get(ctx context.Context, id uuid.UUID) (*Page, error)
	GetByPath(ctx context.Context, path string) (*Page, error)
	List(ctx context.Context) ([]*Page, error)
	Update(ctx context.Context, req UpdateRequest) (*Page, error)
	Publish(ctx context.Context, id uuid.UUID) (*Page, error)
	Unpublish(ctx context.Context, id uuid.UUID) (*Page, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateRequest captures the information required to create a page. When
// Path is empty one is derived from Title and de-duplicated against the
// store.
type CreateRequest struct {
	Title    string
	Path     string
	Template string
	Status   string
	EN       *content.LocaleContent
	AR       *content.LocaleContent
}

// Validate enforces request-level constraints before any storage work.
func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, content.TitleMaxLen)),
		validation.Field(&r.Status, validation.In("", string(domain.StatusDraft), string(domain.StatusPublished))),
	)
}

// UpdateRequest carries a replacement payload for an existing page. Nil
// fields leave the stored value untouched.
type UpdateRequest struct {
	ID       uuid.UUID
	Path     *string
	Template *string
	Status   *string
	EN       *content.LocaleContent
	AR       *content.LocaleContent
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
	pages  Repository
	now    func() time.Time
	id     IDGenerator
	logger interfaces.Logger
}

// NewService constructs a page service with the required dependencies.
func NewService(pages Repository, opts ...ServiceOption) Service {
	s := &service{
		pages:  pages,
		now:    time.Now,
		id:     uuid.New,
		logger: logging.NoOp(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Page, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	path := strings.TrimSpace(req.Path)
	if path == "" {
		existing, err := s.pages.ListPaths(ctx)
		if err != nil {
			return nil, err
		}
		path = generatePath(title, existing)
	}

	template := domain.Template(strings.TrimSpace(req.Template))
	if template == "" {
		template = domain.TemplateDefault
	}

	now := s.now().UTC()
	record := &Page{
		ID:        s.id(),
		Path:      path,
		Template:  template,
		Status:    domain.NormalizeStatus(req.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if req.EN != nil {
		record.EN = *req.EN
	} else {
		record.EN = content.PlaceholderGrid(title, "Start building...")
	}
	if req.AR != nil {
		record.AR = *req.AR
	} else {
		record.AR = content.PlaceholderGrid(title, "ابدأ البناء...")
	}

	if err := Validate(record); err != nil {
		return nil, err
	}

	created, err := s.pages.Create(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("page created", "id", created.ID, "path", created.Path)
	return created, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Page, error) {
	if id == uuid.Nil {
		return nil, ErrIDRequired
	}
	return s.pages.GetByID(ctx, id)
}

func (s *service) GetByPath(ctx context.Context, path string) (*Page, error) {
	return s.pages.GetByPath(ctx, strings.TrimSpace(path))
}

func (s *service) List(ctx context.Context) ([]*Page, error) {
	return s.pages.List(ctx)
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*Page, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.pages.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Path != nil {
		record.Path = strings.TrimSpace(*req.Path)
	}
	if req.Template != nil {
		record.Template = domain.Template(strings.TrimSpace(*req.Template))
	}
	if req.Status != nil {
		record.Status = domain.NormalizeStatus(*req.Status)
	}
	if req.EN != nil {
		record.EN = *req.EN
	}
	if req.AR != nil {
		record.AR = *req.AR
	}
	record.UpdatedAt = s.now().UTC()

	if err := Validate(record); err != nil {
		return nil, err
	}

	return s.pages.Update(ctx, record)
}

func (s *service) Publish(ctx context.Context, id uuid.UUID) (*Page, error) {
	record, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Status = domain.StatusPublished
	record.UpdatedAt = s.now().UTC()

	if err := Validate(record); err != nil {
		return nil, err
	}

	updated, err := s.pages.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("page published", "id", updated.ID, "path", updated.Path)
	return updated, nil
}

func (s *service) Unpublish(ctx context.Context, id uuid.UUID) (*Page, error) {
	record, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Status = domain.StatusDraft
	record.UpdatedAt = s.now().UTC()

	updated, err := s.pages.Update(ctx, record)
	if err != nil {
		return nil, err
	}

	s.logger.Info("page unpublished", "id", updated.ID, "path", updated.Path)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrIDRequired
	}
	return s.pages.Delete(ctx, id)
}

// generatePath derives a rooted page path from a title. The home page title
// maps to "/"; everything else is slugified and prefixed. Collisions pick up
// numeric suffixes the same way blog slugs do.
func generatePath(title string, existing map[string]struct{}) string {
	slug := content.GenerateSlug(title, nil)
	path := "/" + slug
	if _, taken := existing[path]; !taken {
		return path
	}
	for n := 2; ; n++ {
		candidate := path + "-" + strconv.Itoa(n)
		if _, taken := existing[candidate]; !taken {
			return candidate
		}
	}
}
