package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-sitecms/internal/identity"
)

var (
	ErrLocaleCodeRequired    = errors.New("content: locale code is required")
	ErrLocaleDisplayRequired = errors.New("content: locale display name is required")
	ErrDefaultLocaleMissing  = errors.New("content: no default locale configured")
	ErrDefaultLocaleDisabled = errors.New("content: default locale cannot be disabled")
	ErrUnknownLocale         = errors.New("content: unknown locale")
)

// NotFoundError represents missing records from repository lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// LocaleRepository abstracts storage operations for locales.
type LocaleRepository interface {
	GetByCode(ctx context.Context, code string) (*Locale, error)
	List(ctx context.Context) ([]*Locale, error)
	Upsert(ctx context.Context, locale *Locale) (*Locale, error)
	// SetDefault flags the given code as default and clears the previous
	// default atomically.
	SetDefault(ctx context.Context, code string) error
	SetEnabled(ctx context.Context, code string, enabled bool) error
}

// Service exposes locale management use-cases.
type Service interface {
	Get(ctx context.Context, code string) (*Locale, error)
	List(ctx context.Context) ([]*Locale, error)
	EnabledLocales(ctx context.Context) ([]*Locale, error)
	DefaultLocale(ctx context.Context) (*Locale, error)
	Register(ctx context.Context, req RegisterLocaleRequest) (*Locale, error)
	SetDefault(ctx context.Context, code string) error
	SetEnabled(ctx context.Context, code string, enabled bool) error
}

// RegisterLocaleRequest captures the payload required to add or update a locale.
type RegisterLocaleRequest struct {
	Code      string
	Display   string
	Flag      *string
	IsDefault bool
	IsEnabled bool
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = clock
	}
}

type service struct {
	locales LocaleRepository
	now     func() time.Time
}

// NewService constructs a locale service with the required dependencies.
func NewService(locales LocaleRepository, opts ...ServiceOption) Service {
	s := &service{
		locales: locales,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Get(ctx context.Context, code string) (*Locale, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, ErrLocaleCodeRequired
	}
	return s.locales.GetByCode(ctx, normalized)
}

func (s *service) List(ctx context.Context) ([]*Locale, error) {
	return s.locales.List(ctx)
}

func (s *service) EnabledLocales(ctx context.Context) ([]*Locale, error) {
	all, err := s.locales.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*Locale, 0, len(all))
	for _, locale := range all {
		if locale.IsEnabled {
			out = append(out, locale)
		}
	}
	return out, nil
}

func (s *service) DefaultLocale(ctx context.Context) (*Locale, error) {
	all, err := s.locales.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, locale := range all {
		if locale.IsDefault {
			return locale, nil
		}
	}
	return nil, ErrDefaultLocaleMissing
}

// Register inserts or updates a locale. The ID is derived from the code so
// repeated seeding converges on the same row.
func (s *service) Register(ctx context.Context, req RegisterLocaleRequest) (*Locale, error) {
	code := NormalizeCode(req.Code)
	if code == "" {
		return nil, ErrLocaleCodeRequired
	}
	if strings.TrimSpace(req.Display) == "" {
		return nil, ErrLocaleDisplayRequired
	}

	now := s.now().UTC()
	locale := &Locale{
		ID:        identity.LocaleUUID(code),
		Code:      code,
		Display:   strings.TrimSpace(req.Display),
		Flag:      req.Flag,
		IsDefault: false,
		IsEnabled: req.IsEnabled,
		CreatedAt: now,
		UpdatedAt: now,
	}
	stored, err := s.locales.Upsert(ctx, locale)
	if err != nil {
		return nil, err
	}
	if req.IsDefault && !stored.IsDefault {
		if err := s.locales.SetDefault(ctx, code); err != nil {
			return nil, err
		}
		return s.locales.GetByCode(ctx, code)
	}
	return stored, nil
}

func (s *service) SetDefault(ctx context.Context, code string) error {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return ErrLocaleCodeRequired
	}
	locale, err := s.locales.GetByCode(ctx, normalized)
	if err != nil {
		return err
	}
	if !locale.IsEnabled {
		return ErrDefaultLocaleDisabled
	}
	return s.locales.SetDefault(ctx, normalized)
}

func (s *service) SetEnabled(ctx context.Context, code string, enabled bool) error {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return ErrLocaleCodeRequired
	}
	locale, err := s.locales.GetByCode(ctx, normalized)
	if err != nil {
		return err
	}
	if locale.IsDefault && !enabled {
		return ErrDefaultLocaleDisabled
	}
	return s.locales.SetEnabled(ctx, normalized, enabled)
}

// NormalizeCode lowercases and trims a locale code.
func NormalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// SeedLocale describes one locale to provision at startup.
type SeedLocale struct {
	Code      string
	Display   string
	Flag      string
	IsDefault bool
}

// Seed registers the given locales, enabled, in order. The first entry
// flagged default wins.
func Seed(ctx context.Context, svc Service, seeds []SeedLocale) error {
	for _, seed := range seeds {
		var flag *string
		if seed.Flag != "" {
			value := seed.Flag
			flag = &value
		}
		if _, err := svc.Register(ctx, RegisterLocaleRequest{
			Code:      seed.Code,
			Display:   seed.Display,
			Flag:      flag,
			IsDefault: seed.IsDefault,
			IsEnabled: true,
		}); err != nil {
			return fmt.Errorf("content: seed locale %q: %w", seed.Code, err)
		}
	}
	return nil
}
