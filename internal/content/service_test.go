package content

import (
	"context"
	"errors"
	"testing"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	return NewService(NewMemoryLocaleRepository())
}

func seedTestLocales(t *testing.T, svc Service) {
	t.Helper()
	err := Seed(context.Background(), svc, []SeedLocale{
		{Code: "en", Display: "English", Flag: "🇬🇧", IsDefault: true},
		{Code: "de", Display: "Deutsch", Flag: "🇩🇪"},
		{Code: "fr", Display: "Français", Flag: "🇫🇷"},
	})
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
}

func TestRegisterIsDeterministicAndIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterLocaleRequest{Code: " EN ", Display: "English", IsEnabled: true})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if first.Code != "en" {
		t.Errorf("code = %q, want normalized en", first.Code)
	}

	second, err := svc.Register(ctx, RegisterLocaleRequest{Code: "en", Display: "English (UK)", IsEnabled: true})
	if err != nil {
		t.Fatalf("Register() second error = %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("re-register changed id: %s vs %s", second.ID, first.ID)
	}
	if second.Display != "English (UK)" {
		t.Errorf("re-register did not update display: %q", second.Display)
	}
}

func TestDefaultLocale(t *testing.T) {
	svc := newTestService(t)
	seedTestLocales(t, svc)

	def, err := svc.DefaultLocale(context.Background())
	if err != nil {
		t.Fatalf("DefaultLocale() error = %v", err)
	}
	if def.Code != "en" {
		t.Errorf("default = %q, want en", def.Code)
	}
}

func TestSetDefaultClearsPrevious(t *testing.T) {
	svc := newTestService(t)
	seedTestLocales(t, svc)
	ctx := context.Background()

	if err := svc.SetDefault(ctx, "de"); err != nil {
		t.Fatalf("SetDefault() error = %v", err)
	}
	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	defaults := 0
	for _, locale := range all {
		if locale.IsDefault {
			defaults++
			if locale.Code != "de" {
				t.Errorf("default = %q, want de", locale.Code)
			}
		}
	}
	if defaults != 1 {
		t.Errorf("default count = %d, want exactly 1", defaults)
	}
}

func TestEnabledLocalesFiltersDisabled(t *testing.T) {
	svc := newTestService(t)
	seedTestLocales(t, svc)
	ctx := context.Background()

	if err := svc.SetEnabled(ctx, "fr", false); err != nil {
		t.Fatalf("SetEnabled() error = %v", err)
	}
	enabled, err := svc.EnabledLocales(ctx)
	if err != nil {
		t.Fatalf("EnabledLocales() error = %v", err)
	}
	if len(enabled) != 2 {
		t.Fatalf("enabled count = %d, want 2", len(enabled))
	}
	for _, locale := range enabled {
		if locale.Code == "fr" {
			t.Error("disabled locale returned by EnabledLocales")
		}
	}
}

func TestCannotDisableDefaultLocale(t *testing.T) {
	svc := newTestService(t)
	seedTestLocales(t, svc)

	err := svc.SetEnabled(context.Background(), "en", false)
	if !errors.Is(err, ErrDefaultLocaleDisabled) {
		t.Fatalf("expected ErrDefaultLocaleDisabled, got %v", err)
	}
}

func TestCannotDefaultDisabledLocale(t *testing.T) {
	svc := newTestService(t)
	seedTestLocales(t, svc)
	ctx := context.Background()

	if err := svc.SetEnabled(ctx, "fr", false); err != nil {
		t.Fatalf("SetEnabled() error = %v", err)
	}
	err := svc.SetDefault(ctx, "fr")
	if !errors.Is(err, ErrDefaultLocaleDisabled) {
		t.Fatalf("expected ErrDefaultLocaleDisabled, got %v", err)
	}
}

func TestGetUnknownLocale(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), "xx")
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}
