package gologger

import (
	"testing"

	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

var _ interfaces.LoggerProvider = (*Provider)(nil)

func TestNewProviderDefaults(t *testing.T) {
	provider, err := NewProvider(Config{})
	if err != nil {
		t.Fatalf("NewProvider() error = %v", err)
	}

	logger := provider.GetLogger("sitecms.pages")
	if logger == nil {
		t.Fatal("GetLogger() = nil")
	}
	fielder, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		t.Fatalf("GetLogger() = %T, want interfaces.FieldsLogger", logger)
	}
	scoped := fielder.WithFields(map[string]any{"slug": "home"})
	if scoped == nil {
		t.Fatal("WithFields() = nil")
	}
	scoped.Debug("provider smoke", "locale", "en")
}

func TestNewProviderRejectsUnknownFormat(t *testing.T) {
	if _, err := NewProvider(Config{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNilProviderFallsBackToNoOp(t *testing.T) {
	var provider *Provider
	logger := provider.GetLogger("sitecms")
	if logger == nil {
		t.Fatal("nil provider must still hand out a logger")
	}
	logger.Info("ignored")
}
