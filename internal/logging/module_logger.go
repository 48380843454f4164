package logging

import (
	"context"

	"github.com/goliatone/go-sitecms/pkg/interfaces"
)

const (
	rootModule     = "sitecms"
	pagesModule    = "sitecms.pages"
	renderModule   = "sitecms.render"
	insightsModule = "sitecms.insights"
	partnersModule = "sitecms.partners"
	adminModule    = "sitecms.admin"
	localesModule  = "sitecms.locales"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// PagesLogger returns the logger namespace reserved for page resolution.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// RenderLogger returns the logger namespace reserved for block rendering.
func RenderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, renderModule)
}

// InsightsLogger returns the logger namespace reserved for the insights pipeline.
func InsightsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, insightsModule)
}

// PartnersLogger returns the logger namespace reserved for the partner directory.
func PartnersLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, partnersModule)
}

// AdminLogger returns the logger namespace reserved for admin services.
func AdminLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, adminModule)
}

// LocalesLogger returns the logger namespace reserved for locale management.
func LocalesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, localesModule)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
