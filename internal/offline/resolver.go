package offline

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/formbridge/internal/ctxlog"
	"github.com/vk/formbridge/internal/storage"
)

// Mode is the client's execution mode.
type Mode string

const (
	// ModeConnected routes every write through the connected store.
	ModeConnected Mode = "connected"
	// ModeDisconnected routes writes through the local store, subject to
	// the capability check.
	ModeDisconnected Mode = "disconnected"
)

// Flag is the tri-state offline capability of one entity type.
type Flag int

const (
	FlagUnknown Flag = iota
	FlagAvailable
	FlagUnavailable
)

// String returns a human-readable flag name.
func (f Flag) String() string {
	switch f {
	case FlagAvailable:
		return "available"
	case FlagUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Checker is the platform's disconnected-availability check. An error means
// the answer could not be determined.
type Checker interface {
	OfflineEnabled(ctx context.Context, entityType string) (bool, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, entityType string) (bool, error)

// OfflineEnabled implements Checker.
func (fn CheckerFunc) OfflineEnabled(ctx context.Context, entityType string) (bool, error) {
	return fn(ctx, entityType)
}

var (
	// ErrEntityTypeUnknown means a disconnected write was attempted before
	// the handle's referenced entity type was known.
	ErrEntityTypeUnknown = errors.New("entity type unknown")
	// ErrCapabilityUndetermined means the availability check failed to
	// produce an answer.
	ErrCapabilityUndetermined = errors.New("offline capability undetermined")
	// ErrUnavailableOffline means the entity type cannot be written while
	// disconnected.
	ErrUnavailableOffline = errors.New("entity type unavailable offline")
)

// Resolver selects the storage path for one lookup field's writes. It is
// created per field handle and memoizes the capability flag: once
// determined, the platform is never queried again through this resolver.
type Resolver struct {
	mode         Mode
	connected    storage.Store
	disconnected storage.Store
	checker      Checker
	flag         Flag
}

// NewResolver builds a resolver routing between the two stores under the
// given mode.
func NewResolver(mode Mode, connected, disconnected storage.Store, checker Checker) *Resolver {
	return &Resolver{
		mode:         mode,
		connected:    connected,
		disconnected: disconnected,
		checker:      checker,
	}
}

// Flag returns the current capability flag, for inspection.
func (r *Resolver) Flag() Flag {
	return r.flag
}

// Select returns the store a write for entityType must use.
//
// In connected mode the connected store is returned unconditionally and the
// flag is never consulted. In disconnected mode the flag is determined on
// first use by querying the checker exactly once; the determined flag then
// decides every subsequent call without re-querying.
func (r *Resolver) Select(ctx context.Context, entityType string) (storage.Store, error) {
	if r.mode == ModeConnected {
		return r.connected, nil
	}

	if entityType == "" {
		return nil, ErrEntityTypeUnknown
	}

	if r.flag == FlagUnknown {
		enabled, err := r.checker.OfflineEnabled(ctx, entityType)
		if err != nil {
			// The flag stays unknown: an undetermined answer must not pin
			// the handle either way.
			return nil, fmt.Errorf("%w for %q: %v", ErrCapabilityUndetermined, entityType, err)
		}
		if enabled {
			r.flag = FlagAvailable
		} else {
			r.flag = FlagUnavailable
		}
		ctxlog.FromContext(ctx).Debug("Offline capability determined.", "entityType", entityType, "flag", r.flag.String())
	}

	if r.flag == FlagUnavailable {
		return nil, fmt.Errorf("%w: %q", ErrUnavailableOffline, entityType)
	}
	return r.disconnected, nil
}

// StaticChecker answers the availability check from a fixed set of entity
// types, typically sourced from the client configuration.
type StaticChecker struct {
	enabled map[string]struct{}
}

// NewStaticChecker builds a checker that reports true exactly for the given
// entity types.
func NewStaticChecker(entityTypes []string) *StaticChecker {
	enabled := make(map[string]struct{}, len(entityTypes))
	for _, t := range entityTypes {
		enabled[t] = struct{}{}
	}
	return &StaticChecker{enabled: enabled}
}

// OfflineEnabled implements Checker.
func (c *StaticChecker) OfflineEnabled(ctx context.Context, entityType string) (bool, error) {
	_, ok := c.enabled[entityType]
	return ok, nil
}
