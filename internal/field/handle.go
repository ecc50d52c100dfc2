package field

import (
	"context"
	"fmt"

	"github.com/vk/formbridge/internal/form"
	"github.com/vk/formbridge/internal/offline"
	"github.com/vk/formbridge/internal/params"
	"github.com/vk/formbridge/internal/storage"
)

// AttributeNotFoundError reports that the live form has no attribute (or
// control) under the handle's name.
type AttributeNotFoundError struct {
	Field string
	What  string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("form has no %s named %q", e.What, e.Field)
}

// Handle is the one process-wide binding for a named form field. Obtain
// handles from a Cache, never construct them directly.
type Handle struct {
	name      string
	attribute *memo[form.Attribute]
	control   *memo[form.Control]
}

func newHandle(name string, f form.Form) *Handle {
	return &Handle{
		name: name,
		attribute: newMemo(func() (form.Attribute, error) {
			attr, ok := f.GetAttribute(name)
			if !ok {
				return nil, &AttributeNotFoundError{Field: name, What: "attribute"}
			}
			return attr, nil
		}),
		control: newMemo(func() (form.Control, error) {
			ctl, ok := f.GetControl(name)
			if !ok {
				return nil, &AttributeNotFoundError{Field: name, What: "control"}
			}
			return ctl, nil
		}),
	}
}

// Name returns the field name the handle was created for.
func (h *Handle) Name() string {
	return h.name
}

// Value returns the field's current value.
func (h *Handle) Value() (any, error) {
	attr, err := h.attribute.get()
	if err != nil {
		return nil, err
	}
	return attr.Value(), nil
}

// SetValue replaces the field's value.
func (h *Handle) SetValue(v any) error {
	attr, err := h.attribute.get()
	if err != nil {
		return err
	}
	attr.SetValue(v)
	return nil
}

// OnChange registers a change listener. Listeners registered through any
// reference to the same handle all fire, since the handle is a singleton
// per name.
func (h *Handle) OnChange(fn func(v any)) error {
	attr, err := h.attribute.get()
	if err != nil {
		return err
	}
	attr.OnChange(fn)
	return nil
}

// SetRequiredLevel changes the field's requirement level.
func (h *Handle) SetRequiredLevel(level form.RequiredLevel) error {
	attr, err := h.attribute.get()
	if err != nil {
		return err
	}
	attr.SetRequiredLevel(level)
	return nil
}

// SetValid marks the field valid or invalid.
func (h *Handle) SetValid(valid bool, message string) error {
	attr, err := h.attribute.get()
	if err != nil {
		return err
	}
	attr.SetValid(valid, message)
	return nil
}

// SetVisible shows or hides the field's control.
func (h *Handle) SetVisible(visible bool) error {
	ctl, err := h.control.get()
	if err != nil {
		return err
	}
	ctl.SetVisible(visible)
	return nil
}

// SetDisabled enables or disables the field's control.
func (h *Handle) SetDisabled(disabled bool) error {
	ctl, err := h.control.get()
	if err != nil {
		return err
	}
	ctl.SetDisabled(disabled)
	return nil
}

// Notify attaches a notification message to the field's control and reports
// whether the platform accepted it.
func (h *Handle) Notify(message, id string) (bool, error) {
	ctl, err := h.control.get()
	if err != nil {
		return false, err
	}
	return ctl.SetNotification(message, id), nil
}

// ClearNotification removes the notification registered under id.
func (h *Handle) ClearNotification(id string) error {
	ctl, err := h.control.get()
	if err != nil {
		return err
	}
	ctl.ClearNotification(id)
	return nil
}

// LookupHandle is a handle whose value references a record. It adds the
// record read/write path, routed through a per-handle offline capability
// resolver.
type LookupHandle struct {
	*Handle
	resolver *offline.Resolver
}

// Ref returns the record the field currently references. A nil or
// non-reference value yields the zero ref.
func (h *LookupHandle) Ref() (params.EntityRef, error) {
	v, err := h.Value()
	if err != nil {
		return params.EntityRef{}, err
	}
	switch ref := v.(type) {
	case params.EntityRef:
		return ref, nil
	case *params.EntityRef:
		if ref != nil {
			return *ref, nil
		}
	}
	return params.EntityRef{}, nil
}

// CapabilityFlag exposes the handle's current offline capability flag.
func (h *LookupHandle) CapabilityFlag() offline.Flag {
	return h.resolver.Flag()
}

// Retrieve reads the referenced record through the store the capability
// resolver selects.
func (h *LookupHandle) Retrieve(ctx context.Context, query string) (map[string]any, error) {
	record, err := h.withStore(ctx, func(ctx context.Context, s storage.Store, ref params.EntityRef) (map[string]any, error) {
		return s.Retrieve(ctx, ref.EntityType, ref.ID, query)
	})
	if err != nil {
		return nil, fmt.Errorf("retrieve %q: %w", h.name, err)
	}
	return record, nil
}

// Update writes payload to the referenced record through the store the
// capability resolver selects. Nothing is written when path selection
// fails.
func (h *LookupHandle) Update(ctx context.Context, payload map[string]any) error {
	_, err := h.withStore(ctx, func(ctx context.Context, s storage.Store, ref params.EntityRef) (map[string]any, error) {
		return nil, s.Update(ctx, ref.EntityType, ref.ID, payload)
	})
	if err != nil {
		return fmt.Errorf("update %q: %w", h.name, err)
	}
	return nil
}

func (h *LookupHandle) withStore(ctx context.Context, op func(context.Context, storage.Store, params.EntityRef) (map[string]any, error)) (map[string]any, error) {
	ref, err := h.Ref()
	if err != nil {
		return nil, err
	}
	store, err := h.resolver.Select(ctx, ref.EntityType)
	if err != nil {
		return nil, err
	}
	return op(ctx, store, ref)
}
