// Package memform provides an ephemeral, thread-safe, in-memory
// implementation of the form.Form interface.
//
// It exists for headless runs and for tests: attributes and controls are
// declared up front, values live in memory, and change listeners fire
// synchronously on SetValue. State is created fresh per form session and
// dies with it; nothing is persisted.
package memform

import (
	"sync"

	"github.com/vk/formbridge/internal/form"
)

// Form is an in-memory form.Form. All methods are safe for concurrent use;
// listeners are invoked outside the attribute lock.
type Form struct {
	mu         sync.RWMutex
	attributes map[string]*Attribute
	controls   map[string]*Control
}

// New creates an empty form.
func New() *Form {
	return &Form{
		attributes: make(map[string]*Attribute),
		controls:   make(map[string]*Control),
	}
}

// AddAttribute declares an attribute with an initial value and a paired
// control, both registered under name. It returns the attribute.
func (f *Form) AddAttribute(name string, value any) *Attribute {
	f.mu.Lock()
	defer f.mu.Unlock()
	attr := &Attribute{value: value, valid: true}
	f.attributes[name] = attr
	f.controls[name] = &Control{visible: true, notifications: make(map[string]string)}
	return attr
}

// GetAttribute implements form.Form.
func (f *Form) GetAttribute(name string) (form.Attribute, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	attr, ok := f.attributes[name]
	if !ok {
		return nil, false
	}
	return attr, true
}

// GetControl implements form.Form.
func (f *Form) GetControl(name string) (form.Control, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	ctl, ok := f.controls[name]
	if !ok {
		return nil, false
	}
	return ctl, true
}

// Attribute is the in-memory attribute backing one field.
type Attribute struct {
	mu        sync.Mutex
	value     any
	listeners []func(v any)
	level     form.RequiredLevel
	valid     bool
	message   string
}

// Value implements form.Attribute.
func (a *Attribute) Value() any {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// SetValue implements form.Attribute. Listeners run synchronously, after
// the value is stored and outside the lock.
func (a *Attribute) SetValue(v any) {
	a.mu.Lock()
	a.value = v
	listeners := make([]func(any), len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.Unlock()
	for _, fn := range listeners {
		fn(v)
	}
}

// OnChange implements form.Attribute.
func (a *Attribute) OnChange(fn func(v any)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listeners = append(a.listeners, fn)
}

// SetRequiredLevel implements form.Attribute.
func (a *Attribute) SetRequiredLevel(level form.RequiredLevel) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.level = level
}

// RequiredLevel returns the last level set, for inspection in tests.
func (a *Attribute) RequiredLevel() form.RequiredLevel {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.level
}

// SetValid implements form.Attribute.
func (a *Attribute) SetValid(valid bool, message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.valid = valid
	if valid {
		a.message = ""
	} else {
		a.message = message
	}
}

// Valid returns the attribute's validity state and message.
func (a *Attribute) Valid() (bool, string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.valid, a.message
}

// Control is the in-memory control paired with an attribute.
type Control struct {
	mu            sync.Mutex
	visible       bool
	disabled      bool
	notifications map[string]string
}

// SetVisible implements form.Control.
func (c *Control) SetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = visible
}

// Visible returns the control's visibility.
func (c *Control) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// SetDisabled implements form.Control.
func (c *Control) SetDisabled(disabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disabled = disabled
}

// Disabled returns the control's disabled state.
func (c *Control) Disabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabled
}

// SetNotification implements form.Control. The in-memory control accepts
// every notification.
func (c *Control) SetNotification(message, id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notifications[id] = message
	return true
}

// ClearNotification implements form.Control.
func (c *Control) ClearNotification(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.notifications, id)
}

// Notification returns the message registered under id, if any.
func (c *Control) Notification(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	msg, ok := c.notifications[id]
	return msg, ok
}
