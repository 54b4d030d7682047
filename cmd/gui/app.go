package main

import (
	"context"
	"log"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/flavono123/formbuilder/internal/form"
	"github.com/flavono123/formbuilder/internal/preview"
)

// FieldsChangedEvent is emitted with the new field list after every change.
const FieldsChangedEvent = "fields:changed"

// App struct
type App struct {
	ctx   context.Context
	ctxMu sync.RWMutex
	store *form.Store
	emit  func(ctx context.Context, name string, data ...interface{})
}

// NewApp creates a new App bound to the given store
func NewApp(store *form.Store) *App {
	a := &App{
		store: store,
		emit:  runtime.EventsEmit,
	}
	store.Subscribe(a.fieldsChanged)
	return a
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.setContext(ctx)
}

func (a *App) shutdown(ctx context.Context) {
	log.Printf("shutting down with %d fields", a.store.Len())
	a.setContext(nil)
}

// bound methods run on their own goroutines, so the runtime context is
// read and written under ctxMu
func (a *App) setContext(ctx context.Context) {
	a.ctxMu.Lock()
	defer a.ctxMu.Unlock()

	a.ctx = ctx
}

func (a *App) runtimeContext() context.Context {
	a.ctxMu.RLock()
	defer a.ctxMu.RUnlock()

	return a.ctx
}

func (a *App) fieldsChanged(list form.FieldList) {
	ctx := a.runtimeContext()
	if ctx == nil {
		return
	}
	a.emit(ctx, FieldsChangedEvent, list)
}

// Kinds returns the kind names in button order
func (a *App) Kinds() []string {
	kinds := form.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

// AddField appends a field of the named kind
func (a *App) AddField(kind string) (form.FieldDefinition, error) {
	k, err := form.ParseKind(kind)
	if err != nil {
		log.Printf("add field: %v", err)
		return form.FieldDefinition{}, err
	}
	return a.store.AddField(k), nil
}

func (a *App) UpdateLabel(id, label string) {
	a.store.UpdateLabel(id, label)
}

func (a *App) AddOption(id string) {
	a.store.AddOption(id)
}

// Fields returns the current field list
func (a *App) Fields() form.FieldList {
	return a.store.Fields()
}

// Preview returns the sanitized preview markup of a field, or an empty
// string if there is no such field.
func (a *App) Preview(id string) string {
	f, ok := a.store.Field(id)
	if !ok {
		return ""
	}
	return preview.HTML(preview.Render(f))
}
