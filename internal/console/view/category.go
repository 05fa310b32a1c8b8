package view

import (
	"context"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/devhub/admin-console/internal/console/client"
	"github.com/devhub/admin-console/internal/core/domain"
)

// CategoryForm is the add-category form. Values are trimmed before validation.
type CategoryForm struct {
	Name        string `label:"category name" validate:"required,max=50"`
	Description string `label:"description" validate:"max=500"`
}

// CategoryState is what the categories page renders.
type CategoryState struct {
	Categories []domain.Category
	Loading    bool
	FormOpen   bool
	Form       CategoryForm
	Creating   bool
	Deleting   map[int64]bool
}

// CategoryView is the Form-Table page: a list of categories plus an add form.
type CategoryView struct {
	backend  CategoryBackend
	notify   Notifier
	validate *validator.Validate
	log      zerolog.Logger

	mu       sync.Mutex
	list     List[domain.Category]
	formOpen bool
	form     CategoryForm
	creating bool
	resets   uint64
}

func NewCategoryView(backend CategoryBackend, notify Notifier, log zerolog.Logger) *CategoryView {
	return &CategoryView{
		backend:  backend,
		notify:   notify,
		validate: newValidator(),
		log:      log,
	}
}

// Load fetches every category and replaces the list. Only failures notify.
func (v *CategoryView) Load(ctx context.Context) {
	v.mu.Lock()
	ld := v.list.BeginLoad()
	v.mu.Unlock()

	res := v.backend.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if ctx.Err() != nil {
		v.list.Abort(ld)
		v.log.Debug().Msg("discarded category list for abandoned request")
		return
	}
	if !res.OK() {
		if v.list.Abort(ld) {
			notifyFailure(v.notify, res.Err, "failed to load categories")
		}
		return
	}
	if !v.list.Finish(ld, res.Value) {
		v.log.Debug().Msg("discarded stale category list")
	}
}

func (v *CategoryView) OpenForm() {
	v.mu.Lock()
	v.formOpen = true
	v.mu.Unlock()
}

// CloseForm hides the form and clears its fields.
func (v *CategoryView) CloseForm() {
	v.mu.Lock()
	v.formOpen = false
	v.form = CategoryForm{}
	v.mu.Unlock()
}

func (v *CategoryView) ToggleForm() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.formOpen = !v.formOpen
	if !v.formOpen {
		v.form = CategoryForm{}
	}
}

// Create validates form and, when valid, asks the backend to create the
// category. An invalid form never reaches the backend. Create is ignored while
// another is outstanding or the list is loading.
func (v *CategoryView) Create(ctx context.Context, form CategoryForm) {
	form.Name = strings.TrimSpace(form.Name)
	form.Description = strings.TrimSpace(form.Description)

	v.mu.Lock()
	v.form = form
	if loading := v.list.Loading(); v.creating || loading {
		v.mu.Unlock()
		v.log.Debug().Bool("loading", loading).Msg("category create ignored")
		return
	}
	if msg := firstProblem(v.validate, form); msg != "" {
		v.mu.Unlock()
		v.notify.Notify(Failure(msg))
		return
	}
	v.creating = true
	resets := v.resets
	v.mu.Unlock()

	res := v.backend.Create(context.WithoutCancel(ctx), client.CategoryInput{Name: form.Name, Description: form.Description})

	v.mu.Lock()
	defer v.mu.Unlock()
	if resets != v.resets {
		return
	}
	v.creating = false
	if !res.OK() {
		notifyFailure(v.notify, res.Err, "failed to add category")
		return
	}
	v.list.Append(res.Value)
	v.form = CategoryForm{}
	v.formOpen = false
	v.notify.Notify(Success("added category: " + res.Value.Name))
}

// Delete removes the category with the given id. Actions on an item that is
// already in flight, or while the list loads, are ignored.
func (v *CategoryView) Delete(ctx context.Context, id int64) {
	v.mu.Lock()
	f, err := v.list.Begin(id)
	v.mu.Unlock()
	if err != nil {
		v.log.Debug().Err(err).Int64("id", id).Msg("category delete ignored")
		return
	}

	res := v.backend.Delete(context.WithoutCancel(ctx), id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.list.End(f) {
		return
	}
	if !res.OK() {
		notifyFailure(v.notify, res.Err, "failed to delete category")
		return
	}
	v.list.Remove(id)
	v.notify.Notify(Success("category deleted"))
}

func (v *CategoryView) State() CategoryState {
	v.mu.Lock()
	defer v.mu.Unlock()

	items := v.list.Items()
	deleting := make(map[int64]bool)
	for _, c := range items {
		if v.list.InFlight(c.ID) {
			deleting[c.ID] = true
		}
	}
	return CategoryState{
		Categories: items,
		Loading:    v.list.Loading(),
		FormOpen:   v.formOpen,
		Form:       v.form,
		Creating:   v.creating,
		Deleting:   deleting,
	}
}

// Reset drops all state; results of calls still outstanding are discarded.
func (v *CategoryView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.list.Reset()
	v.formOpen = false
	v.form = CategoryForm{}
	v.creating = false
	v.resets++
}
