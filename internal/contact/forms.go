package contact

import "sync"

// Forms keeps one Form per visitor for as long as it is not idle, so a
// visitor cannot double-submit from parallel requests.
type Forms struct {
	mu    sync.Mutex
	forms map[string]*Form
	build func() *Form
}

// NewForms returns a registry that creates forms with build.
func NewForms(build func() *Form) *Forms {
	return &Forms{forms: make(map[string]*Form), build: build}
}

// Get returns the visitor's form, creating an idle one when needed.
func (r *Forms) Get(visitor string) *Form {
	r.mu.Lock()
	defer r.mu.Unlock()

	if form, ok := r.forms[visitor]; ok {
		return form
	}
	form := r.build()
	r.forms[visitor] = form
	form.Subscribe(func(s State) {
		if s == Idle {
			r.release(visitor, form)
		}
	})
	return form
}

// Peek returns the visitor's state without creating a form.
func (r *Forms) Peek(visitor string) State {
	r.mu.Lock()
	form, ok := r.forms[visitor]
	r.mu.Unlock()
	if !ok {
		return Idle
	}
	return form.State()
}

// Release drops the visitor's form if it is idle.
func (r *Forms) Release(visitor string) {
	r.mu.Lock()
	form, ok := r.forms[visitor]
	r.mu.Unlock()
	if ok && form.State() == Idle {
		r.release(visitor, form)
	}
}

func (r *Forms) release(visitor string, form *Form) {
	r.mu.Lock()
	current, ok := r.forms[visitor]
	if ok && current == form {
		delete(r.forms, visitor)
	}
	r.mu.Unlock()
	if ok && current == form {
		form.Close()
	}
}

// Len reports how many forms are held.
func (r *Forms) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// Close closes every held form.
func (r *Forms) Close() {
	r.mu.Lock()
	forms := r.forms
	r.forms = make(map[string]*Form)
	r.mu.Unlock()
	for _, form := range forms {
		form.Close()
	}
}
