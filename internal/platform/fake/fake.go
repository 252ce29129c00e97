// Package fake provides in-memory platform collaborators that record every
// call into a shared Journal, for asserting startup ordering in tests.
package fake

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cyrenemusic/cyrene-runner/internal/console"
	"github.com/cyrenemusic/cyrene-runner/internal/instance"
	"github.com/cyrenemusic/cyrene-runner/internal/platform"
	"github.com/cyrenemusic/cyrene-runner/internal/window"
)

// Journal is an ordered log of collaborator calls.
type Journal struct {
	Events []string
}

func (j *Journal) record(format string, args ...any) {
	j.Events = append(j.Events, fmt.Sprintf(format, args...))
}

// Index returns the position of the first event starting with prefix,
// or -1.
func (j *Journal) Index(prefix string) int {
	for i, e := range j.Events {
		if strings.HasPrefix(e, prefix) {
			return i
		}
	}
	return -1
}

// Count returns how many events start with prefix.
func (j *Journal) Count(prefix string) int {
	n := 0
	for _, e := range j.Events {
		if strings.HasPrefix(e, prefix) {
			n++
		}
	}
	return n
}

// Locks is a session lock table shared by every simulated process.
type Locks struct {
	j    *Journal
	refs map[string]int
	// Err makes Create fail.
	Err error
}

// NewLocks returns an empty lock table.
func NewLocks(j *Journal) *Locks {
	return &Locks{j: j, refs: make(map[string]int)}
}

type lockHandle struct {
	l      *Locks
	name   string
	closed bool
}

func (h *lockHandle) Close() error {
	if h.closed {
		return fmt.Errorf("lock %s closed twice", h.name)
	}
	h.closed = true
	h.l.refs[h.name]--
	h.l.j.record("lock.close %s", h.name)
	return nil
}

// Create implements instance.Backend.
func (l *Locks) Create(name string) (instance.Handle, bool, error) {
	l.j.record("lock.create %s", name)
	if l.Err != nil {
		return nil, false, l.Err
	}
	existed := l.refs[name] > 0
	l.refs[name]++
	return &lockHandle{l: l, name: name}, existed, nil
}

// Probe implements instance.Prober without touching the lock.
func (l *Locks) Probe(name string) (bool, error) {
	l.j.record("lock.probe %s", name)
	if l.Err != nil {
		return false, l.Err
	}
	return l.refs[name] > 0, nil
}

// Open returns the number of open handles to name.
func (l *Locks) Open(name string) int {
	return l.refs[name]
}

// Window is the simulated state of one top-level window.
type Window struct {
	Class      string
	Visible    bool
	Iconic     bool
	Foreground bool
	Alive      bool
}

// Registry is a simulated session window registry.
type Registry struct {
	j    *Journal
	wins map[window.Handle]*Window
	next window.Handle
	// ExitOnFind destroys the found window right after Find returns,
	// as if its process exited between lookup and use.
	ExitOnFind bool
}

// NewRegistry returns an empty registry.
func NewRegistry(j *Journal) *Registry {
	return &Registry{j: j, wins: make(map[window.Handle]*Window)}
}

// Add registers a live window and returns its handle.
func (r *Registry) Add(class string, visible, iconic bool) window.Handle {
	r.next++
	r.wins[r.next] = &Window{Class: class, Visible: visible, Iconic: iconic, Alive: true}
	return r.next
}

// Get returns a copy of the window's state.
func (r *Registry) Get(h window.Handle) Window {
	if w, ok := r.wins[h]; ok {
		return *w
	}
	return Window{}
}

// Exit destroys the window.
func (r *Registry) Exit(h window.Handle) {
	if w, ok := r.wins[h]; ok {
		w.Alive = false
	}
}

func (r *Registry) live(h window.Handle) *Window {
	w, ok := r.wins[h]
	if !ok || !w.Alive {
		return nil
	}
	return w
}

// Find implements window.Registry. Windows are searched in creation order.
func (r *Registry) Find(class string) window.Handle {
	r.j.record("window.find %s", class)

	handles := make([]window.Handle, 0, len(r.wins))
	for h := range r.wins {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(a, b int) bool { return handles[a] < handles[b] })

	for _, h := range handles {
		w := r.wins[h]
		if w.Alive && w.Class == class {
			if r.ExitOnFind {
				w.Alive = false
			}
			return h
		}
	}
	return 0
}

func (r *Registry) IsWindow(h window.Handle) bool {
	return r.live(h) != nil
}

func (r *Registry) IsVisible(h window.Handle) bool {
	w := r.live(h)
	return w != nil && w.Visible
}

func (r *Registry) IsIconic(h window.Handle) bool {
	w := r.live(h)
	return w != nil && w.Iconic
}

func (r *Registry) Show(h window.Handle, cmd window.ShowCommand) {
	r.j.record("window.show %d", cmd)
	w := r.live(h)
	if w == nil {
		return
	}
	switch cmd {
	case window.CmdHide:
		w.Visible = false
	case window.CmdShow, window.CmdShowNormal:
		w.Visible = true
	case window.CmdRestore:
		w.Visible = true
		w.Iconic = false
	}
}

func (r *Registry) SetForeground(h window.Handle) bool {
	r.j.record("window.foreground")
	w := r.live(h)
	if w == nil {
		return false
	}
	for _, other := range r.wins {
		other.Foreground = false
	}
	w.Foreground = true
	return true
}

// Console is a scripted console.Attacher.
type Console struct {
	j         *Journal
	ParentErr error
	Debugger  bool
	AllocErr  error
}

func (c *Console) AttachParent() error {
	c.j.record("console.attach")
	return c.ParentErr
}

func (c *Console) DebuggerPresent() bool {
	return c.Debugger
}

func (c *Console) Allocate() error {
	c.j.record("console.alloc")
	return c.AllocErr
}

// COM counts apartment init/uninit calls.
type COM struct {
	j       *Journal
	Err     error
	Inits   int
	Uninits int
}

func (c *COM) Initialize() error {
	c.Inits++
	c.j.record("com.init")
	return c.Err
}

func (c *COM) Uninitialize() {
	c.Uninits++
	c.j.record("com.uninit")
}

// Shell records the registered identity.
type Shell struct {
	j   *Journal
	Err error
	ID  string
}

func (s *Shell) SetAppUserModelID(id string) error {
	s.j.record("shell.aumid %s", id)
	if s.Err != nil {
		return s.Err
	}
	s.ID = id
	return nil
}

// Env is an in-memory process environment.
type Env struct {
	j    *Journal
	vars map[string]string
	Err  error
}

func (e *Env) Setenv(key, value string) error {
	e.j.record("env.set %s=%s", key, value)
	if e.Err != nil {
		return e.Err
	}
	e.vars[key] = value
	return nil
}

// Get returns the value of key and whether it is set.
func (e *Env) Get(key string) (string, bool) {
	v, ok := e.vars[key]
	return v, ok
}

func (e *Env) snapshot() map[string]string {
	out := make(map[string]string, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}

// Host is a scripted window.Host.
type Host struct {
	j   *Journal
	env *Env

	CreateErr   error
	RunErr      error
	DecorateErr error
	// NoHandle makes created windows report a zero handle.
	NoHandle bool

	// Observed
	Title       string
	Origin      window.Point
	Size        window.Size
	EnvAtCreate map[string]string
	Created     *MainWindow
	Runs        int
}

func (h *Host) Create(title string, origin window.Point, size window.Size) (window.MainWindow, error) {
	h.j.record("host.create %s", title)
	h.Title, h.Origin, h.Size = title, origin, size
	h.EnvAtCreate = h.env.snapshot()
	if h.CreateErr != nil {
		return nil, h.CreateErr
	}
	w := &MainWindow{j: h.j, decorateErr: h.DecorateErr}
	if !h.NoHandle {
		w.handle = 1
	}
	h.Created = w
	return w, nil
}

func (h *Host) Run() error {
	h.Runs++
	h.j.record("host.run")
	return h.RunErr
}

// MainWindow is a window created by Host.
type MainWindow struct {
	j           *Journal
	handle      window.Handle
	decorateErr error

	QuitOnClose bool
	Decorations *window.Decorations
}

func (w *MainWindow) Handle() window.Handle {
	return w.handle
}

func (w *MainWindow) SetQuitOnClose(quit bool) {
	w.j.record("window.quit_on_close %v", quit)
	w.QuitOnClose = quit
}

func (w *MainWindow) Decorate(d window.Decorations) error {
	w.j.record("window.decorate custom_frame=%v hide_on_startup=%v", d.CustomFrame, d.HideOnStartup)
	if w.decorateErr != nil {
		return w.decorateErr
	}
	w.Decorations = &d
	return nil
}

// Parts holds every fake of one simulated session.
type Parts struct {
	Journal  *Journal
	Locks    *Locks
	Registry *Registry
	Console  *Console
	COM      *COM
	Shell    *Shell
	Env      *Env
	Host     *Host
}

// NewParts builds a fresh session. By default no parent console exists
// and no debugger is attached.
func NewParts() *Parts {
	j := &Journal{}
	env := &Env{j: j, vars: make(map[string]string)}
	return &Parts{
		Journal:  j,
		Locks:    NewLocks(j),
		Registry: NewRegistry(j),
		Console:  &Console{j: j, ParentErr: console.ErrNoConsole},
		COM:      &COM{j: j},
		Shell:    &Shell{j: j},
		Env:      env,
		Host:     &Host{j: j, env: env},
	}
}

// Platform returns the fakes as a platform.Platform.
func (p *Parts) Platform() platform.Platform {
	return platform.Platform{
		Locks:   p.Locks,
		Windows: p.Registry,
		Console: p.Console,
		COM:     p.COM,
		Shell:   p.Shell,
		Env:     p.Env,
		Host:    p.Host,
	}
}
