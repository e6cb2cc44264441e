// Package effects describes the user-visible side effects of a page: toast
// notifications and navigation between routes.
package effects

import "sync"

// Navigator moves the user to another route.
type Navigator interface {
	Navigate(path string)
}

// Notifier shows a transient, dismissable message.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// Level is the kind of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelFailure Level = "error"
)

// Notification is one toast.
type Notification struct {
	Level   Level
	Message string
}

// Recorder collects effects so a caller can apply them after the page
// controller returns. It implements both Navigator and Notifier.
type Recorder struct {
	mu            sync.Mutex
	navigations   []string
	notifications []Notification
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Navigate(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.navigations = append(r.navigations, path)
}

func (r *Recorder) Success(message string) {
	r.notify(LevelSuccess, message)
}

func (r *Recorder) Failure(message string) {
	r.notify(LevelFailure, message)
}

func (r *Recorder) notify(level Level, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, Notification{Level: level, Message: message})
}

// Navigations returns every path passed to Navigate, in order.
func (r *Recorder) Navigations() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.navigations...)
}

// Target returns the last navigation, if any.
func (r *Recorder) Target() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.navigations) == 0 {
		return "", false
	}
	return r.navigations[len(r.navigations)-1], true
}

// Notifications returns every notification, in order.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notifications...)
}

// Messages returns the messages recorded at the given level.
func (r *Recorder) Messages(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.notifications {
		if n.Level == level {
			out = append(out, n.Message)
		}
	}
	return out
}
