package view

import (
	"fmt"
	"sync"

	"github.com/devhub/admin-console/internal/console/client"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// Notice is one transient message shown to the operator.
type Notice struct {
	Level   Level
	Message string
}

// Notifier receives exactly one notice per terminal outcome of an operator
// action.
type Notifier interface {
	Notify(n Notice)
}

// Queue collects notices until the next render drains them.
type Queue struct {
	mu      sync.Mutex
	notices []Notice
}

func NewQueue() *Queue { return &Queue{} }

func (q *Queue) Notify(n Notice) {
	q.mu.Lock()
	q.notices = append(q.notices, n)
	q.mu.Unlock()
}

// Drain returns the pending notices in arrival order and clears the queue.
func (q *Queue) Drain() []Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.notices
	q.notices = nil
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.notices)
}

func Success(msg string) Notice { return Notice{Level: LevelSuccess, Message: msg} }
func Failure(msg string) Notice { return Notice{Level: LevelError, Message: msg} }
func Info(msg string) Notice    { return Notice{Level: LevelInfo, Message: msg} }

const (
	msgSessionExpired = "session expired, please sign in again"
	msgNetwork        = "network request failed, check the server connection"
)

// FailureMessage words a client error for the operator. fallback is used for
// business failures that carry no server message.
func FailureMessage(err *client.Error, fallback string) string {
	if err == nil {
		return fallback
	}
	switch err.Kind {
	case client.KindUnauthenticated:
		return msgSessionExpired
	case client.KindNetwork:
		return msgNetwork
	case client.KindHTTP:
		if err.Message != "" {
			return err.Message
		}
		return fmt.Sprintf("request failed (HTTP %d)", err.Status)
	default:
		if err.Message != "" {
			return err.Message
		}
		return fallback
	}
}

func notifyFailure(n Notifier, err *client.Error, fallback string) {
	n.Notify(Failure(FailureMessage(err, fallback)))
}
