package table

import "time"

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarn    Severity = "warn"
	SeverityError   Severity = "error"
)

const toastLife = 3 * time.Second

// Toast is one transient notification. The presentation layer renders it and
// expires it after Life.
type Toast struct {
	Severity Severity
	Summary  string
	Detail   string
	Life     time.Duration
}

// Notifier is a bounded stream of toasts. Publish never blocks the UI thread;
// when nobody is draining and the buffer fills, the toast is dropped.
type Notifier struct {
	ch chan Toast
}

func NewNotifier(buf int) *Notifier {
	if buf <= 0 {
		buf = 16
	}
	return &Notifier{ch: make(chan Toast, buf)}
}

func (n *Notifier) Publish(sev Severity, summary, detail string) {
	t := Toast{Severity: sev, Summary: summary, Detail: detail, Life: toastLife}
	select {
	case n.ch <- t:
	default:
	}
}

func (n *Notifier) Toasts() <-chan Toast { return n.ch }
