package notify

import (
	"sync"
	"time"
)

// DismissAfter: bildirimin kendiliğinden kaybolma süresi.
const DismissAfter = 3 * time.Second

type Kind string

const (
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
)

type Notification struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Notifier: tek slotlu geçici bildirim. Yeni bildirim mevcut olanı anında
// siler, gösterilen bildirim süre dolunca kendiliğinden kapanır. Zamanlayıcı
// yalnızca bu slotu temizler, başka hiçbir duruma dokunmaz.
type Notifier struct {
	mu           sync.Mutex
	current      *Notification
	timer        *time.Timer
	dismissAfter time.Duration
}

func New() *Notifier {
	return NewWithDismiss(DismissAfter)
}

// NewWithDismiss: farklı kapanma süresiyle kurar (testler için).
func NewWithDismiss(d time.Duration) *Notifier {
	return &Notifier{dismissAfter: d}
}

func (n *Notifier) Push(kind Kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	msg := &Notification{Kind: kind, Message: message}
	n.current = msg
	n.timer = time.AfterFunc(n.dismissAfter, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// araya yeni bildirim girdiyse ona dokunma
		if n.current == msg {
			n.current = nil
		}
	})
}

func (n *Notifier) Success(message string) { n.Push(KindSuccess, message) }
func (n *Notifier) Warning(message string) { n.Push(KindWarning, message) }

// Current: gösterilen bildirim, yoksa nil.
func (n *Notifier) Current() *Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
