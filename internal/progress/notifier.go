package progress

import "sync"

// SignalSolvedChanged is the name of the signal broadcast after every
// successful, non-idempotent write to the progress store. It carries no
// payload; listeners re-derive their counts from the store.
const SignalSolvedChanged = "progress.solved-changed"

// Notifier fans a named signal out to independent listeners. Sends never
// block: a subscriber that has not drained its channel is skipped, which is
// fine because the signal is a refresh hint, not data.
type Notifier struct {
	mu   sync.Mutex
	subs []chan string
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe returns a channel that receives the signal name on every
// broadcast. The channel is buffered with capacity 1.
func (n *Notifier) Subscribe() <-chan string {
	ch := make(chan string, 1)
	n.mu.Lock()
	n.subs = append(n.subs, ch)
	n.mu.Unlock()
	return ch
}

func (n *Notifier) broadcast(name string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, ch := range n.subs {
		select {
		case ch <- name:
		default:
		}
	}
}
