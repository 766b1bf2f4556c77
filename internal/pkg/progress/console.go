package progress

import "log"

// ConsoleNotifier renders toast transitions as log lines. It is the terminal
// stand-in for the portal's toast widgets.
type ConsoleNotifier struct{}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (n *ConsoleNotifier) Show(id, message string) {
	log.Printf("[%s] %s", id, message)
}

func (n *ConsoleNotifier) Update(id string, percentage int, message string) {
	log.Printf("[%s] %3d%% %s", id, percentage, message)
}

func (n *ConsoleNotifier) Success(id, message string) {
	log.Printf("[%s] done: %s", id, message)
}

func (n *ConsoleNotifier) Error(id, message string) {
	log.Printf("[%s] failed: %s", id, message)
}

func (n *ConsoleNotifier) Remove(id string) {}
