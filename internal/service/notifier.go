package service

import "log"

// LogNotifier writes the user-facing acknowledgments to the service log.
// The storefront renders them client-side; server-side they are an audit
// trail.
type LogNotifier struct{}

func (LogNotifier) Notify(title, message string) {
	log.Printf("[notify] %s: %s", title, message)
}
