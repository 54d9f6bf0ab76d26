package notify

import "time"

// LoginNotification is the JSON payload put on the RabbitMQ queue after
// a successful login. The notify worker turns it into an email.
type LoginNotification struct {
	To   string    `json:"to"`
	Name string    `json:"name"`
	Time time.Time `json:"time"`
	IP   string    `json:"ip,omitempty"`
}
