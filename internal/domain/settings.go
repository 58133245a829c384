package domain

// Settings holds the operator-tunable options of the donation subsystem.
type Settings struct {
	DefaultCurrency    string `json:"default_currency"`
	EmailNotifications bool   `json:"email_notifications"`
}
