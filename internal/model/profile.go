package model

// UserProfile holds the user's display identity.
type UserProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Preferences holds notification toggles.
type Preferences struct {
	PushNotifications bool `json:"pushNotifications"`
	BudgetAlerts      bool `json:"budgetAlerts"`
}
