package entities

import "time"

// PreferenceKey is the single storage key the web client keeps its settings under.
const PreferenceKey = "olive-lifecycle-preferences"

type NotificationPrefs struct {
	Email            bool `json:"email"`
	Push             bool `json:"push"`
	TaskReminders    bool `json:"taskReminders"`
	DeadlineAlerts   bool `json:"deadlineAlerts"`
	LifecycleUpdates bool `json:"lifecycleUpdates"`
}

type Preferences struct {
	Theme         string            `json:"theme"`
	DateFormat    string            `json:"dateFormat"`
	Language      string            `json:"language"`
	DefaultView   string            `json:"defaultView"`
	Notifications NotificationPrefs `json:"notifications"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:       "light",
		DateFormat:  "DD/MM/YYYY",
		Language:    "en",
		DefaultView: "dashboard",
		Notifications: NotificationPrefs{
			Email:            true,
			Push:             true,
			TaskReminders:    true,
			DeadlineAlerts:   true,
			LifecycleUpdates: false,
		},
	}
}

// PreferenceBlob is the persisted JSON document, one per owner and key.
type PreferenceBlob struct {
	OwnerID   string `gorm:"primaryKey"`
	Key       string `gorm:"primaryKey;column:pref_key"`
	Value     string
	UpdatedAt time.Time
}
