package domain

import "time"

// UpgradeNotificationMessage is the fixed message attached to the
// notification emitted after a successful professional upgrade.
const UpgradeNotificationMessage = "Your account has been upgraded to professional status."

// Notification is an immutable record created as a side effect of a
// successful upgrade. It is never updated or deleted.
type Notification struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    int64     `json:"user_id" gorm:"index;not null"`
	Message   string    `json:"message" gorm:"size:200;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
