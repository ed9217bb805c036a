package db_models

// AppMetadata is a key/value row used by the update checker to persist
// its last result across restarts.
type AppMetadata struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

const (
	MetaLatestVersion   = "latest_version"
	MetaUpdateAvailable = "update_available"
	MetaUpdateCheckedAt = "update_checked_at"
)
