package storage

import "time"

// kvRecord is one key-value row. The value column holds raw JSON so stored
// payloads round-trip byte-for-byte.
type kvRecord struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

// TableName overrides the GORM default
func (kvRecord) TableName() string {
	return "kv_records"
}

// sessionRecord is the persisted JSON shape of one session. Field names match
// the original web payload under the same storage key, so existing exports
// import cleanly.
type sessionRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Market       string `json:"market"`
	UTCStartHour int    `json:"utcStartHour"`
	UTCEndHour   int    `json:"utcEndHour"`
	Color        string `json:"color"`
}
