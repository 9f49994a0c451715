package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type AccountMetadata map[string]interface{}

func (u AccountMetadata) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *AccountMetadata) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}

	return json.Unmarshal(source, &u)
}

// Account is the relational registration record of a browser client. The
// account number is the stable per-browser client identifier used to filter
// "my posts" and to key the bookmark profile in mongo.
type Account struct {
	AccountNumber string          `json:"account_number" gorm:"primary_key"`
	Metadata      AccountMetadata `json:"metadata" gorm:"type:jsonb;not null;default '{}'"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
