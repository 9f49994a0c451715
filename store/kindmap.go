package store

import (
	"github.com/jinzhu/gorm"

	"github.com/kindmap/kindmap-api/schema"
)

// kindmap main datastore
type KindmapCore interface {
	Ping() error

	// Account
	CreateAccount(accountNumber string, metadata map[string]interface{}) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error
	DeleteAccount(accountNumber string) error
}

// KindmapStore is an implementation of KindmapCore backed by the relational
// account registry and the mongo document store.
type KindmapStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewKindmapStore(ormDB *gorm.DB, mongo MongoStore) *KindmapStore {
	return &KindmapStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *KindmapStore) Ping() error {
	return s.ormDB.DB().Ping()
}
