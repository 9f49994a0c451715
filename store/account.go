package store

import (
	"github.com/google/uuid"

	"github.com/kindmap/kindmap-api/schema"
)

// CreateAccount registers a browser client and creates its bookmark profile.
func (s *KindmapStore) CreateAccount(accountNumber string, metadata map[string]interface{}) (*schema.Account, error) {
	a := schema.Account{
		AccountNumber: accountNumber,
		Metadata:      schema.AccountMetadata(metadata),
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	if err := s.mongo.CreateProfile(uuid.New().String(), accountNumber); err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns the account of a given client identifier
func (s *KindmapStore) GetAccount(accountNumber string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAccountMetadata is to update metadata for a specific account
func (s *KindmapStore) UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error {
	var a schema.Account
	if err := s.ormDB.Where("account_number = ?", accountNumber).First(&a).Error; err != nil {
		return err
	}

	if a.Metadata == nil {
		a.Metadata = schema.AccountMetadata{}
	}
	for k, v := range metadata {
		a.Metadata[k] = v
	}

	return s.ormDB.Save(&a).Error
}

// DeleteAccount removes a client registration and its profile permanently.
func (s *KindmapStore) DeleteAccount(accountNumber string) error {
	if err := s.ormDB.Delete(schema.Account{}, "account_number = ?", accountNumber).Error; err != nil {
		return err
	}

	return s.mongo.DeleteProfile(accountNumber)
}
