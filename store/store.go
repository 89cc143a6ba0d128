// store/store.go

/* The store package persists registered operators locally in a SQLite database.
It is deliberately thin: operators are the only local state this module owns, and
the API access core never touches the store. */
package store

import (
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-parking-api-client/parking"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Store wraps the local operator database.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("opening operator database: %w", err)
	}

	if err := db.AutoMigrate(&parking.Operator{}); err != nil {
		return nil, fmt.Errorf("migrating operator schema: %w", err)
	}

	return &Store{db: db}, nil
}

// CreateOperator registers a new operator.
func (s *Store) CreateOperator(op *parking.Operator) error {
	return s.db.Create(op).Error
}

// Operators lists all registered operators.
func (s *Store) Operators() ([]parking.Operator, error) {
	var operators []parking.Operator
	if err := s.db.Order("name").Find(&operators).Error; err != nil {
		return nil, err
	}
	return operators, nil
}

// OperatorByName returns the operator with the given name, or nil when absent.
func (s *Store) OperatorByName(name string) (*parking.Operator, error) {
	var op parking.Operator
	err := s.db.Where("name = ?", name).First(&op).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &op, nil
}

// UpdateOperator persists changes to an existing operator.
func (s *Store) UpdateOperator(op *parking.Operator) error {
	return s.db.Save(op).Error
}

// DeleteOperator removes an operator by id.
func (s *Store) DeleteOperator(id uint) error {
	return s.db.Delete(&parking.Operator{}, id).Error
}
