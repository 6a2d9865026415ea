package database

import (
	"fmt"
	"reflect"

	"github.com/amirhossein-jamali/dbexceptions/internal/domain/port/usecase"
	"gorm.io/gorm"
)

const exceptionPluginName = "dbexceptions"

// ExceptionPlugin replaces driver errors on a gorm.DB with typed database failures.
// Writes report the statement destination as the failed entries.
type ExceptionPlugin struct {
	processor usecase.FailureProcessor
}

// NewExceptionPlugin creates the plugin around processor
func NewExceptionPlugin(processor usecase.FailureProcessor) *ExceptionPlugin {
	return &ExceptionPlugin{processor: processor}
}

// Name implements gorm.Plugin
func (p *ExceptionPlugin) Name() string {
	return exceptionPluginName
}

// Initialize implements gorm.Plugin
func (p *ExceptionPlugin) Initialize(db *gorm.DB) error {
	callbacks := db.Callback()

	// Writes are handled after the transaction callback so rollback sees the driver error
	if err := callbacks.Create().After("gorm:commit_or_rollback_transaction").Register(p.callbackName("create"), p.saveChangesFailed); err != nil {
		return fmt.Errorf("failed to register create callback: %w", err)
	}
	if err := callbacks.Update().After("gorm:commit_or_rollback_transaction").Register(p.callbackName("update"), p.saveChangesFailed); err != nil {
		return fmt.Errorf("failed to register update callback: %w", err)
	}
	if err := callbacks.Delete().After("gorm:commit_or_rollback_transaction").Register(p.callbackName("delete"), p.saveChangesFailed); err != nil {
		return fmt.Errorf("failed to register delete callback: %w", err)
	}

	if err := callbacks.Query().After("gorm:after_query").Register(p.callbackName("query"), p.commandFailed); err != nil {
		return fmt.Errorf("failed to register query callback: %w", err)
	}
	if err := callbacks.Row().After("gorm:row").Register(p.callbackName("row"), p.commandFailed); err != nil {
		return fmt.Errorf("failed to register row callback: %w", err)
	}
	if err := callbacks.Raw().After("gorm:raw").Register(p.callbackName("raw"), p.commandFailed); err != nil {
		return fmt.Errorf("failed to register raw callback: %w", err)
	}

	return nil
}

func (p *ExceptionPlugin) callbackName(operation string) string {
	return exceptionPluginName + ":" + operation
}

func (p *ExceptionPlugin) commandFailed(db *gorm.DB) {
	if db.Error != nil {
		db.Error = p.processor.CommandFailed(db.Error)
	}
}

func (p *ExceptionPlugin) saveChangesFailed(db *gorm.DB) {
	if db.Error != nil {
		db.Error = p.processor.SaveChangesFailed(db.Error, statementEntries(db.Statement))
	}
}

// statementEntries lists the values a write statement was saving.
// Slices are expanded into their elements. Updates given as a map report
// the model instead.
func statementEntries(stmt *gorm.Statement) []any {
	if stmt == nil {
		return nil
	}
	dest := stmt.Dest
	if dest == nil || (isMap(dest) && stmt.Model != nil) {
		dest = stmt.Model
	}
	if dest == nil {
		return nil
	}

	value := reflect.ValueOf(dest)
	for value.Kind() == reflect.Ptr && !value.IsNil() && value.Elem().Kind() != reflect.Struct {
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		entries := make([]any, 0, value.Len())
		for i := 0; i < value.Len(); i++ {
			elem := value.Index(i)
			if elem.Kind() == reflect.Struct && elem.CanAddr() {
				elem = elem.Addr()
			}
			entries = append(entries, elem.Interface())
		}
		return entries
	case reflect.Map:
		return []any{value.Interface()}
	default:
		return []any{dest}
	}
}

func isMap(v any) bool {
	value := reflect.ValueOf(v)
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	return value.Kind() == reflect.Map
}
