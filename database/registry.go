package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/siherrmann/crmfill/helper"
	"github.com/siherrmann/crmfill/model"
	"github.com/siherrmann/crmfill/sql"
)

// Registry answers whether a contact email and a company name were seen in an
// earlier extraction. Checking registers both values unconditionally, so the
// returned flags describe the state before the call.
type Registry interface {
	CheckAndRegister(ctx context.Context, email *string, company *string) (contactExists bool, companyExists bool, err error)
}

// RegistryDBHandler handles registry-related database operations
type RegistryDBHandler struct {
	db *helper.Database
}

// NewRegistryDBHandler creates a new registry database handler.
// It initializes the database connection and loads registry-related SQL functions.
// If force is true, it will reload the SQL functions even if they already exist.
func NewRegistryDBHandler(db *helper.Database, force bool) (*RegistryDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	registryDbHandler := &RegistryDBHandler{
		db: db,
	}

	err := sql.LoadRegistrySql(registryDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load registry sql", err)
	}

	err = registryDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized RegistryDBHandler")

	return registryDbHandler, nil
}

// CreateTable creates the 'registry' table in the database.
// If the table already exists, it does not create it again.
func (h *RegistryDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_registry();`)
	if err != nil {
		log.Panicf("error initializing registry table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table registry")

	return nil
}

// CheckAndRegister checks both values and registers them in one statement.
// Nil values are skipped and report false.
func (h *RegistryDBHandler) CheckAndRegister(ctx context.Context, email *string, company *string) (bool, bool, error) {
	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM check_and_register($1, $2)`,
		email,
		company,
	)

	var contactExists, companyExists bool
	err := row.Scan(&contactExists, &companyExists)
	if err != nil {
		return false, false, helper.NewError("scan", err)
	}

	return contactExists, companyExists, nil
}

// SelectEntry retrieves a registered value with its audit metadata. Returns
// sql.ErrNoRows wrapped when the value was never registered.
func (h *RegistryDBHandler) SelectEntry(ctx context.Context, kind string, value string) (*model.RegistryEntry, error) {
	entry := &model.RegistryEntry{}
	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM select_entry($1, $2)`,
		kind,
		value,
	)

	err := row.Scan(
		&entry.ID,
		&entry.Kind,
		&entry.Value,
		&entry.Metadata,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return entry, nil
}

// UpdateEntryMetadata merges audit metadata into a registered value.
func (h *RegistryDBHandler) UpdateEntryMetadata(ctx context.Context, kind string, value string, metadata model.Metadata) error {
	_, err := h.db.Instance.ExecContext(
		ctx,
		`SELECT update_entry_metadata($1, $2, $3)`,
		kind,
		value,
		metadata,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}
	return nil
}

// CountSeen returns the number of distinct registered values of a kind
// ("contact" or "company").
func (h *RegistryDBHandler) CountSeen(ctx context.Context, kind string) (int, error) {
	row := h.db.Instance.QueryRowContext(
		ctx,
		`SELECT * FROM count_seen($1)`,
		kind,
	)

	var count int
	err := row.Scan(&count)
	if err != nil {
		return 0, helper.NewError("scan", err)
	}

	return count, nil
}
