package exception

import (
	"github.com/amirhossein-jamali/dbexceptions/internal/domain/entity"
)

var (
	usersTable  = entity.Table{Schema: "public", Name: "Users"}
	ordersTable = entity.Table{Schema: "public", Name: "Orders"}
)

// shopModel is a small schema: users with a unique email, orders referencing users
func shopModel() []entity.EntityType {
	return []entity.EntityType{
		{
			Name:  "User",
			Table: usersTable,
			Indexes: []entity.Index{
				{Name: "UX_Email", Unique: true, Table: usersTable, Properties: []string{"Email"}},
				{Name: "IX_Name", Unique: false, Table: usersTable, Properties: []string{"Name"}},
			},
			PrimaryKey: &entity.Key{Name: "PK_Users", Properties: []string{"ID"}},
		},
		{
			Name:  "Order",
			Table: ordersTable,
			Indexes: []entity.Index{
				{Name: "UX_Orders_Reference", Unique: true, Properties: []string{"Reference"}},
			},
			ForeignKeys: []entity.ForeignKey{
				{ConstraintName: "FK_Orders_Users_UserID", Table: ordersTable, Properties: []string{"UserID"}},
			},
			PrimaryKey: &entity.Key{Name: "PK_Orders", Properties: []string{"ID"}},
		},
		{
			Name:       "AuditEntry",
			Table:      entity.Table{Name: "audit_entries"},
			PrimaryKey: &entity.Key{Properties: []string{"ID"}},
		},
		{
			Name:  "Keyless",
			Table: entity.Table{Name: "report_rows"},
		},
	}
}

type staticModel struct {
	types []entity.EntityType
	err   error
	calls int
}

func (m *staticModel) EntityTypes() ([]entity.EntityType, error) {
	m.calls++
	return m.types, m.err
}
