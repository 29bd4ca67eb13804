package store

import (
	"fmt"

	"github.com/MKhiriev/user-directory/migrations"
	"github.com/MKhiriev/user-directory/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// userColumns lists the columns read into [models.User]. The role is cast to
// text so both the Postgres enum and the SQLite string scan into models.Role.
var userColumns = []string{"id", "name", "CAST(role AS TEXT) AS role", "password"}

// returningUser is appended to writes so they hand back the persisted row.
var returningUser = "RETURNING id, name, CAST(role AS TEXT) AS role, password"

// roleTypes is the SQL type a role literal is cast to on write.
var roleTypes = map[string]string{
	migrations.DialectPostgres: "role_enum",
	migrations.DialectSQLite:   "TEXT",
}

func roleValue(dialect string, role models.Role) sq.Sqlizer {
	roleType, ok := roleTypes[dialect]
	if !ok {
		roleType = "TEXT"
	}
	return sq.Expr(fmt.Sprintf("CAST(? AS %s)", roleType), string(role))
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id int32) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
}

// buildInsertUserQuery omits the id column unless user.ID is positive.
func buildInsertUserQuery(b sq.StatementBuilderType, dialect string, user models.User) (string, []any, error) {
	columns := []string{"name", "role", "password"}
	values := []any{user.Name, roleValue(dialect, user.Role), user.Password}
	if user.ID > 0 {
		columns = append([]string{"id"}, columns...)
		values = append([]any{user.ID}, values...)
	}

	return b.Insert(usersTable).
		Columns(columns...).
		Values(values...).
		Suffix(returningUser).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, dialect string, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("name", user.Name).
		Set("role", roleValue(dialect, user.Role)).
		Set("password", user.Password).
		Where(sq.Eq{"id": user.ID}).
		Suffix(returningUser).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int32) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
