package services

// TablePair names a database table together with the column that links its
// rows to a user. Only allow-listed pairs may ever be interpolated into a
// statement; identifiers cannot be bound as parameters in SQL, so this closed
// set is the defense against injection.
type TablePair struct {
	Table  string
	Column string
}

// DeletionTargets is the fixed, ordered set of table sweeps performed during
// a GDPR erasure. The users table is absent on purpose: the user row is
// deleted last, through a dedicated gateway call.
var DeletionTargets = []TablePair{
	{Table: "feedback", Column: "user_id"},
	{Table: "scripts", Column: "user_id"},
	{Table: "content", Column: "uploader_id"},
	{Table: "analytics", Column: "user_id"},
	{Table: "audit_logs", Column: "user_id"},
	{Table: "system_logs", Column: "user_id"},
}

var allowedTables = map[string]struct{}{
	"content":     {},
	"feedback":    {},
	"scripts":     {},
	"analytics":   {},
	"audit_logs":  {},
	"system_logs": {},
}

var allowedColumns = map[string]struct{}{
	"user_id":     {},
	"uploader_id": {},
}

// AllowedTarget reports whether the pair may be used in a deletion or count
// statement. Callers must check this before any statement is constructed.
func AllowedTarget(table, column string) bool {
	if _, ok := allowedTables[table]; !ok {
		return false
	}
	_, ok := allowedColumns[column]
	return ok
}
