package sqlite

import (
	"database/sql/driver"
	"fmt"

	"golang.org/x/text/cases"
	msqlite "modernc.org/sqlite"
)

// SQLite's lower() only folds ASCII. Note search goes through fold() so
// "über" matches "ÜBER" and "strasse" matches "Straße".
func init() {
	msqlite.MustRegisterDeterministicScalarFunction("fold", 1, foldFunc)
}

func foldFunc(_ *msqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return foldString(v), nil
	case []byte:
		return foldString(string(v)), nil
	default:
		return nil, fmt.Errorf("fold: unsupported argument type %T", v)
	}
}

// foldString builds a Caser per call; Casers keep state and are not safe
// for concurrent use.
func foldString(s string) string {
	return cases.Fold().String(s)
}
