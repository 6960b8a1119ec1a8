package dbx

import "database/sql"

// NullInt64 turns an optional id into a query argument; nil becomes NULL.
func NullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// Int64Ptr is the scanning counterpart of NullInt64.
func Int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}

// StringPtr returns nil for a NULL text column.
func StringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}
