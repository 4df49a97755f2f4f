package pg

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// NullDate passes a zero time as SQL NULL, for optional date bounds.
func NullDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

func Int64Ptr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func TimePtr(v pgtype.Timestamptz) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}
