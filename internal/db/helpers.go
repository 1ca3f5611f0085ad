package db

import "strings"

// NullIfEmpty helps store optional strings without writing empty text.
func NullIfEmpty(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

// NullIfZero keeps optional foreign keys NULL instead of 0.
func NullIfZero(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}

// NullIfNilInt64 maps an optional id pointer to a nullable column value.
func NullIfNilInt64(id *int64) any {
	if id == nil || *id == 0 {
		return nil
	}
	return *id
}
