// Package kv abstracts the hosted key-value store behind the flat list,
// hash, and string operations the catalog needs. There are no transactions
// across keys; callers must not assume any.
package kv

import "context"

type Store interface {
	// LRange returns the whole list stored at key, head first.
	LRange(ctx context.Context, key string) ([]string, error)
	// LPush prepends values to the list at key.
	LPush(ctx context.Context, key string, values ...string) error
	// RPush appends values to the list at key.
	RPush(ctx context.Context, key string, values ...string) error
	// LRem removes every occurrence of value from the list at key.
	LRem(ctx context.Context, key, value string) error
	// Del removes the given keys entirely.
	Del(ctx context.Context, keys ...string) error

	// HGet returns the value of field in the hash at key, or "" when the
	// field is absent. Absence is not an error.
	HGet(ctx context.Context, key, field string) (string, error)
	// HSet writes the given fields into the hash at key.
	HSet(ctx context.Context, key string, fields map[string]string) error
	// HDel removes fields from the hash at key.
	HDel(ctx context.Context, key string, fields ...string) error
	// HGetAll returns every field of the hash at key.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// Get returns the string at key, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set writes the string at key.
	Set(ctx context.Context, key, value string) error
}
