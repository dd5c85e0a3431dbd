// Package session provides the durable key-value repository backing the
// credential store. Values are opaque strings: the repository performs no
// validation or interpretation.
package session

import "context"

type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
