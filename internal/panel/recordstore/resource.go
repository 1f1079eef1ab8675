package recordstore

import (
	"context"
	"net/http"
	"net/url"
)

// Resource is a typed view of one collection, such as "skills".
type Resource[T any] struct {
	c    *Client
	name string
}

func NewResource[T any](c *Client, name string) *Resource[T] {
	return &Resource[T]{c: c, name: name}
}

func (r *Resource[T]) Name() string { return r.name }

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.Send(ctx, "fetch", http.MethodGet, r.name, nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r *Resource[T]) Create(ctx context.Context, fields map[string]any) (T, error) {
	var out T
	err := r.c.Send(ctx, "create", http.MethodPost, r.name, nil, fields, &out)
	return out, err
}

// Update replaces the record with the given id. The id travels in the body.
func (r *Resource[T]) Update(ctx context.Context, id string, fields map[string]any) (T, error) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["id"] = id

	var out T
	err := r.c.Send(ctx, "update", http.MethodPut, r.name, nil, body, &out)
	return out, err
}

func (r *Resource[T]) Delete(ctx context.Context, id string) error {
	return r.c.Send(ctx, "delete", http.MethodDelete, r.name, url.Values{"id": {id}}, nil, nil)
}

// Get reads a singleton resource such as the profile.
func (r *Resource[T]) Get(ctx context.Context) (T, error) {
	var out T
	err := r.c.Send(ctx, "fetch", http.MethodGet, r.name, nil, nil, &out)
	return out, err
}

// Put writes a singleton resource, or a keyed update like site settings.
func (r *Resource[T]) Put(ctx context.Context, body any) (T, error) {
	var out T
	err := r.c.Send(ctx, "save", http.MethodPut, r.name, nil, body, &out)
	return out, err
}

// Count is the length of the full listing.
func (r *Resource[T]) Count(ctx context.Context) (int, error) {
	items, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
