package admin

import (
	"context"
	"fmt"
)

// ListController drives a manage screen: one fetched collection, a search
// box, per-row delete and boolean toggles. Items is the sole source of truth
// for the table; Filtered derives a view and never mutates it.
type ListController[T any] struct {
	API      ListAPI
	Resource Resource[T]
	// Confirm gates destructive actions; returning false aborts. A nil
	// Confirm declines everything, so screens must always wire one.
	Confirm func(prompt string) bool

	Items      []T
	SearchTerm string
	Loading    bool
	Status     StatusMessage
}

// ListAPI is the slice of the API client the list screens use.
type ListAPI interface {
	Get(ctx context.Context, path string, out any) error
	Delete(ctx context.Context, path string) error
	PatchJSON(ctx context.Context, path string, body, out any) error
}

// FetchAll replaces Items from the collection endpoint. On failure the
// banner shows the error and the previous items stay untouched.
func (l *ListController[T]) FetchAll(ctx context.Context) error {
	l.Loading = true
	var items []T
	if err := l.API.Get(ctx, l.Resource.Endpoint, &items); err != nil {
		l.Loading = false
		l.Status = errorMessage(fmt.Sprintf("Failed to fetch %ss", lower(l.Resource.label())))
		return err
	}
	l.Items = items
	l.Loading = false
	l.Status.Clear()
	return nil
}

// Filtered returns the rows matching the current search term.
func (l *ListController[T]) Filtered() []T {
	if l.Resource.SearchFields == nil {
		return l.Items
	}
	return Filter(l.Items, l.SearchTerm, l.Resource.SearchFields)
}

// Delete removes one record after interactive confirmation. On success the
// row is dropped from local state without a re-fetch; on failure the list is
// left unchanged and the banner reports the error.
func (l *ListController[T]) Delete(ctx context.Context, id int64) error {
	prompt := fmt.Sprintf("Are you sure you want to delete this %s?", lower(l.Resource.label()))
	if l.Confirm == nil || !l.Confirm(prompt) {
		return nil
	}
	if err := l.API.Delete(ctx, l.Resource.ItemPath(id)); err != nil {
		l.Status = errorMessage(fmt.Sprintf("Failed to delete %s", lower(l.Resource.label())))
		return err
	}
	kept := make([]T, 0, len(l.Items))
	for _, item := range l.Items {
		if l.Resource.ID(item) != id {
			kept = append(kept, item)
		}
	}
	l.Items = kept
	l.Status = successMessage(fmt.Sprintf("%s deleted successfully", l.Resource.label()))
	return nil
}

// Toggle PATCHes a single boolean field and flips local state only after the
// server confirms. Not optimistic: a failed PATCH leaves the row as it was.
func (l *ListController[T]) Toggle(ctx context.Context, id int64, field string, value bool, apply func(*T, bool)) error {
	if err := l.API.PatchJSON(ctx, l.Resource.ItemPath(id), map[string]bool{field: value}, nil); err != nil {
		l.Status = errorMessage(fmt.Sprintf("Failed to update %s status", lower(l.Resource.label())))
		return err
	}
	for i := range l.Items {
		if l.Resource.ID(l.Items[i]) == id {
			apply(&l.Items[i], value)
			break
		}
	}
	verb := "deactivated"
	if value {
		verb = "activated"
	}
	l.Status = successMessage(fmt.Sprintf("%s %s successfully", l.Resource.label(), verb))
	return nil
}

func lower(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'A' && b[0] <= 'Z' {
		b[0] += 'a' - 'A'
	}
	return string(b)
}
