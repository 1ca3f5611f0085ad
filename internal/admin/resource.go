package admin

import (
	"fmt"
	"strings"

	"backoffice/internal/apiclient"
)

// Resource describes one entity's manage/add/edit wiring: where its
// collection lives, which fields the search box scans, how a row is
// identified and labeled for banners.
type Resource[T any] struct {
	// Label names the entity in user-facing banners ("Country", "Visa").
	Label string
	// Endpoint is the collection path with trailing slash ("/api/countries/").
	Endpoint string
	// SearchFields lists the 1-4 values the manage search matches against.
	SearchFields func(T) []string
	// ID extracts the record id.
	ID func(T) int64
	// Defaults seeds a blank add form.
	Defaults func() T
	// Validate runs the minimal client-side checks before any network call.
	// A nil Validate accepts everything.
	Validate func(T) error
	// EncodeForm builds the multipart body. When nil the submit goes as JSON.
	// Multipart is used whenever the entity has (or could have) file fields,
	// so explicit clears reach the server.
	EncodeForm func(T) (*apiclient.Form, error)
}

// ItemPath returns the detail endpoint for one record.
func (r Resource[T]) ItemPath(id int64) string {
	return fmt.Sprintf("%s%d/", r.Endpoint, id)
}

func (r Resource[T]) label() string {
	if r.Label != "" {
		return r.Label
	}
	return strings.Trim(r.Endpoint, "/")
}
