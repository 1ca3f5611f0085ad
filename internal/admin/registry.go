package admin

import (
	"fmt"
	"strings"
)

// Entry binds a sidebar menu key to its screens and API endpoint. ActionLess
// entries are headings or placeholders with no navigation target.
type Entry struct {
	Key        string
	Title      string
	ListRoute  string
	AddRoute   string
	EditRoute  string // pattern with one %d
	Endpoint   string
	ActionLess bool
}

// Registry is the explicit entity-to-route table the sidebar dispatches
// through, replacing lookup by display string.
type Registry struct {
	entries map[string]Entry
	order   []string
}

// NewRegistry validates that every entry either names its targets or is
// explicitly action-less, so a menu click can never dead-end at runtime.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("registry entry with empty key (title %q)", e.Title)
		}
		if _, dup := r.entries[e.Key]; dup {
			return nil, fmt.Errorf("duplicate registry key %q", e.Key)
		}
		if !e.ActionLess {
			if e.ListRoute == "" || e.AddRoute == "" {
				return nil, fmt.Errorf("registry entry %q missing list/add route", e.Key)
			}
			if e.EditRoute != "" && !strings.Contains(e.EditRoute, "%d") {
				return nil, fmt.Errorf("registry entry %q edit route has no id placeholder", e.Key)
			}
		}
		r.entries[e.Key] = e
		r.order = append(r.order, e.Key)
	}
	return r, nil
}

func (r *Registry) Lookup(key string) (Entry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Entries returns the menu in declaration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.entries[k])
	}
	return out
}

// DefaultRegistry lists every back-office entity the sidebar exposes.
func DefaultRegistry() (*Registry, error) {
	return NewRegistry([]Entry{
		{Key: "countries", Title: "Countries", ListRoute: "/admin/countries", AddRoute: "/admin/countries/add", EditRoute: "/admin/countries/edit/%d", Endpoint: "/api/countries/"},
		{Key: "visas", Title: "Visas", ListRoute: "/admin/visas", AddRoute: "/admin/visas/add", EditRoute: "/admin/visas/edit/%d", Endpoint: "/api/visas/"},
		{Key: "visa-applications", Title: "Visa Applications", ListRoute: "/admin/visa-applications", AddRoute: "/admin/visa-applications/add", EditRoute: "/admin/visa-applications/edit/%d", Endpoint: "/api/visa-applications/"},
		{Key: "destinations", Title: "Destinations", ListRoute: "/admin/destinations", AddRoute: "/admin/destinations/add", EditRoute: "/admin/destinations/edit/%d", Endpoint: "/api/destinations/"},
		{Key: "umrah-destinations", Title: "Umrah Destinations", ListRoute: "/admin/umrah-destinations", AddRoute: "/admin/umrah-destinations/add", EditRoute: "/admin/umrah-destinations/edit/%d", Endpoint: "/api/umrah-destinations/"},
		{Key: "packages", Title: "Holiday Packages", ListRoute: "/admin/packages", AddRoute: "/admin/packages/add", EditRoute: "/admin/packages/edit/%d", Endpoint: "/api/packages/"},
		{Key: "starting-cities", Title: "Starting Cities", ListRoute: "/admin/starting-cities", AddRoute: "/admin/starting-cities/add", EditRoute: "/admin/starting-cities/edit/%d", Endpoint: "/api/starting-cities/"},
		{Key: "itinerary-masters", Title: "Itinerary Masters", ListRoute: "/admin/itinerary-masters", AddRoute: "/admin/itinerary-masters/add", EditRoute: "/admin/itinerary-masters/edit/%d", Endpoint: "/api/itinerary-masters/"},
		{Key: "nationalities", Title: "Nationalities", ListRoute: "/admin/nationalities", AddRoute: "/admin/nationalities/add", EditRoute: "/admin/nationalities/edit/%d", Endpoint: "/api/nationalities/"},
		{Key: "suppliers", Title: "Suppliers", ListRoute: "/admin/suppliers", AddRoute: "/admin/suppliers/add", EditRoute: "/admin/suppliers/edit/%d", Endpoint: "/api/suppliers/"},
		{Key: "users", Title: "Users", ListRoute: "/admin/users", AddRoute: "/admin/users/add", EditRoute: "/admin/users/edit/%d", Endpoint: "/api/users/"},
		{Key: "enquiries", Title: "Enquiries", ListRoute: "/admin/enquiries", AddRoute: "/admin/enquiries/add", Endpoint: "/api/enquiry-form/"},
		{Key: "holiday-enquiries", Title: "Holiday Enquiries", ListRoute: "/admin/holiday-enquiries", AddRoute: "/admin/holiday-enquiries/add", Endpoint: "/api/holiday-form/"},
		{Key: "umrah-enquiries", Title: "Umrah Enquiries", ListRoute: "/admin/umrah-enquiries", AddRoute: "/admin/umrah-enquiries/add", Endpoint: "/api/umrah-form/"},
		{Key: "dashboard", Title: "Dashboard", ActionLess: true},
	})
}
