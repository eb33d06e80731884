package api

import "net/url"

// SortDirection orders list results.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ListQuery carries the filter and sort parameters accepted by the listing
// endpoints. Empty fields are omitted from the request entirely, matching
// what the backend expects.
type ListQuery struct {
	Name          string
	Email         string
	Address       string
	Role          string
	SortField     string
	SortDirection SortDirection
}

// Values converts the query to URL parameters, dropping empty values.
func (q ListQuery) Values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("name", q.Name)
	set("email", q.Email)
	set("address", q.Address)
	set("role", q.Role)
	set("sortField", q.SortField)
	set("sortDirection", string(q.SortDirection))
	return v
}
