package access

import "net/http"

// Table maps "METHOD route-template" to the route's policy. It is filled while
// routes are registered and only read once the server is serving.
type Table struct {
	policies map[string]Policy
}

func NewTable() *Table {
	return &Table{policies: make(map[string]Policy)}
}

func key(method, path string) string {
	return method + " " + path
}

// Set records the policy of a route template such as "/stores/:id".
func (t *Table) Set(method, path string, policy Policy) {
	t.policies[key(method, path)] = policy
}

// Lookup returns the policy of a route. Unknown routes require authentication.
func (t *Table) Lookup(method, path string) Policy {
	if method == http.MethodHead {
		method = http.MethodGet
	}

	if policy, ok := t.policies[key(method, path)]; ok {
		return policy
	}

	return Authenticated
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.policies)
}
