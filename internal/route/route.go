// Package route maps the app's two logical views onto URL-style paths.
// A Route round-trips through its path string:
//   - Home:  "/"
//   - Team:  "/team/<name>" with the name percent-escaped
//
// The team segment is carried raw (URL-decoded but not case-normalized);
// case-insensitive matching belongs to the lookup, not the router.
package route

import (
	"fmt"
	"net/url"
	"strings"
)

// Kind identifies which view a Route addresses.
type Kind int

const (
	KindHome Kind = iota
	KindTeam
)

// Route addresses one view plus its parameters.
type Route struct {
	kind Kind
	team string
}

// Home returns the route for the home view.
func Home() Route {
	return Route{kind: KindHome}
}

// Team returns the lookup route for the given team name, carried verbatim.
func Team(name string) Route {
	return Route{kind: KindTeam, team: name}
}

// Kind returns which view the route addresses.
func (r Route) Kind() Kind {
	return r.kind
}

// TeamName returns the team parameter. Empty for non-team routes.
func (r Route) TeamName() string {
	return r.team
}

// Path renders the route as a URL path.
func (r Route) Path() string {
	if r.kind == KindTeam {
		return "/team/" + url.PathEscape(r.team)
	}
	return "/"
}

// String implements fmt.Stringer as the path form.
func (r Route) String() string {
	return r.Path()
}

// Parse maps a URL path onto a Route. Recognized forms are "/" and
// "/team/<name>"; the name segment is unescaped before use. Anything else
// is an error so callers can fall back to the home route explicitly.
func Parse(path string) (Route, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "/" {
		return Home(), nil
	}

	trimmed := strings.TrimPrefix(path, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 || parts[0] != "team" {
		return Route{}, fmt.Errorf("route: unrecognized path %q", path)
	}

	name, err := url.PathUnescape(parts[1])
	if err != nil {
		return Route{}, fmt.Errorf("route: bad team segment %q: %w", parts[1], err)
	}
	if name == "" {
		return Route{}, fmt.Errorf("route: empty team segment in %q", path)
	}
	return Team(name), nil
}
