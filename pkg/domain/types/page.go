package types

// PageKey identifies a client-side page the assistant can navigate to
type PageKey string

const (
	PageHome           PageKey = "home"
	PageTimeline       PageKey = "tijdlijn"
	PageDeadlines      PageKey = "deadlines"
	PageDiscrimination PageKey = "discriminatie"
	PageRights         PageKey = "rechten"
	PageContact        PageKey = "contact"
)

// AllPageKeys returns all valid page keys
func AllPageKeys() []PageKey {
	return []PageKey{
		PageHome,
		PageTimeline,
		PageDeadlines,
		PageDiscrimination,
		PageRights,
		PageContact,
	}
}

var pageRoutes = map[PageKey]struct {
	route string
	name  string
}{
	PageHome:           {route: "/", name: "startpagina"},
	PageTimeline:       {route: "/tijdlijn", name: "tijdlijn"},
	PageDeadlines:      {route: "/deadlines", name: "deadline-overzicht"},
	PageDiscrimination: {route: "/discriminatie-check", name: "discriminatie-check"},
	PageRights:         {route: "/je-rechten", name: "je-rechten pagina"},
	PageContact:        {route: "/contact", name: "contactpagina"},
}

// IsValid checks if the page key is valid
func (p PageKey) IsValid() bool {
	_, ok := pageRoutes[p]
	return ok
}

// Route returns the client route path for the page key. An unknown key maps
// to the root route; navigation must never fail the turn.
func (p PageKey) Route() string {
	if entry, ok := pageRoutes[p]; ok {
		return entry.route
	}
	return "/"
}

// DisplayName returns the human-readable Dutch page name. An unknown key maps
// to the home page name.
func (p PageKey) DisplayName() string {
	if entry, ok := pageRoutes[p]; ok {
		return entry.name
	}
	return pageRoutes[PageHome].name
}

// String returns the string representation of the page key
func (p PageKey) String() string {
	return string(p)
}
