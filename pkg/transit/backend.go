package transit

// Capabilities lists the optional parameters a backend accepts. Builders
// silently drop parameters the backend does not understand.
type Capabilities struct {
	Transportations bool
	Accessibility   bool
	Options         bool
	StationID       bool
}

// Backend is a deployment of the transport API.
type Backend struct {
	Name         string
	BaseURL      string
	Capabilities Capabilities
}

// Production is the public transport.opendata.ch API.
var Production = Backend{
	Name:    "production",
	BaseURL: "https://transport.opendata.ch/v1",
	Capabilities: Capabilities{
		Transportations: true,
		Accessibility:   true,
		Options:         true,
		StationID:       true,
	},
}

// Custom returns a backend with every capability enabled at baseURL,
// for test or beta hosts.
func Custom(name, baseURL string) Backend {
	b := Production
	b.Name = name
	b.BaseURL = baseURL
	return b
}

var backends = map[string]Backend{
	Production.Name: Production,
}

// LookupBackend finds a preset backend by name.
func LookupBackend(name string) (Backend, bool) {
	b, ok := backends[name]
	return b, ok
}
