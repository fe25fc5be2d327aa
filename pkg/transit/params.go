package transit

import "fmt"

// QueryType restricts what kind of location a search returns.
type QueryType string

const (
	QueryAll     QueryType = "all"
	QueryStation QueryType = "station"
	QueryPOI     QueryType = "poi"
	QueryAddress QueryType = "address"
)

// TransportationType filters connections and boards by mode.
type TransportationType string

const (
	TransportationICETGVRJ           TransportationType = "ice_tgv_rj"
	TransportationECIC               TransportationType = "ec_ic"
	TransportationIR                 TransportationType = "ir"
	TransportationRED                TransportationType = "re_d"
	TransportationShip               TransportationType = "ship"
	TransportationSSNR               TransportationType = "s_sn_r"
	TransportationBus                TransportationType = "bus"
	TransportationCableway           TransportationType = "cableway"
	TransportationARZExt             TransportationType = "arz_ext"
	TransportationTramwayUnderground TransportationType = "tramway_underground"
)

// TimeType says whether a connection's date/time is a departure or an arrival.
type TimeType int

const (
	TimeDeparture TimeType = iota
	TimeArrival
)

// AccessibilityType is the boarding assistance a connection must support.
type AccessibilityType string

const (
	AccessibilityAny                 AccessibilityType = ""
	AccessibilityIndependentBoarding AccessibilityType = "independent_boarding"
	AccessibilityAssistedBoarding    AccessibilityType = "assisted_boarding"
	AccessibilityAdvancedNotice      AccessibilityType = "advanced_notice"
)

// Option is an extra connection requirement sent as a "name=1" flag.
type Option string

const (
	OptionDirect    Option = "direct"
	OptionSleeper   Option = "sleeper"
	OptionCouchette Option = "couchette"
	OptionBike      Option = "bike"
)

// DefaultLimit is the number of connections the API returns when limit is not sent.
const DefaultLimit = 4

// ConnectionsParams enumerates every parameter of a connection search. The
// zero value of each optional field is its default and is not sent.
type ConnectionsParams struct {
	From string
	To   string

	// Limit is the maximum number of connections; 0 means DefaultLimit.
	Limit int
	// Page is the pagination offset.
	Page int

	// Date (YYYY-MM-DD) and Time (HH:MM) are passed through verbatim.
	Date string
	Time string

	Transportations []TransportationType
	TimeType        TimeType
	Accessibility   AccessibilityType
	Options         []Option
}

// StationboardParams enumerates every parameter of a departure board request.
type StationboardParams struct {
	Station   string
	StationID string

	// DateTime (YYYY-MM-DD HH:MM) is passed through verbatim.
	DateTime        string
	Transportations []TransportationType

	// Limit is the number of entries; 0 leaves it to the server.
	Limit int
	// Arrivals requests an arrival board instead of departures.
	Arrivals bool
}

// ParseQueryType maps CLI input to a QueryType.
func ParseQueryType(s string) (QueryType, error) {
	switch q := QueryType(s); q {
	case QueryAll, QueryStation, QueryPOI, QueryAddress:
		return q, nil
	case "":
		return QueryAll, nil
	}
	return "", invalidParameter(fmt.Sprintf("unknown location type %q", s))
}

// ParseTransportation maps CLI input to a TransportationType.
func ParseTransportation(s string) (TransportationType, error) {
	switch t := TransportationType(s); t {
	case TransportationICETGVRJ, TransportationECIC, TransportationIR, TransportationRED,
		TransportationShip, TransportationSSNR, TransportationBus, TransportationCableway,
		TransportationARZExt, TransportationTramwayUnderground:
		return t, nil
	}
	return "", invalidParameter(fmt.Sprintf("unknown transportation %q", s))
}

// ParseAccessibility maps CLI input to an AccessibilityType; "any" and "" are the default.
func ParseAccessibility(s string) (AccessibilityType, error) {
	switch a := AccessibilityType(s); a {
	case AccessibilityIndependentBoarding, AccessibilityAssistedBoarding, AccessibilityAdvancedNotice:
		return a, nil
	case "", "any":
		return AccessibilityAny, nil
	}
	return "", invalidParameter(fmt.Sprintf("unknown accessibility %q", s))
}

// ParseOption maps CLI input to an Option.
func ParseOption(s string) (Option, error) {
	switch o := Option(s); o {
	case OptionDirect, OptionSleeper, OptionCouchette, OptionBike:
		return o, nil
	}
	return "", invalidParameter(fmt.Sprintf("unknown option %q", s))
}
