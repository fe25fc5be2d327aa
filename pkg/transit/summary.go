package transit

import (
	"sort"
	"time"
)

// SummarizedRoute holds the next few board entries for one line and destination.
type SummarizedRoute struct {
	LineName    string
	Destination string
	Departures  []Journey
}

// departureTime is the effective time a stationboard entry leaves its stop.
func departureTime(j Journey) time.Time {
	if j.Stop == nil {
		return time.Time{}
	}
	return j.Stop.EffectiveDeparture()
}

// SummarizeStationboard sorts board entries by effective departure and groups
// them by line and destination, keeping at most maxPerRoute per group.
// This keeps high-frequency lines from crowding out everything else.
func SummarizeStationboard(journeys []Journey, maxPerRoute int) []SummarizedRoute {
	var valid []Journey
	for _, j := range journeys {
		if !departureTime(j).IsZero() {
			valid = append(valid, j)
		}
	}

	sort.SliceStable(valid, func(i, k int) bool {
		return departureTime(valid[i]).Before(departureTime(valid[k]))
	})

	routeMap := make(map[string]*SummarizedRoute)
	var routeKeys []string // first appearance, which is now chronological

	for _, j := range valid {
		destination := ""
		if j.To != nil {
			destination = *j.To
		}
		line := j.LineName()

		key := line + "|" + destination
		if _, exists := routeMap[key]; !exists {
			routeMap[key] = &SummarizedRoute{
				LineName:    line,
				Destination: destination,
			}
			routeKeys = append(routeKeys, key)
		}

		if len(routeMap[key].Departures) < maxPerRoute {
			routeMap[key].Departures = append(routeMap[key].Departures, j)
		}
	}

	var result []SummarizedRoute
	for _, key := range routeKeys {
		result = append(result, *routeMap[key])
	}

	return result
}
