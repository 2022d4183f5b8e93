package service

import (
	"fmt"
	"sort"

	"github.com/oindrieel/purulia/internal/model"
)

// Slot fillers used when a day's zone runs out of locations
const (
	FillerMorning   = "Relax"
	FillerAfternoon = "Local Exploration"
	FillerEvening   = "Sunset View"
)

// Per-location scoring: every place starts at baseScore, and each
// matched interest tag adds interestBonus.
const (
	baseScore     = 1
	interestBonus = 5
)

// TripPlanner turns the scored, tagged catalog into a day-by-day
// schedule. It holds a read-only reference to the catalog locations and
// never mutates them.
type TripPlanner struct {
	locations []model.Location
}

// NewTripPlanner creates a planner over the given locations. Slice order
// is the tie-break order for equal scores, so pass catalog order.
func NewTripPlanner(locations []model.Location) *TripPlanner {
	return &TripPlanner{locations: locations}
}

type scoredLocation struct {
	location model.Location
	score    int
}

// PlanTrip builds an itinerary of at most `days` entries, one zone per
// day. Zones with more locations come first; equal-sized zones are
// ordered alphabetically by name so the plan is deterministic. A days
// value of zero or below yields an empty itinerary, and fewer zones
// than days yields a shorter itinerary rather than padding.
func (p *TripPlanner) PlanTrip(days int, interests []string) model.Itinerary {
	// Score every location against the requested interests
	scored := make([]scoredLocation, len(p.locations))
	for i, loc := range p.locations {
		score := baseScore
		for _, interest := range interests {
			if loc.HasTag(interest) {
				score += interestBonus
			}
		}
		scored[i] = scoredLocation{location: loc, score: score}
	}

	// Stable sort keeps catalog order between equal scores
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	// Cluster by zone, preserving the score-descending order within each
	zones := make(map[string][]model.Location)
	zoneNames := make([]string, 0)
	for _, s := range scored {
		zone := s.location.Zone
		if _, ok := zones[zone]; !ok {
			zoneNames = append(zoneNames, zone)
		}
		zones[zone] = append(zones[zone], s.location)
	}

	// Rank zones by cluster size, alphabetical on ties
	sort.SliceStable(zoneNames, func(i, j int) bool {
		a, b := zoneNames[i], zoneNames[j]
		if len(zones[a]) != len(zones[b]) {
			return len(zones[a]) > len(zones[b])
		}
		return a < b
	})

	itinerary := model.Itinerary{}
	for day := 1; day <= days && day <= len(zoneNames); day++ {
		zone := zoneNames[day-1]

		// Top 3 per zone to avoid over-scheduling a day
		stops := zones[zone]
		if len(stops) > 3 {
			stops = stops[:3]
		}

		plan := model.DayPlan{
			Day:       fmt.Sprintf("Day %d", day),
			Zone:      zone,
			Morning:   FillerMorning,
			Afternoon: FillerAfternoon,
			Evening:   FillerEvening,
		}
		if len(stops) > 0 {
			plan.Morning = stops[0].Name
		}
		if len(stops) > 1 {
			plan.Afternoon = stops[1].Name
		}
		if len(stops) > 2 {
			plan.Evening = stops[2].Name
		}
		itinerary = append(itinerary, plan)
	}
	return itinerary
}
