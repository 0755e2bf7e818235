// Package seed generates a plausible train catalogue for fresh databases.
// Generation is pure: the same parameters and random source always produce
// the same catalogue, which keeps tests deterministic.
package seed

import (
	"fmt"
	"math/rand"
	"railbook/pkg/model"
	"railbook/pkg/money"
	"strings"
)

var stations = []string{
	"Mumbai",
	"Delhi",
	"Kolkata",
	"Chennai",
	"Bangalore",
	"Hyderabad",
	"Ahmedabad",
	"Pune",
	"Jaipur",
	"Lucknow",
}

var namePrefixes = []string{
	"Rajdhani",
	"Shatabdi",
	"Duronto",
	"Garib Rath",
	"Superfast",
}

// Params bounds the generated catalogue. Fares are in whole rupees and get
// converted to paise on the generated trains.
type Params struct {
	MinFareRupees     int
	MaxFareRupees     int
	MinSeats          int
	MaxSeats          int
	MinTrainsPerRoute int
	MaxTrainsPerRoute int
}

// Generate builds trains for every ordered station pair. Train IDs follow the
// scheme <first two letters of origin><first two letters of destination><3-digit
// number>, e.g. MUDE421 for a Mumbai to Delhi run.
func Generate(params Params, rng *rand.Rand) []*model.Train {
	var trains []*model.Train
	seen := make(map[string]bool)

	for _, origin := range stations {
		for _, destination := range stations {
			if origin == destination {
				continue
			}

			count := randBetween(rng, params.MinTrainsPerRoute, params.MaxTrainsPerRoute)
			for i := 0; i < count; i++ {
				id := routeTrainID(rng, origin, destination)
				for seen[id] {
					id = routeTrainID(rng, origin, destination)
				}
				seen[id] = true

				// Fares land on multiples of ten rupees, like real tariffs.
				// Flooring a single-digit minimum would hit zero, and seeded
				// trains must always have a positive fare.
				fareRupees := randBetween(rng, params.MinFareRupees, params.MaxFareRupees) / 10 * 10
				if fareRupees < 10 {
					fareRupees = 10
				}
				seats := randBetween(rng, params.MinSeats, params.MaxSeats)

				trains = append(trains, &model.Train{
					ID:             id,
					Name:           fmt.Sprintf("%s %s Express", namePrefixes[rng.Intn(len(namePrefixes))], origin),
					Origin:         origin,
					Destination:    destination,
					Departure:      fmt.Sprintf("%02d:%02d", rng.Intn(24), rng.Intn(12)*5),
					Arrival:        fmt.Sprintf("%02d:%02d", rng.Intn(24), rng.Intn(12)*5),
					BaseFarePaise:  money.FromRupees(int64(fareRupees)),
					TotalSeats:     seats,
					AvailableSeats: seats,
				})
			}
		}
	}

	return trains
}

func routeTrainID(rng *rand.Rand, origin, destination string) string {
	prefix := strings.ToUpper(origin[:2] + destination[:2])
	return fmt.Sprintf("%s%d", prefix, 100+rng.Intn(900))
}

func randBetween(rng *rand.Rand, low, high int) int {
	if high <= low {
		return low
	}
	return low + rng.Intn(high-low+1)
}
