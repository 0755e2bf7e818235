package seed

import (
	"math/rand"
	"regexp"
	"testing"
)

var testParams = Params{
	MinFareRupees:     300,
	MaxFareRupees:     5000,
	MinSeats:          10,
	MaxSeats:          200,
	MinTrainsPerRoute: 2,
	MaxTrainsPerRoute: 6,
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate(testParams, rand.New(rand.NewSource(42)))
	second := Generate(testParams, rand.New(rand.NewSource(42)))

	if len(first) != len(second) {
		t.Fatalf("generated %d then %d trains from the same seed", len(first), len(second))
	}
	for i := range first {
		if *first[i] != *second[i] {
			t.Fatalf("train %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerateCoversEveryRoute(t *testing.T) {
	trains := Generate(testParams, rand.New(rand.NewSource(1)))

	routes := make(map[string]int)
	for _, train := range trains {
		routes[train.Origin+"->"+train.Destination]++
	}

	// 10 stations, ordered pairs
	if len(routes) != 90 {
		t.Fatalf("got %d routes, want 90", len(routes))
	}
	for route, count := range routes {
		if count < testParams.MinTrainsPerRoute || count > testParams.MaxTrainsPerRoute {
			t.Errorf("route %s has %d trains, want between %d and %d",
				route, count, testParams.MinTrainsPerRoute, testParams.MaxTrainsPerRoute)
		}
	}
}

func TestGenerateFareStaysPositiveForTinyMinimums(t *testing.T) {
	params := testParams
	params.MinFareRupees = 1
	params.MaxFareRupees = 9

	trains := Generate(params, rand.New(rand.NewSource(3)))
	for _, train := range trains {
		if train.BaseFarePaise <= 0 {
			t.Fatalf("train %s has non-positive fare %d paise", train.ID, train.BaseFarePaise)
		}
		if train.BaseFarePaise != 1000 {
			t.Errorf("train %s fare = %d paise, want the ten rupee floor", train.ID, train.BaseFarePaise)
		}
	}
}

func TestGenerateTrainShape(t *testing.T) {
	idPattern := regexp.MustCompile(`^[A-Z]{4}[1-9][0-9]{2}$`)
	trains := Generate(testParams, rand.New(rand.NewSource(7)))

	seen := make(map[string]bool)
	for _, train := range trains {
		if !idPattern.MatchString(train.ID) {
			t.Errorf("train ID %q does not match the route-prefix scheme", train.ID)
		}
		if seen[train.ID] {
			t.Errorf("duplicate train ID %q", train.ID)
		}
		seen[train.ID] = true

		if train.AvailableSeats != train.TotalSeats {
			t.Errorf("train %s starts with %d/%d seats, want full availability",
				train.ID, train.AvailableSeats, train.TotalSeats)
		}
		if train.TotalSeats < testParams.MinSeats || train.TotalSeats > testParams.MaxSeats {
			t.Errorf("train %s has %d seats, want between %d and %d",
				train.ID, train.TotalSeats, testParams.MinSeats, testParams.MaxSeats)
		}

		fareRupees := train.BaseFarePaise / 100
		if fareRupees%10 != 0 {
			t.Errorf("train %s fare %d rupees is not a multiple of ten", train.ID, fareRupees)
		}
		if fareRupees < int64(testParams.MinFareRupees/10*10) || fareRupees > int64(testParams.MaxFareRupees) {
			t.Errorf("train %s fare %d rupees is out of range", train.ID, fareRupees)
		}
	}
}
