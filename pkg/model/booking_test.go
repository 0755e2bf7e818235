package model

import "testing"

func newTestBooking() *Booking {
	return &Booking{
		ID:      1,
		UserID:  "alice",
		TrainID: "MUDE101",
		LineItems: []BookingLineItem{
			{Category: CategoryAdult, QuantityBooked: 2, QuantityActive: 2, UnitFarePaise: 100000},
			{Category: CategoryChild, QuantityBooked: 1, QuantityActive: 1, UnitFarePaise: 50000},
			{Category: CategoryInfant, QuantityBooked: 1, QuantityActive: 1, UnitFarePaise: 0},
		},
		Status: StatusActive,
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Booking)
		want   BookingStatus
	}{
		{
			name:   "all items fully active",
			mutate: func(b *Booking) {},
			want:   StatusActive,
		},
		{
			name: "one item partially drained",
			mutate: func(b *Booking) {
				b.LineItems[0].QuantityActive = 1
			},
			want: StatusPartiallyCancelled,
		},
		{
			name: "one item fully drained",
			mutate: func(b *Booking) {
				b.LineItems[1].QuantityActive = 0
			},
			want: StatusPartiallyCancelled,
		},
		{
			name: "everything drained",
			mutate: func(b *Booking) {
				for i := range b.LineItems {
					b.LineItems[i].QuantityActive = 0
				}
			},
			want: StatusFullyCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBooking()
			tt.mutate(b)
			if got := b.DeriveStatus(); got != tt.want {
				t.Errorf("DeriveStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDeriveStatusIsIdempotent(t *testing.T) {
	b := newTestBooking()
	b.LineItems[0].QuantityActive = 1

	first := b.DeriveStatus()
	second := b.DeriveStatus()
	if first != second {
		t.Errorf("DeriveStatus() changed between calls: %s then %s", first, second)
	}
}

func TestActiveSeatsExcludesInfants(t *testing.T) {
	b := newTestBooking()
	// 2 adults + 1 child occupy seats, the infant does not
	if got := b.ActiveSeats(); got != 3 {
		t.Errorf("ActiveSeats() = %d, want 3", got)
	}

	b.LineItems[0].QuantityActive = 0
	if got := b.ActiveSeats(); got != 1 {
		t.Errorf("ActiveSeats() after draining adults = %d, want 1", got)
	}
}

func TestTotalFarePaise(t *testing.T) {
	b := newTestBooking()
	// 2*100000 + 1*50000 + 1*0
	if got := b.TotalFarePaise(); got != 250000 {
		t.Errorf("TotalFarePaise() = %d, want 250000", got)
	}

	// Cancelling does not change what was originally paid
	b.LineItems[0].QuantityActive = 0
	if got := b.TotalFarePaise(); got != 250000 {
		t.Errorf("TotalFarePaise() after cancellation = %d, want 250000", got)
	}
}

func TestLineItemLookup(t *testing.T) {
	b := newTestBooking()

	item, ok := b.LineItem(CategoryChild)
	if !ok {
		t.Fatal("LineItem(child) not found")
	}
	if item.UnitFarePaise != 50000 {
		t.Errorf("LineItem(child).UnitFarePaise = %d, want 50000", item.UnitFarePaise)
	}

	// Returned pointer aliases the booking's own item
	item.QuantityActive = 0
	if b.LineItems[1].QuantityActive != 0 {
		t.Error("LineItem() should return a pointer into the booking")
	}

	if _, ok := b.LineItem(CategorySenior); ok {
		t.Error("LineItem(senior) = found, want missing")
	}
}

func TestCategoryDiscounts(t *testing.T) {
	tests := []struct {
		category PassengerCategory
		discount int64
		seat     bool
	}{
		{CategoryAdult, 0, true},
		{CategoryChild, 50, true},
		{CategorySenior, 30, true},
		{CategoryInfant, 100, false},
	}

	for _, tt := range tests {
		if got := tt.category.DiscountPercent(); got != tt.discount {
			t.Errorf("%s.DiscountPercent() = %d, want %d", tt.category, got, tt.discount)
		}
		if got := tt.category.OccupiesSeat(); got != tt.seat {
			t.Errorf("%s.OccupiesSeat() = %v, want %v", tt.category, got, tt.seat)
		}
	}
}

func TestSeatsNeededExcludesInfants(t *testing.T) {
	req := &BookingRequest{
		UserID:  "alice",
		TrainID: "MUDE101",
		Passengers: map[PassengerCategory]int{
			CategoryAdult:  2,
			CategoryInfant: 2,
		},
	}

	if got := req.SeatsNeeded(); got != 2 {
		t.Errorf("SeatsNeeded() = %d, want 2", got)
	}
	if got := req.TicketCount(); got != 4 {
		t.Errorf("TicketCount() = %d, want 4", got)
	}
}
