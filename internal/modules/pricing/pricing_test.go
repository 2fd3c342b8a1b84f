package pricing

import (
	"testing"

	"studiorental/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testCatalog() *domain.Catalog {
	return domain.NewCatalog(
		[]domain.Space{
			{ID: "loft", Name: "Loft", PricePerHour: 300, PricePerDay: 1250, Available: true},
			{ID: "cyclorama", Name: "Cyclorama", PricePerHour: 450, PricePerDay: 2000, Available: true},
		},
		[]domain.Equipment{
			{ID: "strobe-kit", Name: "Strobe kit", PricePerHour: 50, PricePerDay: 200, Available: true},
			{ID: "fog-machine", Name: "Fog machine", PricePerHour: 25, PricePerDay: 90, Available: false},
		},
		[]domain.Prop{
			{ID: "velvet-sofa", Name: "Velvet sofa", PricePerDay: 500, Available: true},
			{ID: "neon-sign", Name: "Neon sign", PricePerDay: 150, Available: true},
		},
		"SEK",
	)
}

func TestTotal_HourlySpace(t *testing.T) {
	cat := testCatalog()
	sel := &domain.Selection{Mode: domain.ModeHourly}
	sel.ToggleSpace("loft")
	sel.ToggleHour(10)
	sel.ToggleHour(11)
	sel.ToggleHour(12)

	// 300/hour x 3 hours
	assert.Equal(t, int64(900), Total(sel, cat))
}

func TestTotal_FullDaySpace(t *testing.T) {
	cat := testCatalog()
	sel := &domain.Selection{Mode: domain.ModeFullDay}
	sel.ToggleSpace("loft")

	assert.Equal(t, int64(1250), Total(sel, cat))
}

func TestTotal_ModeConsistency(t *testing.T) {
	cat := testCatalog()

	sel := &domain.Selection{Mode: domain.ModeFullDay}
	sel.ToggleSpace("loft")
	sel.ToggleSpace("cyclorama")
	sel.ToggleEquipment("strobe-kit")
	assert.Equal(t, int64(1250+2000+200), Total(sel, cat))

	sel = &domain.Selection{Mode: domain.ModeHourly}
	sel.ToggleSpace("loft")
	sel.ToggleSpace("cyclorama")
	sel.ToggleEquipment("strobe-kit")
	sel.ToggleHour(9)
	sel.ToggleHour(10)
	assert.Equal(t, int64((300+450+50)*2), Total(sel, cat))
}

func TestTotal_PropsIgnoreMode(t *testing.T) {
	cat := testCatalog()

	for _, mode := range []domain.BookingMode{domain.ModeHourly, domain.ModeFullDay} {
		sel := &domain.Selection{Mode: mode}
		sel.ToggleProp("velvet-sofa")
		assert.Equal(t, int64(500), Total(sel, cat), "mode %s", mode)
	}
}

func TestTotal_PropContributionUnchangedByModeSwitch(t *testing.T) {
	cat := testCatalog()
	sel := &domain.Selection{Mode: domain.ModeHourly}
	sel.ToggleProp("velvet-sofa")
	sel.ToggleProp("neon-sign")
	before := Total(sel, cat)

	sel.SetMode(domain.ModeFullDay)
	assert.Equal(t, before, Total(sel, cat))
}

func TestTotal_UnavailableEquipmentStillPriced(t *testing.T) {
	cat := testCatalog()
	sel := &domain.Selection{Mode: domain.ModeFullDay}
	sel.ToggleEquipment("fog-machine")

	assert.Equal(t, int64(90), Total(sel, cat))
}

func TestTotal_Monotonicity(t *testing.T) {
	cat := testCatalog()
	sel := &domain.Selection{Mode: domain.ModeHourly}
	sel.ToggleHour(14)

	prev := Total(sel, cat)
	adds := []func(){
		func() { sel.ToggleSpace("loft") },
		func() { sel.ToggleSpace("cyclorama") },
		func() { sel.ToggleEquipment("strobe-kit") },
		func() { sel.ToggleProp("velvet-sofa") },
		func() { sel.ToggleHour(15) },
	}
	for i, add := range adds {
		add()
		cur := Total(sel, cat)
		assert.GreaterOrEqual(t, cur, prev, "add step %d decreased total", i)
		prev = cur
	}

	// removing never increases
	sel.ToggleProp("velvet-sofa")
	cur := Total(sel, cat)
	assert.LessOrEqual(t, cur, prev)
}

func TestTotal_EmptySelection(t *testing.T) {
	cat := testCatalog()
	assert.Equal(t, int64(0), Total(&domain.Selection{}, cat))
}

func TestTotal_HourlyWithNoHoursIsZeroForMeteredItems(t *testing.T) {
	cat := testCatalog()
	sel := &domain.Selection{Mode: domain.ModeHourly}
	sel.ToggleSpace("loft")
	sel.ToggleProp("neon-sign")

	// the space contributes nothing without hours; the prop still charges
	assert.Equal(t, int64(150), Total(sel, cat))
}
