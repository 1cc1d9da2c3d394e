package salesservice

import (
	"testing"
	"time"

	"github.com/ourilentes/premios/internal/domain"
	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	d, _ := time.Parse("2006-01-02", value)
	return d
}

func fixtureSales() []domain.Sale {
	return []domain.Sale{
		{ID: "s1", Data: day("2024-01-10"), VendedorID: "u1", VendedorNome: "Ana", Loja: "Centro", Lente: "Multifocal", Tratamento: "Antirreflexo", Status: domain.StatusPago},
		{ID: "s2", Data: day("2024-01-15"), VendedorID: "u2", VendedorNome: "Bruno", Loja: "Shopping", Lente: "Visão simples", Tratamento: "Blue cut", Status: domain.StatusEmAberto},
		{ID: "s3", Data: day("2024-01-15"), VendedorID: "u1", VendedorNome: "Ana", Loja: "Centro", Lente: "Visão simples", Tratamento: "Antirreflexo", Status: domain.StatusEmAberto},
		{ID: "s4", Data: day("2024-02-01"), VendedorID: "u2", VendedorNome: "Bruno", Loja: "Shopping", Lente: "Multifocal", Tratamento: "Fotossensível", Status: domain.StatusPago},
	}
}

func TestComputeViewScoping(t *testing.T) {
	sales := fixtureSales()

	tests := []struct {
		name        string
		user        *domain.User
		expectedIDs []string
	}{
		{
			name:        "Admin sees everything",
			user:        &domain.User{ID: "admin", Role: domain.RoleAdmin},
			expectedIDs: []string{"s4", "s2", "s3", "s1"},
		},
		{
			name:        "Seller sees only own sales",
			user:        &domain.User{ID: "u1", Role: domain.RoleUser},
			expectedIDs: []string{"s3", "s1"},
		},
		{
			name:        "Seller with no sales sees nothing",
			user:        &domain.User{ID: "u3", Role: domain.RoleUser},
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, summary := ComputeView(sales, tt.user, time.Time{}, time.Time{}, nil)

			ids := make([]string, 0, len(visible))
			for _, sale := range visible {
				ids = append(ids, sale.ID)
			}
			assert.Equal(t, tt.expectedIDs, ids)
			assert.Equal(t, len(visible), summary.Pago+summary.EmAberto)
		})
	}
}

func TestComputeViewStableSort(t *testing.T) {
	admin := &domain.User{ID: "admin", Role: domain.RoleAdmin}
	sales := fixtureSales()

	visible, _ := ComputeView(sales, admin, time.Time{}, time.Time{}, nil)

	// Newest first; s2 and s3 share 2024-01-15 and must keep input order.
	assert.Equal(t, []string{"s4", "s2", "s3", "s1"}, idsOf(visible))
}

func TestComputeViewDateRange(t *testing.T) {
	admin := &domain.User{ID: "admin", Role: domain.RoleAdmin}
	sales := fixtureSales()

	tests := []struct {
		name        string
		from        string
		to          string
		expectedIDs []string
	}{
		{
			name:        "Inclusive bounds",
			from:        "2024-01-10",
			to:          "2024-01-15",
			expectedIDs: []string{"s2", "s3", "s1"},
		},
		{
			name:        "Only from bound",
			from:        "2024-01-15",
			expectedIDs: []string{"s4", "s2", "s3"},
		},
		{
			name:        "Only to bound",
			to:          "2024-01-10",
			expectedIDs: []string{"s1"},
		},
		{
			name:        "Empty range",
			from:        "2024-03-01",
			to:          "2024-03-31",
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var from, to time.Time
			if tt.from != "" {
				from = day(tt.from)
			}
			if tt.to != "" {
				to = day(tt.to)
			}

			visible, _ := ComputeView(sales, admin, from, to, nil)
			assert.Equal(t, tt.expectedIDs, idsOf(visible))
		})
	}
}

func TestComputeViewColumnFilters(t *testing.T) {
	admin := &domain.User{ID: "admin", Role: domain.RoleAdmin}
	sales := fixtureSales()

	tests := []struct {
		name        string
		filters     map[string]string
		expectedIDs []string
	}{
		{
			name:        "Single column",
			filters:     map[string]string{"loja": "Centro"},
			expectedIDs: []string{"s3", "s1"},
		},
		{
			name:        "Filters combine conjunctively",
			filters:     map[string]string{"loja": "Centro", "status": domain.StatusPago},
			expectedIDs: []string{"s1"},
		},
		{
			name:        "All sentinel means no constraint",
			filters:     map[string]string{"loja": FilterAll, "lente": ""},
			expectedIDs: []string{"s4", "s2", "s3", "s1"},
		},
		{
			name:        "Exact match, no substrings",
			filters:     map[string]string{"lente": "Multi"},
			expectedIDs: []string{},
		},
		{
			name:        "Unknown column matches nothing",
			filters:     map[string]string{"cidade": "Lisboa"},
			expectedIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visible, summary := ComputeView(sales, admin, time.Time{}, time.Time{}, tt.filters)
			assert.Equal(t, tt.expectedIDs, idsOf(visible))
			assert.Equal(t, len(visible), summary.Pago+summary.EmAberto)
		})
	}
}

func TestComputeViewSummary(t *testing.T) {
	admin := &domain.User{ID: "admin", Role: domain.RoleAdmin}

	visible, summary := ComputeView(fixtureSales(), admin, time.Time{}, time.Time{}, nil)

	assert.Equal(t, 2, summary.Pago)
	assert.Equal(t, 2, summary.EmAberto)
	assert.Equal(t, len(visible), summary.Pago+summary.EmAberto)
}

func TestComputeViewZeroDate(t *testing.T) {
	admin := &domain.User{ID: "admin", Role: domain.RoleAdmin}
	sales := append(fixtureSales(), domain.Sale{ID: "broken", VendedorID: "u1", Status: domain.StatusEmAberto})

	t.Run("Sorts after every dated sale", func(t *testing.T) {
		visible, _ := ComputeView(sales, admin, time.Time{}, time.Time{}, nil)
		assert.Equal(t, "broken", visible[len(visible)-1].ID)
	})

	t.Run("Never matches a date bound", func(t *testing.T) {
		visible, _ := ComputeView(sales, admin, day("2024-01-01"), day("2024-12-31"), nil)
		assert.NotContains(t, idsOf(visible), "broken")
	})
}

func TestComputeViewDoesNotModifyInput(t *testing.T) {
	admin := &domain.User{ID: "admin", Role: domain.RoleAdmin}
	sales := fixtureSales()

	ComputeView(sales, admin, time.Time{}, time.Time{}, map[string]string{"loja": "Centro"})

	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, idsOf(sales))
}

func TestDistinctValues(t *testing.T) {
	sales := fixtureSales()

	tests := []struct {
		name     string
		column   string
		expected []string
	}{
		{
			name:     "Sellers sorted lexicographically",
			column:   "vendedor_nome",
			expected: []string{"Ana", "Bruno"},
		},
		{
			name:     "Stores deduplicated",
			column:   "loja",
			expected: []string{"Centro", "Shopping"},
		},
		{
			name:     "Statuses",
			column:   "status",
			expected: []string{domain.StatusEmAberto, domain.StatusPago},
		},
		{
			name:     "Unknown column",
			column:   "cidade",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DistinctValues(sales, tt.column))
		})
	}
}

func idsOf(sales []domain.Sale) []string {
	ids := make([]string, 0, len(sales))
	for _, sale := range sales {
		ids = append(ids, sale.ID)
	}
	return ids
}
