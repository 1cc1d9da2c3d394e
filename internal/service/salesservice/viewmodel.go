package salesservice

import (
	"sort"
	"time"

	"github.com/ourilentes/premios/internal/domain"
)

// FilterableColumns are the table columns that expose a dropdown filter.
var FilterableColumns = []string{"vendedor_nome", "loja", "lente", "tratamento", "status"}

// FilterAll is the sentinel dropdown value meaning "no constraint".
const FilterAll = "all"

type Summary struct {
	Pago     int
	EmAberto int
}

// ComputeView derives the sales list a user is shown: role scoping, inclusive
// calendar-date range, exact-match column filters, then a stable sort by sale
// date descending. The summary is counted over the surviving records. Pure
// function of its inputs; the input slice is not modified.
//
// A sale with a zero date never matches a date bound and sorts after every
// dated sale, so a damaged record degrades to "shown last" instead of
// breaking the whole view.
func ComputeView(sales []domain.Sale, user *domain.User, from, to time.Time, columnFilters map[string]string) ([]domain.Sale, Summary) {
	visible := Scope(sales, user)

	if !from.IsZero() || !to.IsZero() {
		filtered := make([]domain.Sale, 0, len(visible))
		for _, sale := range visible {
			if sale.Data.IsZero() {
				continue
			}
			day := toDay(sale.Data)
			if !from.IsZero() && day.Before(toDay(from)) {
				continue
			}
			if !to.IsZero() && day.After(toDay(to)) {
				continue
			}
			filtered = append(filtered, sale)
		}
		visible = filtered
	}

	for column, want := range columnFilters {
		if want == "" || want == FilterAll {
			continue
		}
		filtered := make([]domain.Sale, 0, len(visible))
		for _, sale := range visible {
			value, ok := columnValue(sale, column)
			if ok && value == want {
				filtered = append(filtered, sale)
			}
		}
		visible = filtered
	}

	sort.SliceStable(visible, func(i, j int) bool {
		a, b := visible[i].Data, visible[j].Data
		if a.IsZero() || b.IsZero() {
			return b.IsZero() && !a.IsZero()
		}
		return a.After(b)
	})

	var summary Summary
	for _, sale := range visible {
		if sale.Status == domain.StatusPago {
			summary.Pago++
		} else {
			summary.EmAberto++
		}
	}
	return visible, summary
}

// Scope restricts the collection to what the user may observe: admins see
// everything, sellers only their own sales.
func Scope(sales []domain.Sale, user *domain.User) []domain.Sale {
	if user.Role == domain.RoleAdmin {
		return append([]domain.Sale(nil), sales...)
	}
	scoped := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.VendedorID == user.ID {
			scoped = append(scoped, sale)
		}
	}
	return scoped
}

// DistinctValues projects the distinct values of a filterable column, sorted
// lexicographically. Options are derived from the role-scoped set, not the
// column-filtered one, so picking one option does not hide the others.
func DistinctValues(sales []domain.Sale, column string) []string {
	seen := make(map[string]struct{})
	for _, sale := range sales {
		value, ok := columnValue(sale, column)
		if !ok || value == "" {
			continue
		}
		seen[value] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

func columnValue(sale domain.Sale, column string) (string, bool) {
	switch column {
	case "vendedor_nome":
		return sale.VendedorNome, true
	case "loja":
		return sale.Loja, true
	case "lente":
		return sale.Lente, true
	case "tratamento":
		return sale.Tratamento, true
	case "status":
		return sale.Status, true
	}
	return "", false
}

// toDay drops the time component so bounds compare as calendar dates in the
// sale's own location.
func toDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
