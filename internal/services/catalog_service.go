package services

import (
	"sort"
	"strings"

	"sewamobil-backend/internal/domain"
	"sewamobil-backend/internal/repositories"
)

// Jendela katalog publik: 6 mobil pertama, bertambah 4 tiap "tampilkan
// lebih banyak". Jendela tidak pernah mengecil.
const (
	FleetInitialWindow = 6
	FleetWindowStep    = 4
)

// Sentinel filter yang berarti "tanpa filter".
const FilterAll = "all"

// Sort keys katalog.
const (
	SortPriceAsc   = "price-asc"
	SortPriceDesc  = "price-desc"
	SortRatingDesc = "rating-desc"
)

type FleetQuery struct {
	Query   string
	Brand   string
	Type    string
	Sort    string
	Visible int
}

type FleetPage struct {
	Items []domain.Vehicle `json:"items"`
	// Filter efektif setelah cross-filter reset.
	Brand string `json:"brand"`
	Type  string `json:"type"`
	// Pilihan yang masih valid terhadap filter lawannya, diawali "all".
	Brands []string `json:"brands"`
	Types  []string `json:"types"`

	Visible     int  `json:"visible"`
	NextVisible int  `json:"nextVisible,omitempty"`
	HasMore     bool `json:"hasMore"`
	Total       int  `json:"total"`
}

type CatalogService struct {
	VehicleRepo repositories.VehicleRepository
}

// Browse loads the fleet and applies the public catalog view on it.
func (s CatalogService) Browse(q FleetQuery) (FleetPage, error) {
	fleet, err := s.VehicleRepo.List("", 0, 0)
	if err != nil {
		return FleetPage{}, err
	}
	return BrowseFleet(fleet, q), nil
}

// BrowseFleet filters, sorts, and windows the fleet in memory. Filtering
// never reorders; urutan hanya berubah lewat sort eksplisit.
func BrowseFleet(fleet []domain.Vehicle, q FleetQuery) FleetPage {
	brand := normalizeFilter(q.Brand)
	vtype := normalizeFilter(q.Type)

	// Pilihan brand dihitung dari kendaraan yang lolos filter tipe, dan
	// sebaliknya. Kombinasi filter yang mustahil direset ke "all".
	brands := optionSet(fleet, vtype, func(v domain.Vehicle) (string, string) { return v.Type, v.Brand })
	if !containsOption(brands, brand) {
		brand = FilterAll
	}
	types := optionSet(fleet, brand, func(v domain.Vehicle) (string, string) { return v.Brand, v.Type })
	if !containsOption(types, vtype) {
		vtype = FilterAll
	}

	search := strings.ToLower(strings.TrimSpace(q.Query))

	filtered := make([]domain.Vehicle, 0, len(fleet))
	for _, v := range fleet {
		if search != "" &&
			!strings.Contains(strings.ToLower(v.Name), search) &&
			!strings.Contains(strings.ToLower(v.Brand), search) {
			continue
		}
		if brand != FilterAll && v.Brand != brand {
			continue
		}
		if vtype != FilterAll && v.Type != vtype {
			continue
		}
		filtered = append(filtered, v)
	}

	switch q.Sort {
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].PricePerDay > filtered[j].PricePerDay })
	case SortRatingDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].PricePerDay < filtered[j].PricePerDay })
	}

	visible := q.Visible
	if visible < FleetInitialWindow {
		visible = FleetInitialWindow
	}

	page := FleetPage{
		Brand:   brand,
		Type:    vtype,
		Brands:  brands,
		Types:   types,
		Visible: visible,
		Total:   len(filtered),
	}

	if visible >= len(filtered) {
		page.Items = filtered
		return page
	}

	page.Items = filtered[:visible]
	page.HasMore = true
	page.NextVisible = visible + FleetWindowStep
	return page
}

func normalizeFilter(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return FilterAll
	}
	return s
}

// optionSet lists distinct values of pick's second field among vehicles
// whose first field passes the opposite filter, in first-seen order.
func optionSet(fleet []domain.Vehicle, opposite string, pick func(domain.Vehicle) (string, string)) []string {
	seen := map[string]bool{}
	out := []string{FilterAll}
	for _, v := range fleet {
		against, value := pick(v)
		if opposite != FilterAll && against != opposite {
			continue
		}
		if !seen[value] {
			seen[value] = true
			out = append(out, value)
		}
	}
	return out
}

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
