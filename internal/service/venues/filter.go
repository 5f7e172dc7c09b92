package venues

import (
	"sort"
	"strings"

	"github.com/m04kA/holidaze-gateway/internal/domain"
)

// FilterByRegion оставляет площадки нормализованного континента region
// Пустой регион и "All" не фильтруют
func FilterByRegion(venues []domain.Venue, region string) []domain.Venue {
	region = strings.TrimSpace(region)
	if region == "" || strings.EqualFold(region, domain.RegionAll) {
		return venues
	}

	want := domain.NormalizeRegion(region)
	filtered := make([]domain.Venue, 0, len(venues))
	for i := range venues {
		if venues[i].Region() == want {
			filtered = append(filtered, venues[i])
		}
	}
	return filtered
}

// FilterByGuests оставляет площадки, вмещающие guests гостей
// Значения 0 и 1 не фильтруют: любая площадка вмещает одного гостя
func FilterByGuests(venues []domain.Venue, guests int) []domain.Venue {
	if guests <= domain.MinGuests {
		return venues
	}

	filtered := make([]domain.Venue, 0, len(venues))
	for i := range venues {
		if venues[i].MaxGuests >= guests {
			filtered = append(filtered, venues[i])
		}
	}
	return filtered
}

// Regions возвращает "All" и отсортированные уникальные регионы площадок.
// Площадки без континента (Unknown) в список не попадают
func Regions(venues []domain.Venue) []string {
	seen := make(map[string]struct{})
	regions := make([]string, 0)

	for i := range venues {
		r := venues[i].Region()
		if r == domain.RegionUnknown {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		regions = append(regions, r)
	}

	sort.Strings(regions)
	return append([]string{domain.RegionAll}, regions...)
}
