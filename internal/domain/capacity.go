package domain

import "sort"

// BookablePartySizes возвращает отсортированный список размеров компаний,
// для которых есть активная конфигурация столов
// Размеры без конфигурации (или с неактивной) бронировать нельзя
func BookablePartySizes(configs []*TableConfiguration) []int {
	seen := make(map[int]struct{}, len(configs))
	sizes := make([]int, 0, len(configs))

	for _, c := range configs {
		if !c.IsActive {
			continue
		}
		if _, ok := seen[c.PartySize]; ok {
			continue
		}
		seen[c.PartySize] = struct{}{}
		sizes = append(sizes, c.PartySize)
	}

	sort.Ints(sizes)
	return sizes
}

// IsPartySizeBookable проверяет, что размер компании доступен для бронирования
func IsPartySizeBookable(configs []*TableConfiguration, partySize int) bool {
	for _, c := range configs {
		if c.PartySize == partySize && c.IsActive {
			return true
		}
	}
	return false
}

// CapacityFor возвращает (tableCount, maxPerSlot) для размера компании
// Возвращает ErrPartySizeNotConfigured, если конфигурации нет или она неактивна
func CapacityFor(configs []*TableConfiguration, partySize int) (tableCount, maxPerSlot int, err error) {
	for _, c := range configs {
		if c.PartySize == partySize && c.IsActive {
			return c.TableCount, c.MaxReservationsPerSlot, nil
		}
	}
	return 0, 0, ErrPartySizeNotConfigured
}
