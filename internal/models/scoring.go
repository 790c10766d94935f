package models

import "time"

// clampScore ограничивает значение диапазоном [lo, hi].
func clampScore(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// monthsComponent возвращает месячную компоненту календарной разницы между
// from и now (всегда в диапазоне 0..11 — годы отбрасываются).
//
// Именно компоненту, а не полное число месяцев: тест давностью 18 месяцев
// даёт компоненту 6 и снова попадает в "свежий" интервал. Поведение
// зафиксировано тестами, не исправлять без согласования с владельцем продукта.
func monthsComponent(from, now time.Time) int {
	if !from.Before(now) {
		return 0
	}
	years := now.Year() - from.Year()
	months := int(now.Month()) - int(from.Month())
	total := years*12 + months
	if now.Day() < from.Day() {
		total--
	}
	if total < 0 {
		total = 0
	}
	return total % 12
}

// withinMonths — истек ли срок в n календарных месяцев от from к моменту now.
func withinMonths(from, now time.Time, n int) bool {
	return !from.Before(now.AddDate(0, -n, 0))
}
