package domain

import "time"

// TimeRange represents a half-open time interval [Start, End).
// Начало входит в интервал, конец — нет: это позволяет смежным
// бронированиям (выезд одного гостя и заезд другого в один момент)
// сосуществовать без конфликта.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the range has positive length (Start < End).
// Интервал нулевой или отрицательной длины некорректен и никогда
// не участвует в проверке пересечений.
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether two half-open intervals intersect.
// Пересечение есть, только если интервалы действительно накладываются:
// aStart < bEnd И bStart < aEnd (строгие неравенства).
//
// Примеры:
// - [10:00, 12:00) и [11:00, 13:00) → ЕСТЬ пересечение (11:00-12:00)
// - [10:00, 12:00) и [12:00, 13:00) → НЕТ пересечения (граничат)
// - [10:00, 12:00) и [10:00, 12:00) → ЕСТЬ пересечение (совпадают)
//
// Некорректный интервал (Start >= End) не пересекается ни с чем,
// включая сам себя. Это осознанное поведение, а не ошибка: функция
// никогда не возвращает ошибку, для некорректного входа ответ — false.
func (r TimeRange) Overlaps(other TimeRange) bool {
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Duration returns the length of the range.
// Для некорректного интервала значение не определено осмысленно
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}
