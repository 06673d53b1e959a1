package booking

import "fmt"

// SchemaVariant вариант физической схемы таблицы бронирований.
// В разных развертываниях колонки начала/конца интервала называются
// по-разному; репозиторий нормализует любую из схем к каноническому
// виду {start, end}, ядро проверки конфликтов о вариантах не знает
type SchemaVariant string

const (
	// SchemaGeneric колонки start_time / end_time
	SchemaGeneric SchemaVariant = "generic"
	// SchemaCheckInDate колонки check_in_date / check_out_date
	SchemaCheckInDate SchemaVariant = "check_in_date"
	// SchemaCheckinDate колонки checkin_date / checkout_date
	SchemaCheckinDate SchemaVariant = "checkin_date"
)

// rangeColumns физические имена колонок интервала бронирования
type rangeColumns struct {
	start string
	end   string
}

var rangeColumnsByVariant = map[SchemaVariant]rangeColumns{
	SchemaGeneric:     {start: "start_time", end: "end_time"},
	SchemaCheckInDate: {start: "check_in_date", end: "check_out_date"},
	SchemaCheckinDate: {start: "checkin_date", end: "checkout_date"},
}

// ParseSchemaVariant парсит вариант схемы из строки конфигурации
func ParseSchemaVariant(s string) (SchemaVariant, error) {
	switch SchemaVariant(s) {
	case SchemaGeneric, "":
		return SchemaGeneric, nil
	case SchemaCheckInDate:
		return SchemaCheckInDate, nil
	case SchemaCheckinDate:
		return SchemaCheckinDate, nil
	default:
		return "", fmt.Errorf("%w: unknown booking schema variant %q", ErrUnknownSchema, s)
	}
}

// columns возвращает имена колонок интервала для варианта схемы
func (v SchemaVariant) columns() rangeColumns {
	if cols, ok := rangeColumnsByVariant[v]; ok {
		return cols
	}
	return rangeColumnsByVariant[SchemaGeneric]
}
