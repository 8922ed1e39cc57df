package catalog

import (
	"fmt"
	"strconv"
)

// Сервисы отдают "--" вместо отсутствующего значения
const noDataSentinel = "--"

// Normalize приводит строку ответа к плоской карте "колонка -> строка".
// Все скалярные значения переводятся в строки, чтобы payload сохранялся и
// отображался одинаково независимо от исходного типа. Никогда не падает:
// пустая или отсутствующая строка даёт nil.
func Normalize(row *Row) map[string]string {
	if row == nil || len(row.Columns) == 0 {
		return nil
	}

	payload := make(map[string]string, len(row.Columns))
	for _, col := range row.Columns {
		payload[col.Name] = stringify(col.Value)
	}
	return payload
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// ExtractNumeric достаёт числовое поле payload по точному имени ключа.
// Возвращает исходную строку (для точной decimal-арифметики дальше).
// ok=false если ключа нет, значение не число или равно заглушке "--".
func ExtractNumeric(payload map[string]string, key string) (string, bool) {
	value, exists := payload[key]
	if !exists || value == "" || value == noDataSentinel {
		return "", false
	}
	if _, err := strconv.ParseFloat(value, 64); err != nil {
		return "", false
	}
	return value, true
}

// ApparentMagnitude — видимая звёздная величина (V) из payload SIMBAD,
// отформатированная до двух знаков. Пустая строка, если данных нет.
func ApparentMagnitude(payload map[string]string) string {
	value, ok := ExtractNumeric(payload, "V")
	if !ok {
		return ""
	}
	mag, _ := strconv.ParseFloat(value, 64)
	return fmt.Sprintf("%.2f", mag)
}

// SpectralType — спектральный класс из payload SIMBAD.
func SpectralType(payload map[string]string) string {
	value := payload["sp_type"]
	if value == noDataSentinel {
		return ""
	}
	return value
}
