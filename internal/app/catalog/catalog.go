package catalog

import "context"

// Column — одна именованная колонка ответа внешнего сервиса.
type Column struct {
	Name  string
	Value any
}

// Row — строка ответа: упорядоченный набор именованных колонок.
// SIMBAD и Horizons возвращают ноль или одну строку на запрошенный объект.
type Row struct {
	Columns []Column
}

// CatalogService — звёздный каталог, поиск по имени объекта.
// Пустой результат — (nil, nil), это не ошибка.
type CatalogService interface {
	QueryObject(ctx context.Context, name string) (*Row, error)
}

// EphemerisService — сервис эфемерид, запрос по числовому идентификатору тела
// относительно центра Земли.
type EphemerisService interface {
	QueryBody(ctx context.Context, bodyID int) (*Row, error)
}
