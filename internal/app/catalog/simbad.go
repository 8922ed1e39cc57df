package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// SimbadClient — клиент TAP-сервиса SIMBAD (синхронные ADQL-запросы).
type SimbadClient struct {
	baseURL string
	client  *http.Client
}

func NewSimbadClient(baseURL string, timeout time.Duration) *SimbadClient {
	return &SimbadClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// внешний сервис не должен подвешивать сохранение наблюдения
		client: &http.Client{Timeout: timeout},
	}
}

// формат ответа TAP при format=json
type tapResponse struct {
	Metadata []struct {
		Name string `json:"name"`
	} `json:"metadata"`
	Data [][]any `json:"data"`
}

// QueryObject ищет объект по имени (идентификатору SIMBAD).
// Возвращает одну строку каталога или (nil, nil), если объект не найден.
func (c *SimbadClient) QueryObject(ctx context.Context, name string) (*Row, error) {
	adql := fmt.Sprintf(
		`SELECT basic.main_id, basic.otype, basic.sp_type, basic.plx_value AS parallax, `+
			`basic.ra, basic.dec, allfluxes.B, allfluxes.V `+
			`FROM basic JOIN ident ON ident.oidref = basic.oid `+
			`LEFT JOIN allfluxes ON allfluxes.oidref = basic.oid `+
			`WHERE ident.id = '%s'`,
		strings.ReplaceAll(name, "'", "''"),
	)

	params := url.Values{}
	params.Set("request", "doQuery")
	params.Set("lang", "adql")
	params.Set("format", "json")
	params.Set("query", adql)

	reqURL := c.baseURL + "/sync?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос к SIMBAD: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SIMBAD вернул статус %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var table tapResponse
	if err := json.Unmarshal(body, &table); err != nil {
		return nil, fmt.Errorf("разбор ответа SIMBAD: %w", err)
	}

	// объект не найден — это не ошибка
	if len(table.Data) == 0 {
		return nil, nil
	}

	values := table.Data[0]
	row := &Row{Columns: make([]Column, 0, len(table.Metadata))}
	for i, meta := range table.Metadata {
		if i >= len(values) {
			break
		}
		row.Columns = append(row.Columns, Column{Name: meta.Name, Value: values[i]})
	}
	return row, nil
}
