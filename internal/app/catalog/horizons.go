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

// центр Земли — точка отсчёта эфемерид
const geocentric = "500@399"

// имена CSV-колонок Horizons -> ключи payload (как в astroquery)
var horizonsAliases = map[string]string{
	"Date__(UT)__HR:MN": "datetime_str",
	"R.A._(ICRF)":       "RA",
	"DEC__(ICRF)":       "DEC",
	"APmag":             "V",
	"S-brt":             "surfbright",
	"Illu%":             "illumination",
	"Ang-diam":          "ang_width",
	"delta":             "delta",
	"deldot":            "delta_rate",
	"1-way_down_LT":     "lighttime",
	"1-way_LT":          "lighttime",
}

// HorizonsClient — клиент API эфемерид JPL Horizons.
type HorizonsClient struct {
	baseURL string
	client  *http.Client
}

func NewHorizonsClient(baseURL string, timeout time.Duration) *HorizonsClient {
	return &HorizonsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type horizonsResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// QueryBody запрашивает эфемериды тела на текущий момент относительно центра
// Земли. Возвращает одну строку таблицы или (nil, nil), если данных нет.
func (c *HorizonsClient) QueryBody(ctx context.Context, bodyID int) (*Row, error) {
	now := time.Now().UTC()

	params := url.Values{}
	params.Set("format", "json")
	params.Set("COMMAND", fmt.Sprintf("'%d'", bodyID))
	params.Set("OBJ_DATA", "'NO'")
	params.Set("MAKE_EPHEM", "'YES'")
	params.Set("EPHEM_TYPE", "'OBSERVER'")
	params.Set("CENTER", fmt.Sprintf("'%s'", geocentric))
	params.Set("START_TIME", fmt.Sprintf("'%s'", now.Format("2006-01-02 15:04")))
	params.Set("STOP_TIME", fmt.Sprintf("'%s'", now.Add(time.Minute).Format("2006-01-02 15:04")))
	params.Set("STEP_SIZE", "'1'")
	// 1=RA/DEC, 9=видимая величина, 10=яркость поверхности, 13=угловой диаметр,
	// 20=дальность и скорость, 21=световое время
	params.Set("QUANTITIES", "'1,9,10,13,20,21'")
	params.Set("CSV_FORMAT", "'YES'")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос к Horizons: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Horizons вернул статус %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload horizonsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("разбор ответа Horizons: %w", err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("Horizons: %s", payload.Error)
	}

	return parseEphemerisTable(payload.Result), nil
}

// parseEphemerisTable разбирает текстовую таблицу Horizons: CSV-заголовок
// стоит перед маркером $$SOE, строки данных — между $$SOE и $$EOE.
func parseEphemerisTable(result string) *Row {
	lines := strings.Split(result, "\n")

	soe := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "$$SOE") {
			soe = i
			break
		}
	}
	// таблицы нет — тело без эфемерид на запрошенный момент
	if soe < 2 || soe+1 >= len(lines) {
		return nil
	}

	// заголовок отделён от $$SOE строкой-линейкой "****..."
	header := splitCSV(lines[soe-2])
	first := strings.TrimSpace(lines[soe+1])
	if first == "" || strings.HasPrefix(first, "$$EOE") {
		return nil
	}
	values := splitCSV(first)

	row := &Row{}
	for i, name := range header {
		if name == "" || i >= len(values) {
			continue
		}
		if alias, ok := horizonsAliases[name]; ok {
			name = alias
		}
		row.Columns = append(row.Columns, Column{Name: name, Value: values[i]})
	}
	if len(row.Columns) == 0 {
		return nil
	}
	return row
}

func splitCSV(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
