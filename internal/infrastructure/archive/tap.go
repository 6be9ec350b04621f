package archive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"accessplot/internal/config"
	"accessplot/internal/domain"
)

// columns is the fixed projection requested from the archive, in the order
// the response header is expected to carry them.
var columns = []string{
	"pl_name",
	"disc_facility",
	"gaia_id",
	"pl_radj",
	"pl_bmassj",
	"pl_eqt",
	"st_rad",
	"sy_vmag",
}

// TAPClient fetches the transiting-planet table from the archive's TAP sync
// endpoint as CSV. One blocking request per Fetch, no caching, no retry.
type TAPClient struct {
	baseURL string
	table   string
	client  *http.Client
	logger  *slog.Logger
}

// NewTAPClient wires an HTTP client; a nil client gets the configured timeout.
func NewTAPClient(cfg config.ArchiveConfig, client *http.Client, log *slog.Logger) *TAPClient {
	if client == nil {
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &TAPClient{
		baseURL: cfg.BaseURL,
		table:   cfg.Table,
		client:  client,
		logger:  log,
	}
}

// Name identifies the source inside the registry.
func (c *TAPClient) Name() string {
	return "archive"
}

// Fetch runs the fixed query and parses the CSV body. Any transport error,
// non-success status, or malformed body aborts the run.
func (c *TAPClient) Fetch(ctx context.Context) ([]domain.CatalogRow, error) {
	queryURL, err := buildQueryURL(c.baseURL, c.table)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "accessplot/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("archive returned %s", resp.Status)
	}

	rows, err := decodeCatalogCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse archive response: %w", err)
	}

	c.debug("catalog fetched", "rows", len(rows))
	return rows, nil
}

func (c *TAPClient) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

// buildQueryURL embeds the ADQL projection and transit predicate into the TAP
// sync URL, requesting CSV output.
func buildQueryURL(base, table string) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid archive url %s: %w", base, err)
	}

	adql := fmt.Sprintf("select %s from %s where tran_flag = 1",
		strings.Join(columns, ","), table)

	query := parsed.Query()
	query.Set("query", adql)
	query.Set("format", "csv")
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// catalogRecord mirrors the archive's CSV header. Pointer fields stay nil when
// the archive reports no value, which is what the cleaner keys on.
type catalogRecord struct {
	PlanetName    string   `csv:"pl_name"`
	DiscFacility  string   `csv:"disc_facility"`
	GaiaID        string   `csv:"gaia_id"`
	RadiusJup     *float64 `csv:"pl_radj,omitempty"`
	MassJup       *float64 `csv:"pl_bmassj,omitempty"`
	EqTempK       *float64 `csv:"pl_eqt,omitempty"`
	StellarRadSun *float64 `csv:"st_rad,omitempty"`
	VMag          *float64 `csv:"sy_vmag,omitempty"`
}

func decodeCatalogCSV(r io.Reader) ([]domain.CatalogRow, error) {
	var records []catalogRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return nil, fmt.Errorf("decode csv: %w", err)
	}

	rows := make([]domain.CatalogRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, domain.CatalogRow{
			PlanetName:    rec.PlanetName,
			DiscFacility:  rec.DiscFacility,
			GaiaID:        rec.GaiaID,
			RadiusJup:     rec.RadiusJup,
			MassJup:       rec.MassJup,
			EqTempK:       rec.EqTempK,
			StellarRadSun: rec.StellarRadSun,
			VMag:          rec.VMag,
		})
	}
	return rows, nil
}
