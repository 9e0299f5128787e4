package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jszwec/csvutil"

	"github.com/access-survey/targetplot/internal/types"
)

// DetectionTypeTransit is the exoplanet.eu tag for planets detected by the
// dimming they cause passing in front of their host star.
const DetectionTypeTransit = "Primary Transit"

// LoadCatalog reads an exoplanet.eu CSV export and returns only the
// transiting planets.
func LoadCatalog(path string) ([]types.CatalogRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer file.Close()

	rows, err := DecodeCatalog(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", path, err)
	}

	transiting := make([]types.CatalogRow, 0, len(rows))
	for _, row := range rows {
		if row.DetectionType == DetectionTypeTransit {
			transiting = append(transiting, row)
		}
	}

	log.Printf("Loaded %d transiting planets (of %d catalog rows)", len(transiting), len(rows))
	return transiting, nil
}

// DecodeCatalog decodes an exoplanet.eu export. The export prefixes its
// header row with a "# " marker, so the header is read and normalized first
// and then handed to the decoder explicitly.
func DecodeCatalog(r io.Reader) ([]types.CatalogRow, error) {
	cr := csv.NewReader(r)

	rawHeader, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	dec, err := csvutil.NewDecoder(cr, normalizeHeader(rawHeader)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog decoder: %w", err)
	}
	dec.Map = zeroEmptyNumbers

	var rows []types.CatalogRow
	if err := dec.Decode(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// normalizeHeader strips the comment marker and surrounding whitespace from
// each column name and renames the catalog's "name" column to planet_name so
// both input tables share a join key.
func normalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	for i, col := range raw {
		col = strings.Trim(col, "# ")
		if col == "name" {
			col = "planet_name"
		}
		header[i] = col
	}
	return header
}

// zeroEmptyNumbers maps empty cells to zero for numeric fields. The
// exoplanet.eu export leaves plenty of cells blank and the decoder would
// otherwise refuse to unmarshal "" into a number.
func zeroEmptyNumbers(field, col string, v any) string {
	if field != "" {
		return field
	}
	switch v.(type) {
	case float64, int:
		return "0"
	}
	return field
}

// LoadTargets reads the survey target list with its four 0/1 status flags.
func LoadTargets(path string) ([]types.TargetRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open target list: %w", err)
	}
	defer file.Close()

	dec, err := csvutil.NewDecoder(csv.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to create target decoder: %w", err)
	}
	dec.Map = zeroEmptyNumbers

	var targets []types.TargetRow
	if err := dec.Decode(&targets); err != nil {
		return nil, fmt.Errorf("failed to decode target list %s: %w", path, err)
	}

	log.Printf("Loaded %d targets", len(targets))
	return targets, nil
}
