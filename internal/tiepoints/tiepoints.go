// Package tiepoints reads and writes tie points in CSV, JSON and GeoJSON formats.
package tiepoints

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/airbusgeo/geotransform/internal/geotransform"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// Format of a tie point file
type Format string

const (
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatGeoJSON Format = "geojson"
)

// ErrUnsupportedFormat is returned when the format cannot be deduced from the file name
var ErrUnsupportedFormat = errors.New("unsupported tie point format")

var csvHeader = []string{"source_x", "source_y", "target_x", "target_y"}

// FormatFromName returns the format corresponding to the extension of the file name
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".geojson":
		return FormatGeoJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
}

// Read decodes data according to the extension of name
func Read(name string, data []byte) ([]geotransform.TiePoint, error) {
	format, err := FormatFromName(name)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(data)
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatJSON:
		return ReadJSON(r)
	default:
		return ReadGeoJSON(r)
	}
}

// Write encodes the tie points according to the extension of name
func Write(name string, tps []geotransform.TiePoint) ([]byte, error) {
	format, err := FormatFromName(name)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	switch format {
	case FormatCSV:
		err = WriteCSV(&buf, tps)
	case FormatJSON:
		err = WriteJSON(&buf, tps)
	default:
		err = WriteGeoJSON(&buf, tps)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadCSV reads rows of "source_x,source_y,target_x,target_y".
// The first row is skipped if it is not numeric. Lines starting with # are ignored.
func ReadCSV(r io.Reader) ([]geotransform.TiePoint, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	var tps []geotransform.TiePoint
	for row := 0; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			return tps, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %w", err)
		}
		var v [4]float64
		for i, field := range record {
			if v[i], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				break
			}
		}
		if err != nil {
			if row == 0 {
				// header
				continue
			}
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("ReadCSV: line %d: %w", line, err)
		}
		tps = append(tps, geotransform.NewTiePoint(v[0], v[1], v[2], v[3]))
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// WriteCSV writes the tie points with a header row
func WriteCSV(w io.Writer, tps []geotransform.TiePoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, tp := range tps {
		if err := cw.Write([]string{formatFloat(tp.Source.X), formatFloat(tp.Source.Y), formatFloat(tp.Target.X), formatFloat(tp.Target.Y)}); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	return nil
}

// ReadJSON reads an array of {"source":{"x":..,"y":..},"target":{"x":..,"y":..}}
func ReadJSON(r io.Reader) ([]geotransform.TiePoint, error) {
	var tps []geotransform.TiePoint
	if err := json.NewDecoder(r).Decode(&tps); err != nil {
		return nil, fmt.Errorf("ReadJSON: %w", err)
	}
	return tps, nil
}

// WriteJSON writes the tie points as a JSON array
func WriteJSON(w io.Writer, tps []geotransform.TiePoint) error {
	if tps == nil {
		tps = []geotransform.TiePoint{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tps); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}
	return nil
}

// ReadGeoJSON reads a FeatureCollection of LineStrings: the first vertex of each
// LineString is the source coordinate and the last one is the target coordinate.
func ReadGeoJSON(r io.Reader) ([]geotransform.TiePoint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadGeoJSON: %w", err)
	}
	var fc geojson.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("ReadGeoJSON: %w", err)
	}
	tps := make([]geotransform.TiePoint, 0, len(fc.Features))
	for i, f := range fc.Features {
		ls, ok := f.Geometry.(*geom.LineString)
		if !ok {
			return nil, fmt.Errorf("ReadGeoJSON: feature %d: expecting a LineString, got %T", i, f.Geometry)
		}
		if ls.NumCoords() != 2 {
			return nil, fmt.Errorf("ReadGeoJSON: feature %d: expecting 2 vertices, got %d", i, ls.NumCoords())
		}
		src, dst := ls.Coord(0), ls.Coord(1)
		tps = append(tps, geotransform.NewTiePoint(src[0], src[1], dst[0], dst[1]))
	}
	return tps, nil
}

// WriteGeoJSON writes the tie points as a FeatureCollection of LineStrings from source to target
func WriteGeoJSON(w io.Writer, tps []geotransform.TiePoint) error {
	fc := geojson.FeatureCollection{Features: make([]*geojson.Feature, len(tps))}
	for i, tp := range tps {
		ls, err := geom.NewLineString(geom.XY).SetCoords([]geom.Coord{
			{tp.Source.X, tp.Source.Y},
			{tp.Target.X, tp.Target.Y},
		})
		if err != nil {
			return fmt.Errorf("WriteGeoJSON: %w", err)
		}
		fc.Features[i] = &geojson.Feature{
			ID:       strconv.Itoa(i),
			Geometry: ls,
		}
	}
	data, err := json.Marshal(&fc)
	if err != nil {
		return fmt.Errorf("WriteGeoJSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("WriteGeoJSON: %w", err)
	}
	return nil
}
