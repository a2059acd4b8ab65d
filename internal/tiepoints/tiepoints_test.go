package tiepoints_test

import (
	"bytes"
	"errors"
	"strings"

	"github.com/airbusgeo/geotransform/internal/geotransform"
	"github.com/airbusgeo/geotransform/internal/tiepoints"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Codecs", func() {
	var tps = []geotransform.TiePoint{
		geotransform.NewTiePoint(0, 0, 500000.5, 4649776.25),
		geotransform.NewTiePoint(1024, 0, 510240.5, 4649776.25),
		geotransform.NewTiePoint(0, 1024, 500000.5, 4639536.125),
		geotransform.NewTiePoint(0.1, -3e-7, 1e12, 1.0/3),
	}

	for _, name := range []string{"tiepoints.csv", "tiepoints.json", "tiepoints.GeoJSON"} {
		name := name
		It("it should write and read "+name, func() {
			data, err := tiepoints.Write(name, tps)
			Expect(err).To(BeNil())
			decoded, err := tiepoints.Read(name, data)
			Expect(err).To(BeNil())
			Expect(decoded).To(Equal(tps))
		})
	}

	Describe("ReadCSV", func() {
		It("it should accept files without header, with comments and spaces", func() {
			decoded, err := tiepoints.ReadCSV(strings.NewReader("# gcp\n1, 2, 3, 4\n5,6,7,8\n"))
			Expect(err).To(BeNil())
			Expect(decoded).To(Equal([]geotransform.TiePoint{
				geotransform.NewTiePoint(1, 2, 3, 4),
				geotransform.NewTiePoint(5, 6, 7, 8),
			}))
		})

		It("it should skip the header", func() {
			decoded, err := tiepoints.ReadCSV(strings.NewReader("sx,sy,tx,ty\n1,2,3,4\n"))
			Expect(err).To(BeNil())
			Expect(decoded).To(HaveLen(1))
		})

		It("it should fail on a non-numeric row", func() {
			_, err := tiepoints.ReadCSV(strings.NewReader("1,2,3,4\n5,six,7,8\n"))
			Expect(err).To(MatchError(ContainSubstring("line 2")))
		})

		It("it should fail on a missing column", func() {
			_, err := tiepoints.ReadCSV(strings.NewReader("1,2,3,4\n5,6,7\n"))
			Expect(err).NotTo(BeNil())
		})
	})

	Describe("ReadJSON", func() {
		It("it should decode the documented format", func() {
			decoded, err := tiepoints.ReadJSON(strings.NewReader(`[{"source":{"x":1,"y":2},"target":{"x":3,"y":4}}]`))
			Expect(err).To(BeNil())
			Expect(decoded).To(Equal([]geotransform.TiePoint{geotransform.NewTiePoint(1, 2, 3, 4)}))
		})

		It("it should write an empty array", func() {
			var buf bytes.Buffer
			Expect(tiepoints.WriteJSON(&buf, nil)).To(Succeed())
			Expect(strings.TrimSpace(buf.String())).To(Equal("[]"))
		})
	})

	Describe("ReadGeoJSON", func() {
		It("it should reject other geometries", func() {
			_, err := tiepoints.ReadGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":null}]}`))
			Expect(err).To(MatchError(ContainSubstring("expecting a LineString")))
		})

		It("it should reject lines with more than two vertices", func() {
			_, err := tiepoints.ReadGeoJSON(strings.NewReader(`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"LineString","coordinates":[[1,2],[3,4],[5,6]]},"properties":null}]}`))
			Expect(err).To(MatchError(ContainSubstring("expecting 2 vertices")))
		})
	})

	Describe("Format", func() {
		It("it should reject unknown extensions", func() {
			_, err := tiepoints.Read("tiepoints.xml", nil)
			Expect(errors.Is(err, tiepoints.ErrUnsupportedFormat)).To(BeTrue())
			_, err = tiepoints.Write("tiepoints", tps)
			Expect(errors.Is(err, tiepoints.ErrUnsupportedFormat)).To(BeTrue())
		})
	})
})
