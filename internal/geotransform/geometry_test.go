package geotransform_test

import (
	"github.com/airbusgeo/geotransform/internal/geotransform"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/twpayne/go-geom"
)

var _ = Describe("MapGeometry", func() {
	var (
		strategy geotransform.Strategy
		params   *geotransform.Parameters
		input    geom.T
		inverse  bool
		output   geom.T
		err      error
	)

	BeforeEach(func() {
		strategy = geotransform.AffineGT{}
		params = &geotransform.Parameters{
			DirectParameters:  []float64{2, 0, 10, 0, 2, 20},
			InverseParameters: []float64{0.5, 0, -5, 0, 0.5, -10},
		}
		inverse = false
	})

	JustBeforeEach(func() {
		output, err = geotransform.MapGeometry(strategy, params, input, inverse)
	})

	Context("polygon", func() {
		BeforeEach(func() {
			input = geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}).SetSRID(3857)
		})

		itShouldNotReturnAnError(&err)

		It("it should map every vertex", func() {
			Expect(output.FlatCoords()).To(Equal([]float64{10, 20, 12, 20, 12, 22, 10, 20}))
			Expect(output.Ends()).To(Equal([]int{8}))
			Expect(output.SRID()).To(Equal(3857))
		})

		It("it should not modify the input", func() {
			Expect(input.FlatCoords()).To(Equal([]float64{0, 0, 1, 0, 1, 1, 0, 0}))
		})
	})

	Context("point with elevation, inverse mapping", func() {
		BeforeEach(func() {
			input = geom.NewPoint(geom.XYZ).MustSetCoords(geom.Coord{12, 22, 100})
			inverse = true
		})

		itShouldNotReturnAnError(&err)

		It("it should map x and y only", func() {
			Expect(output.Layout()).To(Equal(geom.XYZ))
			Expect(output.FlatCoords()).To(Equal([]float64{1, 1, 100}))
		})
	})

	Context("geometry collection", func() {
		BeforeEach(func() {
			gc := geom.NewGeometryCollection()
			Expect(gc.Push(
				geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{1, 1}),
				geom.NewLineString(geom.XY).MustSetCoords([]geom.Coord{{0, 0}, {2, 2}}),
			)).To(Succeed())
			input = gc.SetSRID(4326)
		})

		itShouldNotReturnAnError(&err)

		It("it should map every child", func() {
			gc, ok := output.(*geom.GeometryCollection)
			Expect(ok).To(BeTrue())
			Expect(gc.SRID()).To(Equal(4326))
			Expect(gc.NumGeoms()).To(Equal(2))
			Expect(gc.Geom(0).FlatCoords()).To(Equal([]float64{12, 22}))
			Expect(gc.Geom(1).FlatCoords()).To(Equal([]float64{10, 20, 14, 24}))
		})
	})

	Context("invalid parameters", func() {
		BeforeEach(func() {
			input = geom.NewPoint(geom.XY).MustSetCoords(geom.Coord{1, 1})
			params = &geotransform.Parameters{DirectParameters: []float64{1, 0, 0, 1}}
		})

		itShouldReturnAnErrorWithCode(&err, geotransform.InvalidParameters)
	})
})
