package geotransform_test

import (
	"math"

	"github.com/airbusgeo/geotransform/internal/geotransform"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Quality", func() {
	var (
		strategy  geotransform.Strategy
		params    *geotransform.Parameters
		tiePoints []geotransform.TiePoint
	)

	BeforeEach(func() {
		strategy = geotransform.AffineGT{}
		params = &geotransform.Parameters{
			DirectParameters:  []float64{1, 0, 0, 0, 1, 0},
			InverseParameters: []float64{1, 0, 0, 0, 1, 0},
		}
		// Identity with two tie points off by 3 and 4 units
		tiePoints = []geotransform.TiePoint{
			geotransform.NewTiePoint(0, 0, 0, 0),
			geotransform.NewTiePoint(1, 1, 4, 1),
			geotransform.NewTiePoint(2, 2, 2, 6),
		}
		params.TiePoints = tiePoints
	})

	It("it should compute the mapping error of a tie point", func() {
		d, err := geotransform.DirectMappingError(strategy, params, tiePoints[1])
		Expect(err).To(BeNil())
		Expect(d).To(BeNumerically("~", 3, 1e-12))
		d, err = geotransform.InverseMappingError(strategy, params, tiePoints[2])
		Expect(err).To(BeNil())
		Expect(d).To(BeNumerically("~", 4, 1e-12))
	})

	It("it should compute the RMSE and the max error", func() {
		rmse, err := geotransform.DirectMapRMSE(strategy, params, tiePoints)
		Expect(err).To(BeNil())
		Expect(rmse).To(BeNumerically("~", math.Sqrt(25.0/3), 1e-12))
		rmse, err = geotransform.InverseMapRMSE(strategy, params, tiePoints)
		Expect(err).To(BeNil())
		Expect(rmse).To(BeNumerically("~", math.Sqrt(25.0/3), 1e-12))
		maxErr, err := geotransform.MaxDirectMappingError(strategy, params, tiePoints)
		Expect(err).To(BeNil())
		Expect(maxErr).To(BeNumerically("~", 4, 1e-12))
		maxErr, err = geotransform.MaxInverseMappingError(strategy, params, tiePoints)
		Expect(err).To(BeNil())
		Expect(maxErr).To(BeNumerically("~", 4, 1e-12))
	})

	It("it should return zero for no tie points", func() {
		rmse, err := geotransform.DirectMapRMSE(strategy, params, nil)
		Expect(err).To(BeNil())
		Expect(rmse).To(BeZero())
	})

	It("it should evaluate the parameters on their tie points", func() {
		q, err := geotransform.Evaluate(strategy, params)
		Expect(err).To(BeNil())
		Expect(q.DirectRMSE).To(BeNumerically("~", math.Sqrt(25.0/3), 1e-12))
		Expect(q.MaxInverseError).To(BeNumerically("~", 4, 1e-12))
	})

	It("it should reject invalid parameters", func() {
		_, err := geotransform.Evaluate(geotransform.RSTGT{}, params)
		Expect(geotransform.IsError(err, geotransform.InvalidParameters)).To(BeTrue())
		_, err = geotransform.DirectMapRMSE(geotransform.RSTGT{}, params, tiePoints)
		Expect(geotransform.IsError(err, geotransform.InvalidParameters)).To(BeTrue())
	})
})

var _ = Describe("TiePointSet", func() {
	It("it should keep copies of the tie points in order", func() {
		tps := []geotransform.TiePoint{geotransform.NewTiePoint(1, 2, 3, 4)}
		set := geotransform.NewTiePointSet(tps...)
		set.Add(geotransform.NewTiePoint(5, 6, 7, 8))
		tps[0].Source.X = 100

		Expect(set.Len()).To(Equal(2))
		Expect(set.At(0)).To(Equal(geotransform.NewTiePoint(1, 2, 3, 4)))
		Expect(set.Sources()).To(Equal([]geotransform.Coordinate2D{{X: 1, Y: 2}, {X: 5, Y: 6}}))
		Expect(set.Targets()).To(Equal([]geotransform.Coordinate2D{{X: 3, Y: 4}, {X: 7, Y: 8}}))

		copied := set.TiePoints()
		copied[0].Target.Y = -1
		Expect(set.At(0).Target.Y).To(Equal(4.0))
	})

	It("it should swap source and target", func() {
		set := geotransform.NewTiePointSet(geotransform.NewTiePoint(1, 2, 3, 4)).Swapped()
		Expect(set.At(0)).To(Equal(geotransform.NewTiePoint(3, 4, 1, 2)))
	})
})

var _ = Describe("Model", func() {
	It("it should parse and print the model names", func() {
		for _, m := range geotransform.ModelValues() {
			parsed, err := geotransform.ModelString(m.String())
			Expect(err).To(BeNil())
			Expect(parsed).To(Equal(m))
		}
		_, err := geotransform.ModelString("Projective")
		Expect(err).NotTo(BeNil())
	})

	It("it should marshal to JSON as a name", func() {
		b, err := geotransform.ModelRST.MarshalJSON()
		Expect(err).To(BeNil())
		Expect(string(b)).To(Equal(`"RST"`))
	})
})
