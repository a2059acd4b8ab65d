package geotransform_test

import (
	"github.com/airbusgeo/geotransform/internal/geotransform"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("AffineGT", func() {
	var (
		strategy  geotransform.AffineGT
		tiePoints []geotransform.TiePoint
		params    *geotransform.Parameters
		err       error
	)

	JustBeforeEach(func() {
		params, err = strategy.Estimate(tiePoints)
	})

	It("it should describe itself", func() {
		Expect(strategy.Name()).To(Equal("Affine"))
		Expect(strategy.MinRequiredTiePoints()).To(Equal(3))
		Expect(strategy.ParameterCount()).To(Equal(6))
		Expect(strategy.Clone()).To(Equal(geotransform.AffineGT{}))
	})

	Context("translation by (1,1)", func() {
		BeforeEach(func() {
			tiePoints = []geotransform.TiePoint{
				geotransform.NewTiePoint(0, 0, 1, 1),
				geotransform.NewTiePoint(10, 0, 11, 1),
				geotransform.NewTiePoint(0, 10, 1, 11),
			}
		})

		itShouldNotReturnAnError(&err)

		It("it should estimate a pure translation", func() {
			Expect(params.DirectParameters).To(HaveLen(6))
			for i, v := range []float64{1, 0, 1, 0, 1, 1} {
				Expect(params.DirectParameters[i]).To(BeNumerically("~", v, 1e-9))
			}
			for i, v := range []float64{1, 0, -1, 0, 1, -1} {
				Expect(params.InverseParameters[i]).To(BeNumerically("~", v, 1e-9))
			}
			Expect(strategy.IsValid(params)).To(BeTrue())
		})

		It("it should map (5,5) to (6,6)", func() {
			c, err := strategy.DirectMap(params, geotransform.Coordinate2D{X: 5, Y: 5})
			Expect(err).To(BeNil())
			expectCoordinate(c, 6, 6, 1e-9)
		})

		It("it should keep the tie points", func() {
			Expect(params.TiePoints).To(Equal(tiePoints))
		})
	})

	Context("three non-collinear tie points", func() {
		BeforeEach(func() {
			tiePoints = []geotransform.TiePoint{
				geotransform.NewTiePoint(12.5, -3, 1045.25, 2210.5),
				geotransform.NewTiePoint(410, 87.75, 1873.5, 1654),
				geotransform.NewTiePoint(-55, 312, 1102.125, 3301.75),
			}
		})

		itShouldNotReturnAnError(&err)

		It("it should reproduce the tie points exactly", func() {
			for _, tp := range tiePoints {
				c, err := strategy.DirectMap(params, tp.Source)
				Expect(err).To(BeNil())
				expectCoordinate(c, tp.Target.X, tp.Target.Y, 1e-9)

				c, err = strategy.InverseMap(params, tp.Target)
				Expect(err).To(BeNil())
				expectCoordinate(c, tp.Source.X, tp.Source.Y, 1e-9)
			}
		})

		It("it should round-trip arbitrary coordinates", func() {
			for _, p := range []geotransform.Coordinate2D{{X: 0, Y: 0}, {X: -1000, Y: 2500}, {X: 3.14159, Y: 2.71828}, {X: 8000, Y: -6000}} {
				c, err := strategy.DirectMap(params, p)
				Expect(err).To(BeNil())
				c, err = strategy.InverseMap(params, c)
				Expect(err).To(BeNil())
				expectCoordinate(c, p.X, p.Y, 1e-9)
			}
		})

		It("it should export a GDAL geotransform", func() {
			gt, err := strategy.GeoTransform(params)
			Expect(err).To(BeNil())
			x, y := gt.Transform(tiePoints[1].Source.X, tiePoints[1].Source.Y)
			Expect(x).To(BeNumerically("~", tiePoints[1].Target.X, 1e-9))
			Expect(y).To(BeNumerically("~", tiePoints[1].Target.Y, 1e-9))
		})
	})

	Context("over-determined exact system", func() {
		BeforeEach(func() {
			// X = 2x - y + 3, Y = 0.5x + 4y - 7
			tiePoints = nil
			for _, s := range [][2]float64{{0, 0}, {1, 0}, {0, 1}, {5, 5}, {-3, 8}, {100, -20}} {
				tiePoints = append(tiePoints, geotransform.NewTiePoint(s[0], s[1], 2*s[0]-s[1]+3, 0.5*s[0]+4*s[1]-7))
			}
		})

		itShouldNotReturnAnError(&err)

		It("it should recover the parameters", func() {
			for i, v := range []float64{2, -1, 3, 0.5, 4, -7} {
				Expect(params.DirectParameters[i]).To(BeNumerically("~", v, 1e-9))
			}
			q, err := geotransform.Evaluate(strategy, params)
			Expect(err).To(BeNil())
			Expect(q.DirectRMSE).To(BeNumerically("<", 1e-9))
			Expect(q.InverseRMSE).To(BeNumerically("<", 1e-9))
		})
	})

	Context("translation of map coordinates", func() {
		BeforeEach(func() {
			tiePoints = nil
			for _, s := range [][2]float64{{500000, 4000000}, {501000, 4000000}, {500000, 4001000}, {501000, 4001000}, {500500, 4000500}} {
				tiePoints = append(tiePoints, geotransform.NewTiePoint(s[0], s[1], s[0]+10, s[1]-5))
			}
		})

		itShouldNotReturnAnError(&err)

		It("it should recover the translation", func() {
			for i, v := range []float64{1, 0, 10, 0, 1, -5} {
				Expect(params.DirectParameters[i]).To(BeNumerically("~", v, 1e-6))
			}
			for i, v := range []float64{1, 0, -10, 0, 1, 5} {
				Expect(params.InverseParameters[i]).To(BeNumerically("~", v, 1e-6))
			}
		})
	})

	Context("map coordinates to pixels", func() {
		BeforeEach(func() {
			// 0.5m pixels, origin at (500000, 4001000), rows going south
			tiePoints = nil
			for _, s := range [][2]float64{
				{500000, 4001000}, {500512.5, 4001000}, {500000, 4000487.25}, {500512.5, 4000487.25},
				{500250, 4000750}, {500031.5, 4000900}, {500400, 4000600.5}, {500123.25, 4000512},
			} {
				tiePoints = append(tiePoints, geotransform.NewTiePoint(s[0], s[1], 2*(s[0]-500000), 2*(4001000-s[1])))
			}
		})

		itShouldNotReturnAnError(&err)

		It("it should recover the parameters", func() {
			for i, v := range []float64{2, 0, -1e6, 0, -2, 8002000} {
				Expect(params.DirectParameters[i]).To(BeNumerically("~", v, 1e-4))
			}
			q, err := geotransform.Evaluate(strategy, params)
			Expect(err).To(BeNil())
			Expect(q.DirectRMSE).To(BeNumerically("<", 1e-6))
			Expect(q.InverseRMSE).To(BeNumerically("<", 1e-6))
		})

		It("it should map pixels back to map coordinates", func() {
			c, err := strategy.InverseMap(params, geotransform.Coordinate2D{X: 100, Y: 200})
			Expect(err).To(BeNil())
			expectCoordinate(c, 500050, 4000900, 1e-6)
		})
	})

	Context("two tie points", func() {
		BeforeEach(func() {
			tiePoints = []geotransform.TiePoint{
				geotransform.NewTiePoint(0, 0, 1, 1),
				geotransform.NewTiePoint(10, 0, 11, 1),
			}
		})
		itShouldReturnAnErrorWithCode(&err, geotransform.InsufficientTiePoints)
		It("it should not return parameters", func() {
			Expect(params).To(BeNil())
		})
	})

	Context("three collinear tie points", func() {
		BeforeEach(func() {
			tiePoints = []geotransform.TiePoint{
				geotransform.NewTiePoint(0, 0, 1, 1),
				geotransform.NewTiePoint(1, 2, 5, 2),
				geotransform.NewTiePoint(2, 4, 3, 7),
			}
		})
		itShouldReturnAnErrorWithCode(&err, geotransform.SingularSystem)
		It("it should not return parameters", func() {
			Expect(params).To(BeNil())
		})
	})

	Context("many collinear tie points", func() {
		BeforeEach(func() {
			tiePoints = nil
			for i := 0; i < 10; i++ {
				x := float64(i)
				tiePoints = append(tiePoints, geotransform.NewTiePoint(x, 2*x+1, x*x, -x))
			}
		})
		itShouldReturnAnErrorWithCode(&err, geotransform.SingularSystem)
		It("it should report the direct system", func() {
			gterr, ok := geotransform.AsError(err, geotransform.SingularSystem)
			Expect(ok).To(BeTrue())
			Expect(gterr.Detail(geotransform.DetailSingularSystemDirection)).To(Equal(geotransform.DirectionDirect))
			Expect(params).To(BeNil())
		})
	})
})

var _ = Describe("Mapping with invalid parameters", func() {
	var (
		strategies = []geotransform.Strategy{geotransform.AffineGT{}, geotransform.RSTGT{}, geotransform.SecondDegreePolynomialGT{}}
		invalid    = map[string]*geotransform.Parameters{
			"nil":        nil,
			"empty":      {},
			"direct":     {DirectParameters: make([]float64, 12)},
			"mis-sized":  {DirectParameters: make([]float64, 5), InverseParameters: make([]float64, 5)},
			"asymmetric": {DirectParameters: make([]float64, 6), InverseParameters: make([]float64, 4)},
		}
	)

	It("it should return InvalidParameters", func() {
		for _, s := range strategies {
			for name, p := range invalid {
				Expect(s.IsValid(p)).To(BeFalse(), s.Name()+"/"+name)
				_, err := s.DirectMap(p, geotransform.Coordinate2D{X: 1, Y: 2})
				Expect(geotransform.IsError(err, geotransform.InvalidParameters)).To(BeTrue(), s.Name()+"/"+name)
				_, err = s.InverseMap(p, geotransform.Coordinate2D{X: 1, Y: 2})
				Expect(geotransform.IsError(err, geotransform.InvalidParameters)).To(BeTrue(), s.Name()+"/"+name)
				_, err = geotransform.Evaluate(s, p)
				Expect(geotransform.IsError(err, geotransform.InvalidParameters)).To(BeTrue(), s.Name()+"/"+name)
			}
		}
	})

	It("it should report parameters that have not been estimated", func() {
		for _, p := range []*geotransform.Parameters{nil, {}} {
			_, err := geotransform.AffineGT{}.DirectMap(p, geotransform.Coordinate2D{})
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("not been estimated"))
		}
	})

	It("it should reject the parameters of another strategy", func() {
		params, err := geotransform.RSTGT{}.Estimate([]geotransform.TiePoint{
			geotransform.NewTiePoint(0, 0, 1, 1),
			geotransform.NewTiePoint(1, 0, 2, 1),
		})
		Expect(err).To(BeNil())
		_, err = geotransform.AffineGT{}.DirectMap(params, geotransform.Coordinate2D{})
		Expect(geotransform.IsError(err, geotransform.InvalidParameters)).To(BeTrue())
	})
})

var _ = Describe("Estimate with insufficient tie points", func() {
	It("it should return InsufficientTiePoints for every strategy", func() {
		for _, s := range []geotransform.Strategy{geotransform.AffineGT{}, geotransform.RSTGT{}, geotransform.SecondDegreePolynomialGT{}} {
			var tps []geotransform.TiePoint
			for i := 0; i < s.MinRequiredTiePoints(); i++ {
				_, err := s.Estimate(tps)
				Expect(geotransform.IsError(err, geotransform.InsufficientTiePoints)).To(BeTrue(), s.Name())
				tps = append(tps, geotransform.NewTiePoint(float64(i), float64(i*i), 0, 0))
			}
		}
	})
})
