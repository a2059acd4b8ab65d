package utils_test

import (
	"math"

	"github.com/airbusgeo/geotransform/internal/utils"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Statistics", func() {
	var values []float64

	Describe("RootMeanSquare", func() {
		Context("empty values", func() {
			BeforeEach(func() {
				values = nil
			})
			It("it should return 0", func() {
				Expect(utils.RootMeanSquare(values)).To(Equal(0.0))
			})
		})

		Context("3-4 values", func() {
			BeforeEach(func() {
				values = []float64{3, 4}
			})
			It("it should return the quadratic mean", func() {
				Expect(utils.RootMeanSquare(values)).To(BeNumerically("~", math.Sqrt(12.5), 1e-12))
			})
		})
	})

	Describe("MaxElemF", func() {
		BeforeEach(func() {
			values = []float64{1, -5, 7.5, 2}
		})
		It("it should return the max value", func() {
			Expect(utils.MaxElemF(values)).To(Equal(7.5))
			Expect(utils.MaxElemF(nil)).To(Equal(0.0))
		})
	})
})

var _ = Describe("F64ToS", func() {
	It("it should use the maximum accuracy", func() {
		Expect(utils.F64ToS(0.1)).To(Equal("0.1"))
		Expect(utils.F64ToS(1e-9)).To(Equal("0.000000001"))
	})
})
