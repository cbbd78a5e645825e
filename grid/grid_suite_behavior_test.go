package grid_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/zfunge/grid"
)

var _ = Describe("IP", func() {
	It("stays in bounds for every reachable state on a ragged-free grid", func() {
		g, err := grid.New([][]rune{
			[]rune("abc"),
			[]rune("def"),
		})
		Expect(err).NotTo(HaveOccurred())

		ip := g.IP()
		deltas := []grid.Delta{grid.Right, grid.Right, grid.Down, grid.Left, grid.Left, grid.Up}
		for _, d := range deltas {
			ip = ip.Advance(d)
			Expect(ip.X).To(BeNumerically(">=", 0))
			Expect(ip.X).To(BeNumerically("<", ip.W))
			Expect(ip.Y).To(BeNumerically(">=", 0))
			Expect(ip.Y).To(BeNumerically("<", ip.H))
		}
	})

	It("treats the grid as immutable after construction", func() {
		rows := [][]rune{[]rune("ab"), []rune("cd")}
		g, err := grid.New(rows)
		Expect(err).NotTo(HaveOccurred())

		rows[0][0] = 'z'
		Expect(g.At(grid.IP{X: 0, Y: 0, W: 2, H: 2})).To(Equal('a'))
	})
})
