package nav_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/entui/internal/nav"
)

const eps = 1e-9

func expectInvariant(v nav.Viewport) {
	ExpectWithOffset(1, v.Start()).To(BeNumerically(">=", 0))
	ExpectWithOffset(1, v.Start()+v.Width()).To(BeNumerically("<=", v.TotalSize()+eps))
	ExpectWithOffset(1, v.Width()).To(BeNumerically(">=", v.MinWidth()-eps))
}

var _ = Describe("Viewport", func() {
	var v nav.Viewport

	BeforeEach(func() {
		// 1 MiB profile in 256-byte blocks
		v = nav.New(1<<20, 256)
	})

	Describe("New", func() {
		It("shows the whole range in decimal mode", func() {
			Expect(v.Start()).To(BeZero())
			Expect(v.Width()).To(Equal(float64(1 << 20)))
			Expect(v.Mode()).To(Equal(nav.Decimal))
			Expect(v.QuitRequested()).To(BeFalse())
			Expect(v.Bounds()).To(Equal([2]float64{0, 1 << 20}))
		})
	})

	Describe("panning", func() {
		It("ignores PanLeft at the left edge", func() {
			once := v.Apply(nav.PanLeft)
			Expect(once).To(Equal(v))
			Expect(once.Apply(nav.PanLeft)).To(Equal(once))
		})

		It("moves by a tenth of the window width", func() {
			v = nav.Replay(v, nav.ZoomIn, nav.ZoomIn)
			before := v.Start()
			v = v.Apply(nav.PanRight)
			Expect(v.Start() - before).To(BeNumerically("~", v.Width()*0.1, eps))
			v = v.Apply(nav.PanLeft)
			Expect(v.Start()).To(BeNumerically("~", before, eps))
		})

		It("stops at the right edge and stays there", func() {
			v = nav.Replay(v, nav.ZoomIn, nav.ZoomIn, nav.ZoomIn)
			for i := 0; i < 100; i++ {
				v = v.Apply(nav.PanRight)
			}
			Expect(v.End()).To(BeNumerically("~", v.TotalSize(), eps))
			Expect(v.Apply(nav.PanRight)).To(Equal(v))
		})

		It("does not move a full-width window right", func() {
			Expect(v.Apply(nav.PanRight).Start()).To(BeZero())
		})
	})

	Describe("zooming", func() {
		It("shrinks the width by ten percent around the center", func() {
			v = nav.Replay(v, nav.ZoomIn, nav.ZoomIn, nav.PanRight, nav.PanRight)
			center := v.Start() + v.Width()/2
			w := v.Width()
			v = v.Apply(nav.ZoomIn)
			Expect(v.Width()).To(BeNumerically("~", w*0.9, eps))
			Expect(v.Start() + v.Width()/2).To(BeNumerically("~", center, eps))
		})

		It("pins the window to zero when zooming out near the left edge", func() {
			v = v.Apply(nav.ZoomIn).Apply(nav.ZoomIn)
			for i := 0; i < 50; i++ {
				v = v.Apply(nav.PanLeft)
			}
			Expect(v.Start()).To(BeZero())
			v = v.Apply(nav.ZoomOut)
			Expect(v.Start()).To(BeZero())
		})

		It("never narrows below ten blocks", func() {
			for i := 0; i < 500; i++ {
				v = v.Apply(nav.ZoomIn)
			}
			Expect(v.Width()).To(Equal(float64(256 * 10)))
			Expect(v.Apply(nav.ZoomIn).Width()).To(Equal(v.Width()))
		})

		It("never widens beyond the total size", func() {
			v = nav.Replay(v, nav.ZoomIn, nav.ZoomOut, nav.ZoomOut, nav.ZoomOut)
			Expect(v.Width()).To(Equal(v.TotalSize()))
			Expect(v.Start()).To(BeZero())
		})

		It("clamps zoom-out at the right edge", func() {
			for i := 0; i < 10; i++ {
				v = v.Apply(nav.ZoomIn)
			}
			for i := 0; i < 100; i++ {
				v = v.Apply(nav.PanRight)
			}
			v = v.Apply(nav.ZoomOut)
			Expect(v.End()).To(BeNumerically("~", v.TotalSize(), eps))
			expectInvariant(v)
		})

		It("roughly restores the width on a zoom-in/zoom-out round trip", func() {
			v = nav.Replay(v, nav.ZoomIn, nav.ZoomIn, nav.ZoomIn, nav.PanRight)
			w := v.Width()
			v = nav.Replay(v, nav.ZoomIn, nav.ZoomOut)
			Expect(v.Width()).To(BeNumerically("~", w, w*0.011))
		})
	})

	Describe("small files", func() {
		BeforeEach(func() {
			// 1000 bytes in 256-byte blocks: total 1024, ten blocks would be 2560
			v = nav.New(1024, 256)
		})

		It("keeps the width at the total size after repeated zoom-in", func() {
			for i := 0; i < 10; i++ {
				v = v.Apply(nav.ZoomIn)
				Expect(v.Width()).To(Equal(1024.0))
				Expect(v.Start()).To(BeZero())
			}
		})

		It("keeps pans as no-ops", func() {
			Expect(nav.Replay(v, nav.PanRight, nav.PanLeft, nav.PanRight)).To(Equal(v))
		})
	})

	Describe("display mode", func() {
		It("toggles between decimal and hexadecimal", func() {
			v = v.Apply(nav.ToggleHex)
			Expect(v.Mode()).To(Equal(nav.Hexadecimal))
			v = v.Apply(nav.ToggleHex)
			Expect(v.Mode()).To(Equal(nav.Decimal))
		})

		It("leaves the window untouched", func() {
			z := v.Apply(nav.ZoomIn)
			h := z.Apply(nav.ToggleHex)
			Expect(h.Start()).To(Equal(z.Start()))
			Expect(h.Width()).To(Equal(z.Width()))
		})
	})

	Describe("labels", func() {
		It("formats decimal offsets at start, middle and end", func() {
			v = nav.New(1024, 256)
			Expect(v.Labels()).To(Equal([3]string{"0", "512", "1024"}))
		})

		It("formats zero-padded hexadecimal offsets", func() {
			v = nav.New(1024, 256).Apply(nav.ToggleHex)
			Expect(v.Labels()).To(Equal([3]string{"0x00000000", "0x00000200", "0x00000400"}))
		})

		It("truncates fractional bounds", func() {
			v = nav.Replay(v, nav.ZoomIn, nav.PanRight)
			labels := v.Labels()
			Expect(labels[0]).To(Equal(v.FormatOffset(uint64(v.Start()))))
		})
	})

	Describe("reset", func() {
		It("returns to the full range and keeps the display mode", func() {
			v = nav.Replay(v, nav.ToggleHex, nav.ZoomIn, nav.ZoomIn, nav.PanRight, nav.Reset)
			Expect(v.Start()).To(BeZero())
			Expect(v.Width()).To(Equal(v.TotalSize()))
			Expect(v.Mode()).To(Equal(nav.Hexadecimal))
		})
	})

	Describe("quit", func() {
		It("is terminal", func() {
			v = v.Apply(nav.ZoomIn).Apply(nav.Quit)
			Expect(v.QuitRequested()).To(BeTrue())
			frozen := v
			for _, c := range []nav.Command{nav.PanLeft, nav.PanRight, nav.ZoomIn, nav.ZoomOut, nav.ToggleHex, nav.Reset} {
				Expect(v.Apply(c)).To(Equal(frozen), "command %s", c)
			}
		})
	})

	Describe("invariant", func() {
		It("holds after every transition of a random walk", func() {
			rng := rand.New(rand.NewSource(7))
			cmds := []nav.Command{nav.PanLeft, nav.PanRight, nav.ZoomIn, nav.ZoomOut, nav.ToggleHex, nav.Reset}
			for _, total := range []float64{1 << 20, 3000, 1024, 256} {
				v = nav.New(total, 256)
				for i := 0; i < 2000; i++ {
					v = v.Apply(cmds[rng.Intn(len(cmds))])
					expectInvariant(v)
				}
			}
		})
	})
})

var _ = Describe("Command", func() {
	It("has readable names", func() {
		Expect(nav.ZoomIn.String()).To(Equal("zoom-in"))
		Expect(nav.Command(99).String()).To(Equal("unknown"))
	})
})
