package testcases

// clipCases exercise the canvas edge handling on a small canvas.
var clipCases = []TestCase{
	{
		Name:   "left_exit",
		Stream: stream(clearCanvas(), penDown(), move([2]int{-50, 10}, [2]int{-100, 0}, [2]int{100, 10}), penUp()),
		Canvas: small,
		Want: []string{
			"CLR;",
			"PEN DOWN;",
			"MV (-50, 10) (-100, 10);",
			"PEN UP;",
			"MV (-100, 15);",
			"PEN DOWN;",
			"MV (-50, 20);",
			"PEN UP;",
		},
	},
	{
		Name:   "top_exit",
		Stream: stream(clearCanvas(), penDown(), move([2]int{30, 150}), penUp()),
		Canvas: small,
		Want: []string{
			"CLR;",
			"PEN DOWN;",
			"MV (20, 100);",
			"PEN UP;",
			"PEN UP;",
		},
	},
	{
		// x = -12.5 is truncated towards zero
		Name:   "bottom_exit",
		Stream: stream(clearCanvas(), penDown(), move([2]int{-20, -160}), penUp()),
		Canvas: small,
		Want: []string{
			"CLR;",
			"PEN DOWN;",
			"MV (-12, -100);",
			"PEN UP;",
			"PEN UP;",
		},
	},
	{
		Name:   "corner_exit",
		Stream: stream(clearCanvas(), penDown(), move([2]int{150, 150}), penUp()),
		Canvas: small,
		Want: []string{
			"CLR;",
			"PEN DOWN;",
			"MV (100, 100);",
			"PEN UP;",
			"PEN UP;",
		},
	},
	{
		Name:   "vertical_exit",
		Stream: stream(clearCanvas(), penDown(), move([2]int{0, -150}, [2]int{0, 100}), penUp()),
		Canvas: small,
		Want: []string{
			"CLR;",
			"PEN DOWN;",
			"MV (0, -100);",
			"PEN UP;",
			"MV (0, -100);",
			"PEN DOWN;",
			"MV (0, -50);",
			"PEN UP;",
		},
	},
	{
		Name: "double_exit",
		Stream: stream(clearCanvas(), color(0, 0, 255, 255), move([2]int{50, 50}),
			penDown(), move([2]int{100, 0}, [2]int{0, -100}, [2]int{-100, 0}), penUp()),
		Canvas: small,
		Want: []string{
			"CLR;",
			"CO 0 0 255 255;",
			"MV (50, 50);",
			"PEN DOWN;",
			"MV (100, 50);",
			"PEN UP;",
			"MV (100, -50);",
			"PEN DOWN;",
			"MV (50, -50);",
			"PEN UP;",
		},
	},
	{
		// pen up moves may leave the canvas
		Name: "pen_up_excursion",
		Stream: stream(clearCanvas(), move([2]int{150, 0}, [2]int{-100, 0}),
			penDown(), move([2]int{10, 0}), penUp()),
		Canvas: small,
		Want: []string{
			"CLR;",
			"MV (150, 0) (50, 0);",
			"PEN DOWN;",
			"MV (60, 0);",
			"PEN UP;",
		},
	},
	{
		// off-canvas pen up points are all kept
		Name: "pen_up_wander",
		Stream: stream(clearCanvas(), move([2]int{150, 0}, [2]int{10, 50}, [2]int{-110, -50}),
			penDown(), move([2]int{10, 0}), penUp()),
		Canvas: small,
		Want: []string{
			"CLR;",
			"MV (150, 0) (160, 50) (50, 0);",
			"PEN DOWN;",
			"MV (60, 0);",
			"PEN UP;",
		},
	},
	{
		// after an explicit pen up the path does not resume drawing when
		// it comes back
		Name: "pen_up_after_exit",
		Stream: stream(clearCanvas(), penDown(), move([2]int{150, 0}), penUp(),
			move([2]int{0, 50}, [2]int{-100, 0}), penUp()),
		Canvas: small,
		Want: []string{
			"CLR;",
			"PEN DOWN;",
			"MV (100, 0);",
			"PEN UP;",
			"PEN UP;",
			"MV (150, 50) (50, 50);",
			"PEN UP;",
		},
	},
}
