package testcases

// exampleCases are the reference streams of the plotter format
// description.
var exampleCases = []TestCase{
	{
		Name:   "green_line",
		Stream: "F0A04000417F4000417FC040004000804001C05F205F20804000",
		Want: []string{
			"CLR;",
			"CO 0 255 0 255;",
			"MV (0, 0);",
			"PEN DOWN;",
			"MV (4000, 4000);",
			"PEN UP;",
		},
	},
	{
		// The move to the center ends the first move early.  The coordinate
		// tokens which follow are skipped.
		Name:   "blue_square",
		Stream: "F0A040004000417F417FC04000400090400047684F5057384000804001C05F204000400001400140400040007E405B2C4000804000",
		Want: []string{
			"CLR;",
			"CO 0 0 255 255;",
			"MV (0, 0);",
			"PEN DOWN;",
			"MV (4000, 0) (4000, -8000) (-4000, -8000) (-4000, 0) (-500, 0);",
			"PEN UP;",
		},
	},
	{
		Name:   "red_clipping",
		Stream: "F0A0417F40004000417FC067086708804001C0670840004000187818784000804000",
		Want: []string{
			"CLR;",
			"CO 255 0 0 255;",
			"MV (5000, 5000);",
			"PEN DOWN;",
			"MV (8191, 5000);",
			"PEN UP;",
			"MV (8191, 0);",
			"PEN DOWN;",
			"MV (5000, 0);",
			"PEN UP;",
		},
	},
	{
		Name:   "orange_diagonal",
		Stream: "F0A0417F41004000417FC067086708804001C067082C3C18782C3C804000",
		Want: []string{
			"CLR;",
			"CO 255 128 0 255;",
			"MV (5000, 5000);",
			"PEN DOWN;",
			"MV (8191, 3404);",
			"PEN UP;",
			"MV (8191, 1595);",
			"PEN DOWN;",
			"MV (5000, 0);",
			"PEN UP;",
		},
	},
}
