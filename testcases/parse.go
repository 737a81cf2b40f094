package testcases

// parseCases cover tokenisation details.
var parseCases = []TestCase{
	{
		Name:   "unknown_op_codes",
		Stream: stream(clearCanvas(), "99", color(0, 0, 0, 0), "1234", penDown(), move([2]int{1, 1}), penUp()),
		Want: []string{
			"CLR;",
			"CO 0 0 0 0;",
			"PEN DOWN;",
			"MV (1, 1);",
			"PEN UP;",
		},
	},
	{
		// The move ends at the center.  The tokens of the last offset
		// are skipped one by one.
		Name:   "center_ends_move",
		Stream: stream(clearCanvas(), penDown(), move([2]int{10, 10}, [2]int{-10, -10}, [2]int{5, 5}), penUp()),
		Want: []string{
			"CLR;",
			"PEN DOWN;",
			"MV (10, 10) (0, 0);",
			"PEN UP;",
		},
	},
	{
		Name:   "lower_case",
		Stream: "f0a04000417f4000417fc040004000804001c05f205f20804000",
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
		Name:   "odd_length",
		Stream: "F0A04000417F4000417FC040004000804001C05F205F208040008",
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
		Name:   "empty_move",
		Stream: stream(clearCanvas(), "C0", penDown(), "C0"),
		Want: []string{
			"CLR;",
			"PEN DOWN;",
		},
	},
	{
		// the move ends when no complete offset is left
		Name:   "move_short_tail",
		Stream: stream(clearCanvas(), penDown(), move([2]int{10, 10}), "9999"),
		Want: []string{
			"CLR;",
			"PEN DOWN;",
			"MV (10, 10);",
		},
	},
	{
		Name:   "truncated_color",
		Stream: stream(clearCanvas(), "A0", word(0), word(0)),
		Want:   []string{"CLR;"},
	},
	{
		Name:   "truncated_pen",
		Stream: stream(clearCanvas(), "80"),
		Want:   []string{"CLR;"},
	},
	{
		Name:   "truncated_move",
		Stream: stream(clearCanvas(), "C0", word(1), "40"),
		Want:   []string{"CLR;"},
	},
	{
		// offsets need a start point
		Name:   "move_before_clear",
		Stream: stream(move([2]int{1, 1}), clearCanvas()),
		Want:   []string{"CLR;"},
	},
}
