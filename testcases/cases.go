package testcases

var squareCases = []TestCase{
	{Name: "one", Width: 1, Height: 1},
	{Name: "two", Width: 2, Height: 2},
	{Name: "pow2_8", Width: 8, Height: 8},
	{Name: "pow2_16", Width: 16, Height: 16},
	{Name: "pow2_64", Width: 64, Height: 64},
	{Name: "odd_9", Width: 9, Height: 9},
	{Name: "odd_37", Width: 37, Height: 37},
	{Name: "vertical_16", Width: 16, Height: 16, Vertical: true},
}

// parityCases cover the four parity classes of (width, height).
var parityCases = []TestCase{
	{Name: "even_odd", Width: 4, Height: 3},
	{Name: "even_odd_vertical", Width: 4, Height: 3, Vertical: true},
	{Name: "odd_even", Width: 13, Height: 10},
	{Name: "odd_even_vertical", Width: 13, Height: 10, Vertical: true},
	{Name: "odd_odd", Width: 7, Height: 5},
	{Name: "even_even", Width: 10, Height: 6},
	{Name: "six_seven", Width: 6, Height: 7},
	{Name: "odd_even_small", Width: 3, Height: 2},
}

var lineCases = []TestCase{
	{Name: "row", Width: 17, Height: 1},
	{Name: "column", Width: 1, Height: 17},
	{Name: "row_vertical", Width: 17, Height: 1, Vertical: true},
	{Name: "column_vertical", Width: 1, Height: 17, Vertical: true},
	{Name: "two_rows", Width: 12, Height: 2},
	{Name: "two_columns", Width: 2, Height: 9},
}

// elongatedCases run the base generator on shapes far from square.
var elongatedCases = []TestCase{
	{Name: "wide", Width: 40, Height: 7},
	{Name: "tall", Width: 5, Height: 19},
	{Name: "very_tall", Width: 24, Height: 224},
	{Name: "narrow", Width: 3, Height: 9},
}

var tiledCases = []TestCase{
	{Name: "wide", Width: 40, Height: 7, Tiled: true},
	{Name: "tall", Width: 7, Height: 40, Tiled: true},
	{Name: "square", Width: 33, Height: 33, Tiled: true},
	{Name: "odd_even", Width: 45, Height: 8, Tiled: true},
	{Name: "strip", Width: 101, Height: 3, Tiled: true},
	{Name: "row", Width: 9, Height: 1, Tiled: true},
	{Name: "slightly_wide", Width: 11, Height: 7, Tiled: true},
}
