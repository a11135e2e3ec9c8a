package universe

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string      //template name
	Descr       string      //template descr
	Coordinates [][2]uint32 //array of [row, column] coordinates
}

//GalaxyTemplate returns the four-armed spiral of the default seed, 48 cells
//each arm is two lines of six cells, the arms are rotations of each other around the grid center
func GalaxyTemplate() Template {
	t := Template{
		Name:        "galaxy",
		Descr:       "rotationally symmetric four-armed spiral",
		Coordinates: make([][2]uint32, 0, 48),
	}
	for x := uint32(0); x < 6; x++ {
		t.Coordinates = append(t.Coordinates,
			[2]uint32{4, 7 + x},
			[2]uint32{5, 7 + x},
			[2]uint32{4 + x, 14},
			[2]uint32{4 + x, 15},
			[2]uint32{11, 15 - x},
			[2]uint32{12, 15 - x},
			[2]uint32{12 - x, 7},
			[2]uint32{12 - x, 8},
		)
	}
	return t
}

//SpaceshipTemplate returns the 9 cell spaceship of the default seed
func SpaceshipTemplate() Template {
	return Template{
		Name:  "spaceship",
		Descr: "lightweight spaceship in the lower left corner",
		Coordinates: [][2]uint32{
			{17, 3}, {17, 6},
			{18, 2},
			{19, 2}, {19, 6},
			{20, 2}, {20, 3}, {20, 4}, {20, 5},
		},
	}
}
