package damm

var matrices map[uint8][][]uint8 = map[uint8][][]uint8{
	10: [][]uint8{
		{0,3,1,7,5,9,8,6,4,2},
		{7,0,9,2,1,5,4,8,6,3},
		{4,2,0,6,8,7,1,3,5,9},
		{1,7,5,0,9,8,3,4,2,6},
		{6,1,2,3,0,4,5,9,7,8},
		{3,6,7,4,2,0,9,5,8,1},
		{5,8,6,9,7,2,0,1,3,4},
		{8,9,4,5,3,6,2,0,1,7},
		{9,4,3,8,6,1,7,2,0,5},
		{2,5,8,1,4,3,6,7,9,0},
	},
	16: [][]uint8{
		{0,2,4,6,8,10,12,14,3,1,7,5,11,9,15,13},
		{2,0,6,4,10,8,14,12,1,3,5,7,9,11,13,15},
		{4,6,0,2,12,14,8,10,7,5,3,1,15,13,11,9},
		{6,4,2,0,14,12,10,8,5,7,1,3,13,15,9,11},
		{8,10,12,14,0,2,4,6,11,9,15,13,3,1,7,5},
		{10,8,14,12,2,0,6,4,9,11,13,15,1,3,5,7},
		{12,14,8,10,4,6,0,2,15,13,11,9,7,5,3,1},
		{14,12,10,8,6,4,2,0,13,15,9,11,5,7,1,3},
		{3,1,7,5,11,9,15,13,0,2,4,6,8,10,12,14},
		{1,3,5,7,9,11,13,15,2,0,6,4,10,8,14,12},
		{7,5,3,1,15,13,11,9,4,6,0,2,12,14,8,10},
		{5,7,1,3,13,15,9,11,6,4,2,0,14,12,10,8},
		{11,9,15,13,3,1,7,5,8,10,12,14,0,2,4,6},
		{9,11,13,15,1,3,5,7,10,8,14,12,2,0,6,4},
		{15,13,11,9,7,5,3,1,12,14,8,10,4,6,0,2},
		{13,15,9,11,5,7,1,3,14,12,10,8,6,4,2,0},
	},
}
