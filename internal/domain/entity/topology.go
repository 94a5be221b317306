package entity

// PoseConnections is the skeleton topology of the 33-point pose model:
// pairs of landmark indices to draw bones between.
//
//	0: nose            11: left shoulder   23: left hip
//	1-8: eyes/ears     12: right shoulder  24: right hip
//	9,10: mouth        13-22: arms/hands   25-32: legs/feet
var PoseConnections = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 7}, {0, 4}, {4, 5}, {5, 6}, {6, 8},
	{9, 10},
	{11, 12}, {11, 13}, {13, 15}, {15, 17}, {15, 19}, {15, 21}, {17, 19},
	{12, 14}, {14, 16}, {16, 18}, {16, 20}, {16, 22}, {18, 20},
	{11, 23}, {12, 24}, {23, 24},
	{23, 25}, {24, 26}, {25, 27}, {26, 28},
	{27, 29}, {28, 30}, {29, 31}, {30, 32}, {27, 31}, {28, 32},
}
