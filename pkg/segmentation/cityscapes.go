package segmentation

import "image/color"

// Cityscapes identifies the cityscapes label color table.
const Cityscapes = "cityscapes"

// cityscapesColors maps the 34 cityscapes class IDs to their standard
// colors. The void classes (0-4) render black.
var cityscapesColors = map[int]color.NRGBA{
	0:  {0, 0, 0, 255},       // unlabeled
	1:  {0, 0, 0, 255},       // ego vehicle
	2:  {0, 0, 0, 255},       // rectification border
	3:  {0, 0, 0, 255},       // out of roi
	4:  {0, 0, 0, 255},       // static
	5:  {111, 74, 0, 255},    // dynamic
	6:  {81, 0, 81, 255},     // ground
	7:  {128, 64, 128, 255},  // road
	8:  {244, 35, 232, 255},  // sidewalk
	9:  {250, 170, 160, 255}, // parking
	10: {230, 150, 140, 255}, // rail track
	11: {70, 70, 70, 255},    // building
	12: {102, 102, 156, 255}, // wall
	13: {190, 153, 153, 255}, // fence
	14: {180, 165, 180, 255}, // guard rail
	15: {150, 100, 100, 255}, // bridge
	16: {150, 120, 90, 255},  // tunnel
	17: {153, 153, 153, 255}, // pole
	18: {153, 153, 153, 255}, // polegroup
	19: {250, 170, 30, 255},  // traffic light
	20: {220, 220, 0, 255},   // traffic sign
	21: {107, 142, 35, 255},  // vegetation
	22: {152, 251, 152, 255}, // terrain
	23: {70, 130, 180, 255},  // sky
	24: {220, 20, 60, 255},   // person
	25: {255, 0, 0, 255},     // rider
	26: {0, 0, 142, 255},     // car
	27: {0, 0, 70, 255},      // truck
	28: {0, 60, 100, 255},    // bus
	29: {0, 0, 90, 255},      // caravan
	30: {0, 0, 110, 255},     // trailer
	31: {0, 80, 100, 255},    // train
	32: {0, 0, 230, 255},     // motorcycle
	33: {119, 11, 32, 255},   // bicycle
}
