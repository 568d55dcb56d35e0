package constants

// USToMetric converts a US needle/hook size to millimeters. Sizes outside
// the table (e.g. US 12, US 14) have no standard single equivalent and are
// dropped by callers.
var USToMetric = map[int]string{
	0:  "2.0",
	1:  "2.25",
	2:  "2.75",
	3:  "3.25",
	4:  "3.5",
	5:  "3.75",
	6:  "4.0",
	7:  "4.5",
	8:  "5.0",
	9:  "5.5",
	10: "6.0",
	11: "8.0",
	13: "9.0",
	15: "10.0",
	17: "12.0",
	19: "15.0",
}
