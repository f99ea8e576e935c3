package config

// Palette is the fixed list of {foreground, background} preview color pairs.
var Palette = [][2]string{
	{"#074A5E", "#FD975E"}, {"#07BD59", "#59014E"}, {"#91FEC7", "#3B5C91"},
	{"#482BEA", "#8DE6B7"}, {"#23016B", "#3DCA06"}, {"#3DE109", "#360D75"},
	{"#23104B", "#BE906A"}, {"#2531E7", "#B5F7E1"}, {"#21A08B", "#54023C"},
	{"#1F4897", "#9CE08D"}, {"#D7C106", "#4A1987"}, {"#8BF0D9", "#5D4E20"},
	{"#2C05EB", "#FBC137"}, {"#9826FA", "#8DFCEB"}, {"#F2E497", "#7143D0"},
	{"#534207", "#20DB1C"}, {"#AED847", "#180FB5"}, {"#0415C7", "#75BF4A"},
	{"#291A78", "#F7ABE4"}, {"#0B194D", "#95D81E"}, {"#A92310", "#B7F8E9"},
	{"#A3BF18", "#7E0829"}, {"#270E8D", "#57CF8A"}, {"#D456FE", "#0C137D"},
	{"#48D76B", "#264A83"}, {"#F4E027", "#874CA9"}, {"#4DFE7B", "#6C0478"},
	{"#EFC324", "#531CA2"}, {"#3541BD", "#AEC6D5"}, {"#20DE34", "#254A18"},
	{"#F387A6", "#830B4C"}, {"#B1A5EC", "#1C2648"}, {"#91072C", "#71E6AD"},
	{"#830B2D", "#70C8A5"}, {"#ACFD85", "#561C89"}, {"#3B1647", "#FD6C20"},
	{"#6A4295", "#A6DB79"}, {"#43D0A8", "#0E3894"}, {"#9BC478", "#91034B"},
	{"#AF67D5", "#3D062E"}, {"#5109DE", "#06E34D"}, {"#4F1920", "#30EC57"},
	{"#6F2B4C", "#58DB9A"}, {"#F27D5A", "#2F0CB9"}, {"#42FDC5", "#493BFD"},
	{"#9EA0D6", "#4E0F91"}, {"#2435A6", "#F8E059"}, {"#032B65", "#7BC698"},
	{"#093D28", "#18E749"}, {"#60FB57", "#B5347C"}, {"#692CA4", "#1ED9FB"},
	{"#CDEF75", "#1C2FAE"}, {"#310469", "#01E3DA"}, {"#1D354F", "#A4C3F0"},
	{"#3C7645", "#9DFC52"}, {"#F4DCA2", "#1F392A"}, {"#C1E3A4", "#B80753"},
	{"#31DA70", "#091D27"}, {"#1E0BF8", "#17E3D4"}, {"#4A387C", "#93D501"},
}
