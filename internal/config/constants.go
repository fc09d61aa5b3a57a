package config

// MonthNames is the canonical month column order of every output matrix.
var MonthNames = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// YearlyTotalColumn is the derived column appended after the twelve months.
const YearlyTotalColumn = "Yearly Total"

// Output file names, one set per resolved report year.
const (
	DetailFileName  = "pdfData.xlsx"
	DetailCSVName   = "pdfData.csv"
	RevenueFileName = "roomRevenue.xlsx"
	BookingFileName = "roomBooking.xlsx"
)

// DefaultPropertyRooms is the managed property's room layout. Every room
// number expanded from these ranges appears as a matrix row whether or not
// any report mentions it.
var DefaultPropertyRooms = []RoomRange{
	{Start: 101, End: 104},
	{Start: 201, End: 204},
	{Start: 301, End: 308},
	{Start: 401, End: 406},
	{Start: 501, End: 506},
	{Start: 601, End: 608},
	{Start: 701, End: 708},
	{Start: 801, End: 808},
	{Start: 901, End: 908},
	{Start: 1001, End: 1008},
	{Start: 1101, End: 1108},
	{Start: 1201, End: 1208},
	{Start: 1401, End: 1412},
	{Start: 1500, End: SingleRoom},
}
