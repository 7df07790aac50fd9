package river

// floodStages maps USGS site ids to their published flood stage in feet.
// The value only annotates the snapshot for display; sites without an entry
// simply render the live level with no threshold line.
var floodStages = map[string]float64{
	"03303280": 25, // Pittsburgh, PA
	"03294500": 18, // Wheeling, WV
	"03322000": 38, // Uniontown, KY
	"03322190": 36, // Henderson, KY
	"03322420": 40, // J.T. Myers L&D, KY
	"03381700": 33, // Shawneetown, IL
	"03384500": 40, // Golconda, IL
	"03399800": 43, // Smithland L&D, KY
	"03612500": 42, // Metropolis, IL
	"07022000": 40, // Cairo, IL
}

// FloodStage returns the known flood threshold for a site. A missing entry
// is a normal outcome, reported through ok.
func FloodStage(site string) (float64, bool) {
	stage, ok := floodStages[site]
	return stage, ok
}
