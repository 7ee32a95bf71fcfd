package geocode

type coords struct{ Lat, Lon float64 }

// Approximate coordinates for the UK cities that dominate the dataset.
// Anything missing here falls through to the remote lookup.
var cityCoords = map[string]coords{
	// England
	"London":              {51.5074, -0.1278},
	"Manchester":          {53.4808, -2.2426},
	"Birmingham":          {52.4862, -1.8904},
	"Leeds":               {53.8008, -1.5491},
	"Sheffield":           {53.3811, -1.4701},
	"Bristol":             {51.4545, -2.5879},
	"Liverpool":           {53.4084, -2.9916},
	"Newcastle upon Tyne": {54.9783, -1.6178},
	"Nottingham":          {52.9548, -1.1581},
	"Plymouth":            {50.3755, -4.1427},
	"Hull":                {53.7676, -0.3274},
	"Preston":             {53.7632, -2.7031},
	"Bath":                {51.3811, -2.3590},
	"York":                {53.9600, -1.0873},
	"Exeter":              {50.7184, -3.5339},
	"Brighton":            {50.8225, -0.1372},
	"Norwich":             {52.6309, 1.2974},
	"Cambridge":           {52.2053, 0.1218},
	"Oxford":              {51.7520, -1.2577},
	"Portsmouth":          {50.8198, -1.0880},
	"Southampton":         {50.9097, -1.4044},
	"Reading":             {51.4543, -0.9781},
	"Bournemouth":         {50.7192, -1.8808},
	"Poole":               {50.7150, -1.9872},
	"Swindon":             {51.5557, -1.7797},
	"Derby":               {52.9225, -1.4746},
	"Leicester":           {52.6369, -1.1398},
	"Wolverhampton":       {52.5862, -2.1282},
	"Blackpool":           {53.8175, -3.0357},
	"Oldham":              {53.5409, -2.1114},
	"Stockport":           {53.4106, -2.1575},
	"Gateshead":           {54.9526, -1.6644},
	"Doncaster":           {53.5228, -1.1285},
	"Rotherham":           {53.4302, -1.3597},
	"Barnsley":            {53.5526, -1.4797},
	"Wakefield":           {53.6830, -1.4992},
	"Bradford":            {53.7960, -1.7594},
	"Harrogate":           {54.0000, -1.5373},

	// Scotland
	"Glasgow":   {55.8642, -4.2518},
	"Edinburgh": {55.9533, -3.1883},
	"Aberdeen":  {57.1497, -2.0943},
	"Dundee":    {56.4620, -2.9707},
	"Stirling":  {56.1165, -3.9369},
	"Perth":     {56.3962, -3.4375},
	"Inverness": {57.4778, -4.2247},
	"Dumfries":  {55.0703, -3.6140},

	// Wales
	"Cardiff": {51.4816, -3.1791},
	"Swansea": {51.6214, -3.9436},
	"Wrexham": {53.0478, -2.9916},

	// Northern Ireland
	"Belfast": {54.5973, -5.9301},
}
