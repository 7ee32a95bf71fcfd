package regions

// regionTable maps each canonical region key to the raw county strings found
// on imported facility records. The raw values are inconsistent (sometimes a
// ceremonial county, sometimes a city, sometimes a historic county), which is
// exactly why this table exists. A raw string may appear under at most one
// key; NewResolver enforces that at startup.
var regionTable = map[string][]string{
	// England
	"dorset":                   {"Poole", "Bournemouth", "Dorset", "Wareham", "Weymouth", "Blandford Forum"},
	"greater-manchester":       {"Greater Manchester", "Manchester", "Oldham", "Stockport", "Salford", "Bury"},
	"devon":                    {"Devon", "Plymouth", "Exeter", "Torpoint", "Totnes", "Newton Abbot", "Cullompton", "Exmouth", "Dawlish", "Brixham", "Honiton"},
	"norfolk":                  {"Norfolk", "Norwich", "Wells-next-the-Sea", "Dereham"},
	"bristol":                  {"Bristol"},
	"east-sussex":              {"East Sussex", "Brighton", "Eastbourne", "Bexhill-on-Sea", "Hastings", "Lewes"},
	"greater-london":           {"Greater London", "London", "Enfield"},
	"west-yorkshire":           {"West Yorkshire", "Leeds", "Bradford", "Wakefield", "Brighouse", "Hebden Bridge", "Keighley", "Shipley"},
	"nottinghamshire":          {"Nottingham", "Mansfield", "Worksop"},
	"north-yorkshire":          {"York", "Harrogate", "Malton", "Ripon", "Skipton"},
	"east-riding-of-yorkshire": {"Hull", "Bridlington"},
	"cornwall":                 {"Cornwall", "Falmouth", "Penzance", "Newquay", "Saint Austell", "Saint Columb", "Redruth", "Camborne", "Hayle", "Wadebridge", "Camelford", "Bude"},
	"west-midlands":            {"Wolverhampton", "Stourbridge"},
	"cambridgeshire":           {"Cambridge", "ELY", "Peterborough"},
	"hampshire":                {"Portsmouth", "Hampshire", "Southampton", "Basingstoke", "Andover", "Petersfield", "Liphook", "New Milton", "Lymington", "Lee-on-the-Solent", "Hook", "Farnborough"},
	"somerset":                 {"Somerset", "Bath", "Taunton", "Wellington", "Yeovil", "Bruton", "Shepton Mallet", "Radstock", "Weston-super-Mare"},
	"kent":                     {"Deal", "Dover", "Faversham", "Folkestone", "Maidstone", "Margate", "Rochester", "Sandwich", "Tunbridge Wells", "Whitstable"},
	"essex":                    {"Brentwood", "Chelmsford", "Hockley", "Leigh-on-Sea", "Loughton", "Romford", "Southend-on-Sea"},
	"lancashire":               {"Preston", "Blackpool"},
	"cumbria":                  {"Cumbria", "Keswick", "Penrith", "Workington"},
	"derbyshire":               {"Derbyshire", "Derby", "Chesterfield", "Dronfield", "Matlock"},
	"lincolnshire":             {"Lincoln", "Boston", "Market Rasen", "Skegness", "Sleaford"},
	"oxfordshire":              {"Oxford", "Oxfordshire", "Abingdon", "Didcot", "Thame"},
	"gloucestershire":          {"Gloucestershire", "Gloucester", "Stroud", "Tewkesbury", "Lydney"},
	"buckinghamshire":          {"Buckinghamshire", "High Wycombe", "Great Missenden"},
	"berkshire":                {"Reading", "Ascot", "Bracknell", "Newbury", "Slough", "Windsor", "Wokingham"},
	"wiltshire":                {"Swindon", "Calne", "Melksham", "Salisbury", "Trowbridge"},
	"surrey":                   {"Guildford", "Woking", "Farnham", "West Byfleet"},
	"west-sussex":              {"West Sussex", "Chichester", "Horsham", "Crawley", "Hassocks", "Haywards Heath", "Lancing", "Littlehampton", "Pulborough", "Shoreham-by-Sea"},
	"suffolk":                  {"Bungay", "Saxmundham", "Woodbridge"},
	"worcestershire":           {"Worcester", "Kidderminster"},
	"staffordshire":            {"Cannock", "Rugeley", "Stoke-on-Trent"},
	"cheshire":                 {"Cheshire", "Cheadle", "Congleton", "Crewe", "Tarporley"},
	"tyne-and-wear":            {"Tyne and Wear", "Newcastle upon Tyne", "Gateshead", "North Shields"},
	"south-yorkshire":          {"South Yorkshire", "Doncaster", "Rotherham", "Sheffield", "Barnsley"},
	"bedfordshire":             {"Bedford", "Luton", "Shefford"},
	"hertfordshire":            {"St Albans", "Bishop Stortford", "Borehamwood", "Potters Bar", "Uxbridge", "Waltham Abbey", "West Drayton"},
	"northumberland":           {"Hexham", "Chathill"},

	// Scotland
	"aberdeenshire":         {"Aberdeenshire", "Aberdeen", "Ballater", "Stonehaven"},
	"glasgow-city":          {"Glasgow"},
	"highland":              {"Highland", "Thurso", "Cromarty", "Portree", "Kingussie", "Nairn", "Dingwall", "Gairloch", "Invergarry", "Mallaig"},
	"moray":                 {"Moray", "Forres"},
	"stirling":              {"Stirling", "Callander"},
	"fife":                  {"Cupar", "St Andrews"},
	"perth-and-kinross":     {"Perth", "Aberfeldy", "Crieff", "Dunkeld"},
	"argyll-and-bute":       {"Argyll and Bute", "Oban", "Arrochar", "Isle of Arran", "Isle of Mull"},
	"dumfries-and-galloway": {"Dumfries", "Kirkcudbright", "Lockerbie"},
	"scottish-borders":      {"Kelso"},
	"falkirk":               {"Falkirk"},
	"west-dunbartonshire":   {"Dumbarton"},
	"inverclyde":            {"Inverclyde"},
	"shetland":              {"Shetland", "Lerwick"},
	"orkney":                {"Orkney", "Stromness"},
	"eilean-siar":           {"Stornoway", "Isle of Harris"},
	"angus":                 {"Dundee", "Arbroath"},
	"east-lothian":          {"North Berwick"},
	"midlothian":            {"Edinburgh"},
	"north-ayrshire":        {"North Ayrshire", "Ardrossan"},
	"east-ayrshire":         {"Strathaven"},
	"renfrewshire":          {"Paisley"},

	// Wales
	"swansea":           {"Swansea"},
	"cardiff":           {"Cardiff"},
	"gwynedd":           {"Gwynedd", "Caernarfon", "Bangor", "Beaumaris", "Blaenau Ffestiniog", "Criccieth", "Henfaes", "Holyhead", "Ty Croes"},
	"ceredigion":        {"Ceredigion", "Machynlleth"},
	"denbighshire":      {"Denbighshire", "Colwyn Bay", "Llangollen"},
	"flintshire":        {"Flint", "Flintshire"},
	"pembrokeshire":     {"Haverfordwest", "Kilgetty", "Milford Haven", "Saundersfoot"},
	"carmarthenshire":   {"Llanelli", "Llandysul"},
	"vale-of-glamorgan": {"Vale of Glamorgan", "Porthcawl"},
	"neath-port-talbot": {"Port Talbot"},
	"powys":             {"Welshpool"},
	"wrexham":           {"Wrexham"},
	"monmouthshire":     {"Cwmbran"},
	"blaenau-gwent":     {"Blackwood"},

	// Northern Ireland
	"belfast":     {"Belfast", "Belfast, Antrim"},
	"antrim":      {"Antrim", "Ballymena", "Carrickfergus"},
	"armagh":      {"Craigavon"},
	"down":        {"Newry"},
	"fermanagh":   {"Enniskillen"},
	"londonderry": {"Coleraine", "Portstewart"},
	"tyrone":      {"Dungannon", "Omagh"},
}
