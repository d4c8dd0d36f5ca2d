package audit

// Static pincode lookup data used by zone resolution. All three tables are
// immutable configuration shipped with the binary; nothing writes to them
// after init.

// stateByPrefix maps the first two digits of an Indian PIN code to the
// state/region it belongs to. Zone B (same state) is decided on this table.
var stateByPrefix = map[string]string{
	"11": "Delhi",
	"12": "Haryana",
	"13": "Haryana",
	"14": "Punjab",
	"15": "Punjab",
	"16": "Punjab",
	"17": "Himachal Pradesh",
	"18": "Jammu & Kashmir",
	"19": "Jammu & Kashmir",
	"20": "Uttar Pradesh",
	"21": "Uttar Pradesh",
	"22": "Uttar Pradesh",
	"23": "Uttar Pradesh",
	"24": "Uttar Pradesh",
	"25": "Uttar Pradesh",
	"26": "Uttar Pradesh",
	"27": "Uttar Pradesh",
	"28": "Uttar Pradesh",
	"30": "Rajasthan",
	"31": "Rajasthan",
	"32": "Rajasthan",
	"33": "Rajasthan",
	"34": "Rajasthan",
	"36": "Gujarat",
	"37": "Gujarat",
	"38": "Gujarat",
	"39": "Gujarat",
	"40": "Maharashtra",
	"41": "Maharashtra",
	"42": "Maharashtra",
	"43": "Maharashtra",
	"44": "Maharashtra",
	"45": "Madhya Pradesh",
	"46": "Madhya Pradesh",
	"47": "Madhya Pradesh",
	"48": "Madhya Pradesh",
	"49": "Chhattisgarh",
	"50": "Telangana",
	"51": "Andhra Pradesh",
	"52": "Andhra Pradesh",
	"53": "Andhra Pradesh",
	"56": "Karnataka",
	"57": "Karnataka",
	"58": "Karnataka",
	"59": "Karnataka",
	"60": "Tamil Nadu",
	"61": "Tamil Nadu",
	"62": "Tamil Nadu",
	"63": "Tamil Nadu",
	"64": "Tamil Nadu",
	"67": "Kerala",
	"68": "Kerala",
	"69": "Kerala",
	"70": "West Bengal",
	"71": "West Bengal",
	"72": "West Bengal",
	"73": "West Bengal",
	"74": "West Bengal",
	"75": "Odisha",
	"76": "Odisha",
	"77": "Odisha",
	"78": "Assam",
	"79": "North East",
	"80": "Bihar",
	"81": "Jharkhand",
	"82": "Jharkhand",
	"83": "Jharkhand",
	"84": "Bihar",
	"85": "Bihar",
}

// metroPrefixes holds the 3-digit prefixes of the major metro sorting hubs.
// An intra-metro shipment (same metro prefix on both ends) is Zone A.
var metroPrefixes = map[string]bool{
	"110": true, // Delhi
	"400": true, // Mumbai
	"560": true, // Bengaluru
	"600": true, // Chennai
	"700": true, // Kolkata
	"500": true, // Hyderabad
	"380": true, // Ahmedabad
	"411": true, // Pune
}

// difficultTerrainPrefixes holds destination prefixes that carriers surcharge
// as difficult terrain (Zone D): Himachal, J&K valley, Sikkim, the North East.
var difficultTerrainPrefixes = map[string]bool{
	"171": true, "172": true, "173": true, "174": true, "175": true,
	"176": true, "177": true,
	"180": true, "181": true, "182": true, "184": true, "185": true,
	"190": true, "191": true, "192": true, "193": true,
	"737": true,
	"790": true, "791": true, "792": true, "793": true, "794": true,
	"795": true, "796": true, "797": true, "798": true, "799": true,
}

// extremeRemotePrefixes holds destination prefixes billed at the extreme
// remote tier (Zone E): Ladakh and Andaman & Nicobar.
var extremeRemotePrefixes = map[string]bool{
	"194": true,
	"744": true,
}
