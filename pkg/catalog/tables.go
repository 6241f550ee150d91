package catalog

// Enumeration tables for the supported remittance corridors. Canonical keys
// are the stored forms; alias lists are lowercase.

var currencyAliases = map[string][]string{
	"USD": {"usd", "dollar", "dollars", "us dollar", "dólar", "dólares"},
	"MXN": {"mxn", "peso mexicano", "pesos mexicanos", "mexican peso", "mexican pesos"},
	"HNL": {"hnl", "lempira", "lempiras", "honduran lempira"},
	"DOP": {"dop", "peso dominicano", "pesos dominicanos", "dominican peso", "dominican pesos"},
	"NIO": {"nio", "córdoba", "córdobas", "cordoba", "cordobas", "nicaraguan córdoba"},
	"COP": {"cop", "peso colombiano", "pesos colombianos", "colombian peso", "colombian pesos"},
	"GTQ": {"gtq", "quetzal", "quetzales", "guatemalan quetzal"},
}

var countryVariants = map[string][]string{
	"MEXICO":               {"mexico", "méxico", "mex"},
	"HONDURAS":             {"honduras"},
	"REPUBLICA DOMINICANA": {"republica dominicana", "república dominicana", "dominican republic", "dominicana", "rd"},
	"NICARAGUA":            {"nicaragua", "nic"},
	"COLOMBIA":             {"colombia", "col"},
	"EL SALVADOR":          {"el salvador", "salvador"},
	"GUATEMALA":            {"guatemala", "guate"},
}

var countryCurrency = map[string]string{
	"MEXICO":               "MXN",
	"HONDURAS":             "HNL",
	"REPUBLICA DOMINICANA": "DOP",
	"NICARAGUA":            "NIO",
	"COLOMBIA":             "COP",
	"EL SALVADOR":          "USD",
	"GUATEMALA":            "GTQ",
}

var deliveryAliases = map[string]string{
	"bank transfer": "Bank Transfer",
	"wire transfer": "Bank Transfer",
	"bank":          "Bank Transfer",
	"wire":          "Bank Transfer",
	"mobile wallet": "Mobile Wallet",
	"wallet":        "Mobile Wallet",
	"mobile":        "Mobile Wallet",
	"cash pickup":   "Cash Pickup",
	"pickup":        "Cash Pickup",
	"cash":          "Cash Pickup",
	"card":          "Card",
	"debit card":    "Card",
	"credit card":   "Card",
}
