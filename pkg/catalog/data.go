package catalog

// ProductGroups is the built-in catalog served by the API and used when no
// catalog source is configured.
var ProductGroups = []string{
	"Baby &amp; Peuter",
	"Boeken",
	"Computer",
	"Dier",
	"Doe-het-zelf &amp; Gereedschap",
	"Elektronica",
	"Fantasy",
	"Film &amp; Muziek",
	"Games",
	"Huishouden",
	"Koken &amp; Tafelen",
	"Mode",
	"Speelgoed",
	"Sport &amp; Vrije tijd",
	"Thrillers",
	"Tuin",
	"Wonen",
}
