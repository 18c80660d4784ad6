package extract

// Keyword tables mapping bill line vocabulary to charge classes. Fixed items
// are reimbursed in full; other charges are room-linked and subject to
// proportionate deduction.
var fixedItemKeywords = []string{
	"medicines",
	"medicine",
	"pharmacy",
	"drugs",
	"implants",
	"implant",
	"stents",
	"stent",
	"prosthesis",
	"devices",
	"consumables",
}

var otherChargeKeywords = []string{
	"consultations",
	"consultation",
	"nursing",
	"procedures",
	"procedure",
	"investigations",
	"investigation",
	"ot",
	"service",
	"services",
}
