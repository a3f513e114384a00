package site

// Anchors are the in-page sections, in page order.
var Anchors = []string{"overview", "bedrooms", "living", "features", "sustainability", "gallery", "location", "enquire"}

// Card is a bedroom on the bedrooms section, with its own mini-gallery.
type Card struct {
	ID        string
	Name      string
	Highlight string
	Features  []string
}

var bedroomCards = []Card{
	{
		ID:        "master",
		Name:      "Master Suite",
		Highlight: "Panoramic ocean views",
		Features:  []string{"Private Balcony", "Ocean Views", "Dressing Room", "En-suite Bathroom"},
	},
	{
		ID:        "oceanking",
		Name:      "Ocean King (Upstairs)",
		Highlight: "Stunning sea vistas",
		Features:  []string{"Mountain Views", "Ocean Views", "En-suite Bathroom", "Built-in Storage"},
	},
	{
		ID:        "gardenking",
		Name:      "Garden King (Upstairs)",
		Highlight: "Tranquil mountain setting",
		Features:  []string{"Private Balcony", "Mountain Views", "En-suite Bathroom", "Garden Outlook"},
	},
	{
		ID:        "ground",
		Name:      "Ground Floor King",
		Highlight: "Private garden level",
		Features:  []string{"Mountain Views", "Garden Access", "En-suite Bathroom", "Complete Privacy"},
	},
}

// Feature is an amenity listed on the features section.
type Feature struct {
	Name        string
	Category    string
	Description string
}

var features = []Feature{
	{Name: "Infinity Pool", Category: "Outdoor", Description: "Heated pool overlooking the ocean."},
	{Name: "Chef's Kitchen", Category: "Indoor", Description: "Marble island and professional appliances."},
	{Name: "Step-free Access", Category: "Accessibility", Description: "Ground floor suite with level access."},
	{Name: "Fibre Wi-Fi", Category: "Technology", Description: "Fast connection throughout the villa."},
	{Name: "Smart Climate", Category: "Comfort", Description: "Per-room heating and cooling."},
	{Name: "Gated Entry", Category: "Security", Description: "Private drive with video entry."},
	{Name: "Private Parking", Category: "Parking", Description: "Space for three cars."},
}

var sustainability = []string{
	"Solar array covering most daytime demand",
	"Rainwater harvesting for the gardens",
	"Native planting and no-spray landscaping",
	"Refill stations instead of single-use plastics",
}

// Place is a nearby attraction on the location section.
type Place struct {
	Name     string
	Category string
	Distance string
}

var places = []Place{
	{Name: "Golden Beach", Category: "Beach", Distance: "5 min drive"},
	{Name: "Old Town Lookout", Category: "Attraction", Distance: "15 min drive"},
	{Name: "Harbour Market", Category: "Shopping & Dining", Distance: "20 min drive"},
	{Name: "International Airport", Category: "Transport", Distance: "45 min drive"},
}

// ContactMethods are the choices on the enquiry form.
var ContactMethods = []string{"email", "phone", "whatsapp"}
