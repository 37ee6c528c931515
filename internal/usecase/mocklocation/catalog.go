package mocklocation

import "github.com/marcos-nsantos/relief-map-backend/internal/domain/valueobject"

// MaxJitter bounds the per-axis offset applied to a catalog seed, roughly 500m.
const MaxJitter = 0.005

var catalog = [...]valueobject.Location{
	{Latitude: 10.7769, Longitude: 106.7009, Address: "Ben Nghe Ward, District 1", District: "District 1"},
	{Latitude: 10.7626, Longitude: 106.6822, Address: "Ward 7, District 3", District: "District 3"},
	{Latitude: 10.7540, Longitude: 106.6634, Address: "Ward 5, District 5", District: "District 5"},
	{Latitude: 10.7367, Longitude: 106.7220, Address: "Tan Phong Ward, District 7", District: "District 7"},
	{Latitude: 10.8016, Longitude: 106.7110, Address: "Ward 25, Binh Thanh", District: "Binh Thanh"},
	{Latitude: 10.7993, Longitude: 106.6803, Address: "Ward 9, Phu Nhuan", District: "Phu Nhuan"},
	{Latitude: 10.8016, Longitude: 106.6528, Address: "Ward 2, Tan Binh", District: "Tan Binh"},
	{Latitude: 10.8387, Longitude: 106.6653, Address: "Ward 10, Go Vap", District: "Go Vap"},
	{Latitude: 10.8494, Longitude: 106.7537, Address: "Linh Trung Ward, Thu Duc", District: "Thu Duc"},
	{Latitude: 10.7659, Longitude: 106.6030, Address: "Binh Tri Dong Ward, Binh Tan", District: "Binh Tan"},
}

// Catalog returns a copy of the seed locations. Entry 0 is the center.
func Catalog() []valueobject.Location {
	out := make([]valueobject.Location, len(catalog))
	copy(out, catalog[:])
	return out
}

// CenterLocation is the canonical fallback when nothing better is known.
func CenterLocation() valueobject.Location {
	return catalog[0]
}
