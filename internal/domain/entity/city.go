package entity

// City is one of the fixed set of locations the classifier was trained on.
// The set is closed: lookups against any other name are rejected at the
// boundary instead of falling through to a runtime miss.
type City struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

var cities = []City{
	{Name: "Delhi", Latitude: 28.6139, Longitude: 77.2090},
	{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
	{Name: "Kolkata", Latitude: 22.5726, Longitude: 88.3639},
	{Name: "Chennai", Latitude: 13.0827, Longitude: 80.2707},
	{Name: "Bengaluru", Latitude: 12.9716, Longitude: 77.5946},
	{Name: "Chandigarh", Latitude: 30.7333, Longitude: 76.7794},
}

var cityIndex = func() map[string]City {
	index := make(map[string]City, len(cities))
	for _, city := range cities {
		index[city.Name] = city
	}
	return index
}()

// Cities returns the supported cities in declaration order.
func Cities() []City {
	result := make([]City, len(cities))
	copy(result, cities)
	return result
}

// CityNames returns the supported city names in declaration order.
func CityNames() []string {
	names := make([]string, len(cities))
	for i, city := range cities {
		names[i] = city.Name
	}
	return names
}

// FindCity looks a city up by exact name. The second return reports
// whether the name belongs to the supported set.
func FindCity(name string) (City, bool) {
	city, ok := cityIndex[name]
	return city, ok
}
