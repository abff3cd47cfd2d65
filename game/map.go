package game

import (
	"fmt"

	"pandemic/utils"
)

// StartingCity is where every player begins and where the first research station stands.
const StartingCity = "atlanta"

type node struct {
	Name      string   // Unique city name
	Color     Color    // Home color of the city
	Neighbors []string // Names of adjacent cities
}

// CityGraph is the static board: every city, its home color and its connections.
// It is built once and only read afterwards, so one graph can back many games.
type CityGraph struct {
	nodes map[string]*node
	order []string // insertion order, used to seed the decks
}

// NewCityGraph creates an empty graph.
func NewCityGraph() *CityGraph {
	return &CityGraph{
		nodes: make(map[string]*node),
	}
}

// AddCity adds a city with its home color. Adding the same name twice is an error.
func (m *CityGraph) AddCity(name string, color Color) error {
	if _, ok := m.nodes[name]; ok {
		return fmt.Errorf("city %s already on the map", name)
	}
	if !color.Valid() {
		return fmt.Errorf("city %s: invalid color %v", name, color)
	}
	m.nodes[name] = &node{Name: name, Color: color}
	m.order = append(m.order, name)
	return nil
}

// AddBorder adds a bidirectional connection between two cities.
func (m *CityGraph) AddBorder(city1, city2 string) error {
	n1, ok := m.nodes[city1]
	if !ok {
		return fmt.Errorf("cannot connect unknown city %s", city1)
	}
	n2, ok := m.nodes[city2]
	if !ok {
		return fmt.Errorf("cannot connect unknown city %s", city2)
	}
	if city1 == city2 {
		return fmt.Errorf("cannot connect %s to itself", city1)
	}
	if utils.FindIndex(n1.Neighbors, city2) < 0 {
		n1.Neighbors = append(n1.Neighbors, city2)
	}
	if utils.FindIndex(n2.Neighbors, city1) < 0 {
		n2.Neighbors = append(n2.Neighbors, city1)
	}
	return nil
}

// Has reports whether the city is on the map.
func (m *CityGraph) Has(name string) bool {
	_, ok := m.nodes[name]
	return ok
}

// Color returns the home color of a city.
func (m *CityGraph) Color(name string) (Color, bool) {
	n, ok := m.nodes[name]
	if !ok {
		return 0, false
	}
	return n.Color, true
}

// Neighbors returns the cities adjacent to name. The returned slice is a copy.
func (m *CityGraph) Neighbors(name string) []string {
	n, ok := m.nodes[name]
	if !ok {
		return nil
	}
	return append([]string(nil), n.Neighbors...)
}

// AreAdjacent checks if two cities are connected on the map.
func (m *CityGraph) AreAdjacent(city1, city2 string) bool {
	n, ok := m.nodes[city1]
	if !ok {
		return false
	}
	return utils.FindIndex(n.Neighbors, city2) >= 0
}

// Names returns every city in insertion order.
func (m *CityGraph) Names() []string {
	return append([]string(nil), m.order...)
}

// Len returns the number of cities.
func (m *CityGraph) Len() int {
	return len(m.order)
}

// CountByColor returns how many cities have each home color.
func (m *CityGraph) CountByColor() [NumColors]int {
	var counts [NumColors]int
	for _, n := range m.nodes {
		counts[n.Color]++
	}
	return counts
}

// neighbors returns the internal slice, callers must not modify it.
func (m *CityGraph) neighbors(name string) []string {
	if n, ok := m.nodes[name]; ok {
		return n.Neighbors
	}
	return nil
}

// CreateMap builds the standard 48-city world map.
func CreateMap() *CityGraph {
	m := NewCityGraph()

	for _, color := range AllColors {
		for _, name := range cityNames[color] {
			if err := m.AddCity(name, color); err != nil {
				panic(err)
			}
		}
	}

	// Walk the cities in insertion order so neighbor order is stable between runs
	for _, name := range m.order {
		for _, neighbor := range adjacencyData[name] {
			if err := m.AddBorder(name, neighbor); err != nil {
				panic(err)
			}
		}
	}

	return m
}

// GLOBAL DATA. Cities per home color and the connections of the standard board.

var cityNames = map[Color][]string{
	Blue: {
		"san_francisco", "chicago", "montreal", "new_york", "washington", "atlanta",
		"london", "madrid", "paris", "essen", "milan", "st_petersburg",
	},
	Yellow: {
		"los_angeles", "mexico_city", "miami", "bogota", "lima", "santiago",
		"sao_paolo", "buenos_aires", "lagos", "kinshasa", "khartoum", "johannesburg",
	},
	Black: {
		"algiers", "istanbul", "cairo", "moscow", "baghdad", "riyadh",
		"tehran", "karachi", "mumbai", "delhi", "chennai", "kolkata",
	},
	Red: {
		"bangkok", "jakarta", "beijing", "shanghai", "hong_kong", "ho_chi_minh_city",
		"seoul", "taipei", "manila", "sydney", "tokyo", "osaka",
	},
}

// Each border only needs to be listed once; AddBorder makes it bidirectional.
var adjacencyData = map[string][]string{
	"san_francisco": {"tokyo", "manila", "los_angeles", "chicago"},
	"chicago":       {"los_angeles", "mexico_city", "atlanta", "montreal"},
	"montreal":      {"washington", "new_york"},
	"new_york":      {"washington", "london", "madrid"},
	"washington":    {"atlanta", "miami"},
	"atlanta":       {"miami"},
	"london":        {"madrid", "paris", "essen"},
	"madrid":        {"paris", "algiers", "sao_paolo"},
	"paris":         {"essen", "milan", "algiers"},
	"essen":         {"milan", "st_petersburg"},
	"milan":         {"istanbul"},
	"st_petersburg": {"istanbul", "moscow"},

	"los_angeles":      {"mexico_city", "sydney"},
	"mexico_city":      {"miami", "bogota", "lima"},
	"miami":            {"bogota"},
	"bogota":           {"lima", "sao_paolo", "buenos_aires"},
	"lima":             {"santiago"},
	"sao_paolo":        {"buenos_aires", "lagos"},
	"lagos":            {"kinshasa", "khartoum"},
	"kinshasa":         {"khartoum", "johannesburg"},
	"khartoum":         {"johannesburg", "cairo"},
	"algiers":          {"istanbul", "cairo"},
	"istanbul":         {"moscow", "baghdad", "cairo"},
	"cairo":            {"baghdad", "riyadh"},
	"moscow":           {"tehran"},
	"baghdad":          {"riyadh", "karachi", "tehran"},
	"riyadh":           {"karachi"},
	"tehran":           {"karachi", "delhi"},
	"karachi":          {"mumbai", "delhi"},
	"mumbai":           {"delhi", "chennai"},
	"delhi":            {"chennai", "kolkata"},
	"chennai":          {"kolkata", "bangkok", "jakarta"},
	"kolkata":          {"bangkok", "hong_kong"},
	"bangkok":          {"jakarta", "ho_chi_minh_city", "hong_kong"},
	"jakarta":          {"ho_chi_minh_city", "sydney"},
	"beijing":          {"shanghai", "seoul"},
	"shanghai":         {"seoul", "tokyo", "taipei", "hong_kong"},
	"hong_kong":        {"ho_chi_minh_city", "manila", "taipei"},
	"ho_chi_minh_city": {"manila"},
	"seoul":            {"tokyo"},
	"taipei":           {"manila", "osaka"},
	"manila":           {"sydney"},
	"tokyo":            {"osaka"},
}
