// Package units 把食譜常見的數量單位換算成公克。
// 重量單位可直接換算；容量單位先換成毫升，再乘上食材密度。
package units

import "strings"

// Class 單位類別
type Class int

const (
	ClassMass Class = iota
	ClassVolume
)

// Unit 已識別的單位
type Unit struct {
	Name   string  // 標準名稱
	Class  Class   // 重量或容量
	Factor float64 // 換算係數：重量單位為公克數，容量單位為毫升數
}

// MLPerCup 一美制杯的毫升數，密度表以「每杯公克數」建表時用它換算
const MLPerCup = 236.588

// 單位別名表。值是標準名稱，實際係數見 unitFactors。
var unitAliases = map[string]string{
	"g":           "g",
	"gram":        "g",
	"grams":       "g",
	"kg":          "kg",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"mg":          "mg",
	"milligram":   "mg",
	"milligrams":  "mg",
	"oz":          "oz",
	"ounce":       "oz",
	"ounces":      "oz",
	"lb":          "lb",
	"lbs":         "lb",
	"pound":       "lb",
	"pounds":      "lb",
	"ml":          "ml",
	"milliliter":  "ml",
	"milliliters": "ml",
	"millilitre":  "ml",
	"millilitres": "ml",
	"l":           "l",
	"liter":       "l",
	"liters":      "l",
	"litre":       "l",
	"litres":      "l",
	"dl":          "dl",
	"deciliter":   "dl",
	"deciliters":  "dl",
	"cup":         "cup",
	"cups":        "cup",
	"c":           "cup",
	"tbsp":        "tbsp",
	"tbsps":       "tbsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"tsp":         "tsp",
	"tsps":        "tsp",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"fl oz":       "fl oz",
	"floz":        "fl oz",
	"fluid ounce": "fl oz",
	"fluid ounces": "fl oz",
	"pint":        "pint",
	"pints":       "pint",
	"pt":          "pint",
	"quart":       "quart",
	"quarts":      "quart",
	"qt":          "quart",
	"gallon":      "gallon",
	"gallons":     "gallon",
	"gal":         "gallon",
}

var unitFactors = map[string]Unit{
	// 重量 → 公克
	"g":  {Name: "g", Class: ClassMass, Factor: 1},
	"kg": {Name: "kg", Class: ClassMass, Factor: 1000},
	"mg": {Name: "mg", Class: ClassMass, Factor: 0.001},
	"oz": {Name: "oz", Class: ClassMass, Factor: 28.349523125},
	"lb": {Name: "lb", Class: ClassMass, Factor: 453.59237},

	// 容量 → 毫升
	"ml":     {Name: "ml", Class: ClassVolume, Factor: 1},
	"l":      {Name: "l", Class: ClassVolume, Factor: 1000},
	"dl":     {Name: "dl", Class: ClassVolume, Factor: 100},
	"cup":    {Name: "cup", Class: ClassVolume, Factor: MLPerCup},
	"tbsp":   {Name: "tbsp", Class: ClassVolume, Factor: 14.786875},
	"tsp":    {Name: "tsp", Class: ClassVolume, Factor: 4.928958333},
	"fl oz":  {Name: "fl oz", Class: ClassVolume, Factor: 29.57353},
	"pint":   {Name: "pint", Class: ClassVolume, Factor: 473.17647},
	"quart":  {Name: "quart", Class: ClassVolume, Factor: 946.35295},
	"gallon": {Name: "gallon", Class: ClassVolume, Factor: 3785.411784},
}

// Lookup 識別單位字串。不認得的單位（can、clove 之類）回傳 false，
// 讓換算走每件重量表。
func Lookup(unit string) (Unit, bool) {
	key := strings.ToLower(strings.TrimSpace(unit))
	key = strings.TrimSuffix(key, ".")
	canonical, ok := unitAliases[key]
	if !ok {
		return Unit{}, false
	}
	return unitFactors[canonical], true
}
