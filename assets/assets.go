package assets

import (
	_ "embed"
	"encoding/json"
	"log"

	"github.com/lucasb-eyer/go-colorful"
)

type themeColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type themeData struct {
	Name   string       `json:"name"`
	Scheme string       `json:"scheme"`
	Colors []themeColor `json:"colors"`
	Fonts  struct {
		Major string `json:"major"`
		Minor string `json:"minor"`
	} `json:"fonts"`
}

// SchemeColor is one slot of the theme color scheme (dk1, lt1, accent1...).
type SchemeColor struct {
	Name  string
	Color colorful.Color
}

//go:embed theme.json
var themeJSON []byte

var (
	ThemeName  string
	SchemeName string
	Scheme     []SchemeColor
	MajorFont  string
	MinorFont  string
)

func init() {
	var j themeData
	if err := json.Unmarshal(themeJSON, &j); err != nil {
		log.Fatal(err)
	}
	ThemeName = j.Name
	SchemeName = j.Scheme
	MajorFont = j.Fonts.Major
	MinorFont = j.Fonts.Minor

	Scheme = make([]SchemeColor, 0, len(j.Colors))
	for _, color := range j.Colors {
		c, err := colorful.Hex(color.Hex)
		if err != nil {
			log.Fatalf("theme color %s: %v", color.Name, err)
		}
		Scheme = append(Scheme, SchemeColor{Name: color.Name, Color: c})
	}
}
