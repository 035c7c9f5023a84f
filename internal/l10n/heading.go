package l10n

// Key names a fixed group heading.
type Key string

const (
	Title                  Key = "title"
	OriginalTitle          Key = "original_title"
	Type                   Key = "type"
	ReleaseDate            Key = "release_date"
	FirstAired             Key = "first_aired"
	LastAired              Key = "last_aired"
	Genre                  Key = "genre"
	Certification          Key = "certification"
	Country                Key = "country"
	Language               Key = "language"
	Seasons                Key = "seasons"
	Episodes               Key = "episodes"
	Budget                 Key = "budget"
	Gross                  Key = "gross"
	Runtime                Key = "runtime"
	SoundMix               Key = "sound_mix"
	Color                  Key = "color"
	AspectRatio            Key = "aspect_ratio"
	Camera                 Key = "camera"
	Laboratory             Key = "laboratory"
	FilmLength             Key = "film_length"
	NegativeFormat         Key = "negative_format"
	CinematographicProcess Key = "cinematographic_process"
	PrintedFilmFormat      Key = "printed_film_format"

	CastAndCrew          Key = "cast_and_crew"
	Director             Key = "director"
	CompanyCredits       Key = "company_credits"
	ProductionCompany    Key = "production_company"
	Distributor          Key = "distributor"
	SpecialEffects       Key = "special_effects"
	OtherCompany         Key = "other_company"
	FilmingAndProduction Key = "filming_and_production"
	FilmingLocation      Key = "filming_location"
	FilmingDate          Key = "filming_date"
	ProductionDate       Key = "production_date"
	Connections          Key = "connections"

	Name    Key = "name"
	Company Key = "company"
	Details Key = "details"
	Period  Key = "period"
	Minutes Key = "minutes"
)

var headings = map[Key][2]string{ // {en, de}
	Title:                  {"Title", "Titel"},
	OriginalTitle:          {"Original Title", "Originaltitel"},
	Type:                   {"Type", "Typ"},
	ReleaseDate:            {"Release Date", "Erscheinungsdatum"},
	FirstAired:             {"First Aired", "Erstausstrahlung"},
	LastAired:              {"Last Aired", "Letzte Ausstrahlung"},
	Genre:                  {"Genre", "Genre"},
	Certification:          {"Certification", "Altersfreigabe"},
	Country:                {"Country", "Land"},
	Language:               {"Language", "Sprache"},
	Seasons:                {"Seasons", "Staffeln"},
	Episodes:               {"Episodes", "Episoden"},
	Budget:                 {"Budget", "Budget"},
	Gross:                  {"Gross", "Einspielergebnis"},
	Runtime:                {"Runtime", "Laufzeit"},
	SoundMix:               {"Sound Mix", "Tonmischung"},
	Color:                  {"Color", "Farbe"},
	AspectRatio:            {"Aspect Ratio", "Bildformat"},
	Camera:                 {"Camera", "Kamera"},
	Laboratory:             {"Laboratory", "Labor"},
	FilmLength:             {"Film Length", "Filmlänge"},
	NegativeFormat:         {"Negative Format", "Negativformat"},
	CinematographicProcess: {"Cinematographic Process", "Filmprozess"},
	PrintedFilmFormat:      {"Printed Film Format", "Kopienformat"},

	CastAndCrew:          {"Cast and Crew", "Besetzung und Stab"},
	Director:             {"Director", "Regie"},
	CompanyCredits:       {"Company Credits", "Firmen"},
	ProductionCompany:    {"Production Company", "Produktionsfirma"},
	Distributor:          {"Distributor", "Verleih"},
	SpecialEffects:       {"Special Effects", "Spezialeffekte"},
	OtherCompany:         {"Other Companies", "Weitere Firmen"},
	FilmingAndProduction: {"Filming and Production", "Dreharbeiten und Produktion"},
	FilmingLocation:      {"Filming Locations", "Drehorte"},
	FilmingDate:          {"Filming Dates", "Drehzeitraum"},
	ProductionDate:       {"Production Dates", "Produktionszeitraum"},
	Connections:          {"Connections", "Verbindungen"},

	Name:    {"Name", "Name"},
	Company: {"Company", "Firma"},
	Details: {"Details", "Details"},
	Period:  {"Period", "Zeitraum"},
	Minutes: {"min", "Min."},
}

// Heading returns the English label for "en" and the German label for any
// other code, including unknown ones. Unknown keys render as the key itself.
func Heading(lang string, k Key) string {
	h, ok := headings[k]
	if !ok {
		return string(k)
	}
	if lang == English {
		return h[0]
	}
	return h[1]
}
