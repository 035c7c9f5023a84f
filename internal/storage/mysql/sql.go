package mysql

import "fmt"

// work_items.kind values.
const (
	kindType                   = "type"
	kindGenre                  = "genre"
	kindCertification          = "certification"
	kindCountry                = "country"
	kindLanguage               = "language"
	kindSoundMix               = "sound_mix"
	kindColor                  = "color"
	kindAspectRatio            = "aspect_ratio"
	kindCamera                 = "camera"
	kindLaboratory             = "laboratory"
	kindNegativeFormat         = "negative_format"
	kindCinematographicProcess = "cinematographic_process"
	kindPrintedFilmFormat      = "printed_film_format"
	kindDirector               = "director"
	kindProductionCompany      = "production_company"
	kindDistributor            = "distributor"
	kindSpecialEffects         = "special_effects"
	kindOtherCompany           = "other_company"
	kindLocation               = "location"

	timespanFilming    = "filming"
	timespanProduction = "production"
)

const getWorkSQL = `
SELECT
  id,
  title_orig, title_en, title_de,
  status, last_updated,
  budget, budget_currency,
  gross, gross_currency,
  runtime_minutes,
  release_date,
  first_aired, last_aired,
  seasons, episodes
FROM works
WHERE id = ? AND kind = ?
`

const listWorkIDsSQL = `
SELECT id FROM works
WHERE kind = ? AND status = ?
ORDER BY id
`

// Entity tables are fixed identifiers, never user input.

// localizedItemsSQL joins items with a table of (id, name_orig, name_en, name_de).
// A dangling or NULL entity_id yields NULL entity columns.
func localizedItemsSQL(table string) string {
	return fmt.Sprintf(`
SELECT e.id, e.name_orig, e.name_en, e.name_de, wi.details, wi.sort_order
FROM work_items wi
LEFT JOIN %s e ON e.id = wi.entity_id
WHERE wi.work_id = ? AND wi.kind = ?
ORDER BY wi.sort_order, wi.id
`, table)
}

// plainItemsSQL joins items with a table of (id, <column>).
func plainItemsSQL(table, column string) string {
	return fmt.Sprintf(`
SELECT e.id, e.%s, wi.details, wi.sort_order
FROM work_items wi
LEFT JOIN %s e ON e.id = wi.entity_id
WHERE wi.work_id = ? AND wi.kind = ?
ORDER BY wi.sort_order, wi.id
`, column, table)
}

const countryItemsSQL = `
SELECT e.id, e.name_orig, e.name_en, e.name_de, e.flag, wi.details, wi.sort_order
FROM work_items wi
LEFT JOIN countries e ON e.id = wi.entity_id
WHERE wi.work_id = ? AND wi.kind = 'country'
ORDER BY wi.sort_order, wi.id
`

const certificationItemsSQL = `
SELECT
  e.id, e.name_orig, e.name_en, e.name_de,
  c.id, c.name_orig, c.name_en, c.name_de, c.flag,
  wi.details, wi.sort_order
FROM work_items wi
LEFT JOIN certifications e ON e.id = wi.entity_id
LEFT JOIN countries c ON c.id = e.country_id
WHERE wi.work_id = ? AND wi.kind = 'certification'
ORDER BY wi.sort_order, wi.id
`

const timespanItemsSQL = `
SELECT start_date, end_date, details, sort_order
FROM work_timespans
WHERE work_id = ? AND kind = ?
ORDER BY sort_order, id
`

const filmLengthItemsSQL = `
SELECT meters, details, sort_order
FROM work_film_lengths
WHERE work_id = ?
ORDER BY sort_order, id
`
