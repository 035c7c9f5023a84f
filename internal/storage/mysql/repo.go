package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"filmwiki/internal/domain"
)

func localized(orig, en, de sql.NullString) domain.LocalizedText {
	return domain.LocalizedText{Original: orig.String, English: en.String, German: de.String}
}

func valTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func valMoney(amount sql.NullInt64, currency sql.NullString) *domain.Money {
	if !amount.Valid {
		return nil
	}
	return &domain.Money{Amount: amount.Int64, Currency: currency.String}
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

var _ domain.WorkRepository = (*Repo)(nil)

func (r *Repo) GetMovie(ctx context.Context, id int64) (domain.Movie, error) {
	var m domain.Movie
	row, err := r.getWork(ctx, id, domain.KindMovie, &m.Work)
	if err != nil {
		return domain.Movie{}, err
	}
	m.ReleaseDate = valTime(row.releaseDate)
	if err := r.loadItems(ctx, &m.Work); err != nil {
		return domain.Movie{}, err
	}
	return m, nil
}

func (r *Repo) GetSeries(ctx context.Context, id int64) (domain.Series, error) {
	var s domain.Series
	row, err := r.getWork(ctx, id, domain.KindSeries, &s.Work)
	if err != nil {
		return domain.Series{}, err
	}
	s.FirstAired = valTime(row.firstAired)
	s.LastAired = valTime(row.lastAired)
	s.Seasons = int(row.seasons.Int64)
	s.Episodes = int(row.episodes.Int64)
	if err := r.loadItems(ctx, &s.Work); err != nil {
		return domain.Series{}, err
	}
	return s, nil
}

func (r *Repo) ListWorkIDs(ctx context.Context, kind domain.Kind, status string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, listWorkIDsSQL, string(kind), status)
	if err != nil {
		return nil, fmt.Errorf("list %s ids: %w", kind, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list %s ids: %w", kind, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s ids: %w", kind, err)
	}
	return ids, nil
}

// kindColumns are the works columns only some kinds use.
type kindColumns struct {
	releaseDate       sql.NullTime
	firstAired        sql.NullTime
	lastAired         sql.NullTime
	seasons, episodes sql.NullInt64
}

func (r *Repo) getWork(ctx context.Context, id int64, kind domain.Kind, w *domain.Work) (kindColumns, error) {
	var (
		kc                     kindColumns
		titleOrig, titleEN     sql.NullString
		titleDE                sql.NullString
		budget, gross, runtime sql.NullInt64
		budgetCur, grossCur    sql.NullString
		lastUpdated            sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, getWorkSQL, id, string(kind)).Scan(
		&w.ID,
		&titleOrig, &titleEN, &titleDE,
		&w.Status, &lastUpdated,
		&budget, &budgetCur,
		&gross, &grossCur,
		&runtime,
		&kc.releaseDate,
		&kc.firstAired, &kc.lastAired,
		&kc.seasons, &kc.episodes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return kc, fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
		}
		return kc, fmt.Errorf("get %s %d: %w", kind, id, err)
	}

	w.Title = localized(titleOrig, titleEN, titleDE)
	w.LastUpdated = lastUpdated.Time
	w.Budget = valMoney(budget, budgetCur)
	w.Gross = valMoney(gross, grossCur)
	w.RuntimeMinutes = int(runtime.Int64)
	return kc, nil
}

// set returns a sink storing a loaded item list into dst.
func set[E any](dst *[]domain.Item[E]) func([]domain.Item[E], error) error {
	return func(items []domain.Item[E], err error) error {
		if err != nil {
			return err
		}
		*dst = items
		return nil
	}
}

// loadItems fills every item group of w. It stops at the first failure so
// a work is either fully loaded or not at all.
func (r *Repo) loadItems(ctx context.Context, w *domain.Work) error {
	id := w.ID
	loaders := []struct {
		kind string
		load func() error
	}{
		{kindType, func() error {
			return set(&w.Types)(localizedItems(ctx, r.db, "work_types", kindType, id, func(id int64, n domain.LocalizedText) domain.WorkType {
				return domain.WorkType{ID: id, Name: n}
			}))
		}},
		{kindGenre, func() error {
			return set(&w.Genres)(localizedItems(ctx, r.db, "genres", kindGenre, id, func(id int64, n domain.LocalizedText) domain.Genre {
				return domain.Genre{ID: id, Name: n}
			}))
		}},
		{kindCertification, func() error { return set(&w.Certifications)(r.certificationItems(ctx, id)) }},
		{kindCountry, func() error { return set(&w.Countries)(r.countryItems(ctx, id)) }},
		{kindLanguage, func() error {
			return set(&w.Languages)(localizedItems(ctx, r.db, "languages", kindLanguage, id, func(id int64, n domain.LocalizedText) domain.Language {
				return domain.Language{ID: id, Name: n}
			}))
		}},
		{kindSoundMix, func() error {
			return set(&w.SoundMixes)(localizedItems(ctx, r.db, "sound_mixes", kindSoundMix, id, func(id int64, n domain.LocalizedText) domain.SoundMix {
				return domain.SoundMix{ID: id, Name: n}
			}))
		}},
		{kindColor, func() error {
			return set(&w.Colors)(localizedItems(ctx, r.db, "colors", kindColor, id, func(id int64, n domain.LocalizedText) domain.Color {
				return domain.Color{ID: id, Name: n}
			}))
		}},
		{kindAspectRatio, func() error {
			return set(&w.AspectRatios)(plainItems(ctx, r.db, "aspect_ratios", "ratio", kindAspectRatio, id, func(id int64, s string) domain.AspectRatio {
				return domain.AspectRatio{ID: id, Ratio: s}
			}))
		}},
		{kindCamera, func() error {
			return set(&w.Cameras)(plainItems(ctx, r.db, "cameras", "name", kindCamera, id, func(id int64, s string) domain.Camera {
				return domain.Camera{ID: id, Name: s}
			}))
		}},
		{kindLaboratory, func() error {
			return set(&w.Laboratories)(plainItems(ctx, r.db, "laboratories", "name", kindLaboratory, id, func(id int64, s string) domain.Laboratory {
				return domain.Laboratory{ID: id, Name: s}
			}))
		}},
		{"film_length", func() error { return set(&w.FilmLengths)(r.filmLengthItems(ctx, id)) }},
		{kindNegativeFormat, func() error {
			return set(&w.NegativeFormats)(localizedItems(ctx, r.db, "film_formats", kindNegativeFormat, id, newFilmFormat))
		}},
		{kindCinematographicProcess, func() error {
			return set(&w.CinematographicProcesses)(localizedItems(ctx, r.db, "cinematographic_processes", kindCinematographicProcess, id, func(id int64, n domain.LocalizedText) domain.CinematographicProcess {
				return domain.CinematographicProcess{ID: id, Name: n}
			}))
		}},
		{kindPrintedFilmFormat, func() error {
			return set(&w.PrintedFilmFormats)(localizedItems(ctx, r.db, "film_formats", kindPrintedFilmFormat, id, newFilmFormat))
		}},
		{kindDirector, func() error {
			return set(&w.Directors)(plainItems(ctx, r.db, "people", "name", kindDirector, id, func(id int64, s string) domain.Person {
				return domain.Person{ID: id, Name: s}
			}))
		}},
		{kindProductionCompany, func() error {
			return set(&w.ProductionCompanies)(localizedItems(ctx, r.db, "companies", kindProductionCompany, id, newCompany))
		}},
		{kindDistributor, func() error {
			return set(&w.Distributors)(localizedItems(ctx, r.db, "companies", kindDistributor, id, newCompany))
		}},
		{kindSpecialEffects, func() error {
			return set(&w.SpecialEffectCompanies)(localizedItems(ctx, r.db, "companies", kindSpecialEffects, id, newCompany))
		}},
		{kindOtherCompany, func() error {
			return set(&w.OtherCompanies)(localizedItems(ctx, r.db, "companies", kindOtherCompany, id, newCompany))
		}},
		{kindLocation, func() error {
			return set(&w.Locations)(localizedItems(ctx, r.db, "locations", kindLocation, id, func(id int64, n domain.LocalizedText) domain.Location {
				return domain.Location{ID: id, Name: n}
			}))
		}},
		{"filming_date", func() error { return set(&w.FilmingDates)(r.timespanItems(ctx, id, timespanFilming)) }},
		{"production_date", func() error { return set(&w.ProductionDates)(r.timespanItems(ctx, id, timespanProduction)) }},
	}

	for _, l := range loaders {
		if err := l.load(); err != nil {
			return fmt.Errorf("load %s items of work %d: %w", l.kind, id, err)
		}
	}
	return nil
}

func newFilmFormat(id int64, n domain.LocalizedText) domain.FilmFormat {
	return domain.FilmFormat{ID: id, Name: n}
}

func newCompany(id int64, n domain.LocalizedText) domain.Company {
	return domain.Company{ID: id, Name: n}
}

// scanItems runs query and turns every row into an item. The result is
// never nil, so an attribute without rows is an empty group.
func scanItems[E any](ctx context.Context, db *sql.DB, query string, args []any, scan func(*sql.Rows) (domain.Item[E], error)) ([]domain.Item[E], error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Item[E]{}
	for rows.Next() {
		it, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func localizedItems[E any](ctx context.Context, db *sql.DB, table, kind string, workID int64, build func(int64, domain.LocalizedText) E) ([]domain.Item[E], error) {
	return scanItems(ctx, db, localizedItemsSQL(table), []any{workID, kind}, func(rows *sql.Rows) (domain.Item[E], error) {
		var (
			it           domain.Item[E]
			id           sql.NullInt64
			orig, en, de sql.NullString
		)
		if err := rows.Scan(&id, &orig, &en, &de, &it.Details, &it.Order); err != nil {
			return it, err
		}
		if id.Valid {
			e := build(id.Int64, localized(orig, en, de))
			it.Entity = &e
		}
		return it, nil
	})
}

func plainItems[E any](ctx context.Context, db *sql.DB, table, column, kind string, workID int64, build func(int64, string) E) ([]domain.Item[E], error) {
	return scanItems(ctx, db, plainItemsSQL(table, column), []any{workID, kind}, func(rows *sql.Rows) (domain.Item[E], error) {
		var (
			it    domain.Item[E]
			id    sql.NullInt64
			value sql.NullString
		)
		if err := rows.Scan(&id, &value, &it.Details, &it.Order); err != nil {
			return it, err
		}
		if id.Valid {
			e := build(id.Int64, value.String)
			it.Entity = &e
		}
		return it, nil
	})
}

func (r *Repo) countryItems(ctx context.Context, workID int64) ([]domain.Item[domain.Country], error) {
	return scanItems(ctx, r.db, countryItemsSQL, []any{workID}, func(rows *sql.Rows) (domain.Item[domain.Country], error) {
		var (
			it                 domain.Item[domain.Country]
			id                 sql.NullInt64
			orig, en, de, flag sql.NullString
		)
		if err := rows.Scan(&id, &orig, &en, &de, &flag, &it.Details, &it.Order); err != nil {
			return it, err
		}
		if id.Valid {
			it.Entity = &domain.Country{ID: id.Int64, Name: localized(orig, en, de), Flag: flag.String}
		}
		return it, nil
	})
}

func (r *Repo) certificationItems(ctx context.Context, workID int64) ([]domain.Item[domain.Certification], error) {
	return scanItems(ctx, r.db, certificationItemsSQL, []any{workID}, func(rows *sql.Rows) (domain.Item[domain.Certification], error) {
		var (
			it                     domain.Item[domain.Certification]
			id, countryID          sql.NullInt64
			orig, en, de           sql.NullString
			cOrig, cEN, cDE, cFlag sql.NullString
		)
		if err := rows.Scan(&id, &orig, &en, &de, &countryID, &cOrig, &cEN, &cDE, &cFlag, &it.Details, &it.Order); err != nil {
			return it, err
		}
		if !id.Valid {
			return it, nil
		}
		c := &domain.Certification{ID: id.Int64, Name: localized(orig, en, de)}
		if countryID.Valid {
			c.Country = &domain.Country{ID: countryID.Int64, Name: localized(cOrig, cEN, cDE), Flag: cFlag.String}
		}
		it.Entity = c
		return it, nil
	})
}

func (r *Repo) timespanItems(ctx context.Context, workID int64, kind string) ([]domain.Item[domain.Timespan], error) {
	return scanItems(ctx, r.db, timespanItemsSQL, []any{workID, kind}, func(rows *sql.Rows) (domain.Item[domain.Timespan], error) {
		var (
			it         domain.Item[domain.Timespan]
			start, end sql.NullTime
		)
		if err := rows.Scan(&start, &end, &it.Details, &it.Order); err != nil {
			return it, err
		}
		it.Entity = &domain.Timespan{Start: valTime(start), End: valTime(end)}
		return it, nil
	})
}

func (r *Repo) filmLengthItems(ctx context.Context, workID int64) ([]domain.Item[domain.FilmLength], error) {
	return scanItems(ctx, r.db, filmLengthItemsSQL, []any{workID}, func(rows *sql.Rows) (domain.Item[domain.FilmLength], error) {
		var it domain.Item[domain.FilmLength]
		var meters int
		if err := rows.Scan(&meters, &it.Details, &it.Order); err != nil {
			return it, err
		}
		it.Entity = &domain.FilmLength{Meters: meters}
		return it, nil
	})
}
