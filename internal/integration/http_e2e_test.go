//go:build integration || !unit

package integration

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"filmwiki/internal/adapters/fswriter"
	server "filmwiki/internal/adapters/http_server"
	redisad "filmwiki/internal/adapters/redis"
	"filmwiki/internal/app"
	"filmwiki/internal/content"
	"filmwiki/internal/domain"
	mysqlrepo "filmwiki/internal/storage/mysql"
	"filmwiki/internal/wiki/dokuwiki"
)

func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/sql)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(b)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=filmwiki",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/filmwiki?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func seedBladeRunner(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, s := range []string{
		`INSERT INTO works (id, kind, title_orig, title_de, status, last_updated, runtime_minutes, release_date)
		 VALUES (74, 'movie', 'Blade Runner', 'Der Blade Runner', 'ok', '2024-03-01 00:00:00', 117, '1982-06-25')`,
		`INSERT INTO works (id, kind, title_orig, status) VALUES (75, 'movie', 'Unfinished', 'draft')`,
		`INSERT INTO genres VALUES (1, 'Science Fiction', NULL, 'Science-Fiction')`,
		`INSERT INTO people VALUES (5, 'Ridley Scott')`,
		`INSERT INTO work_items (work_id, kind, entity_id, details, sort_order) VALUES
		 (74, 'genre', 1, '', 1),
		 (74, 'director', 5, '', 1)`,
		`INSERT INTO work_timespans (work_id, kind, start_date, end_date, details, sort_order)
		 VALUES (74, 'filming', '1981-03-09', '1981-07-01', '', 1)`,
	} {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestHTTP_EndToEnd_PreviewGerman(t *testing.T) {
	db := startMySQL(t)
	seedBladeRunner(t, db)

	mr := miniredis.RunT(t)
	cache := redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "e2e:")
	preview := app.NewPreviewService(mysqlrepo.New(db), dokuwiki.New(), cache, time.Minute)

	ts := httptest.NewServer(server.NewPreviewAPI(preview, nil))
	defer ts.Close()

	get := func() (int, string) {
		res, err := http.Get(ts.URL + "/v1/movie/74/page?lang=de")
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		defer res.Body.Close()
		b, _ := io.ReadAll(res.Body)
		return res.StatusCode, string(b)
	}

	status, body := get()
	if status != http.StatusOK {
		t.Fatalf("status %d: %s", status, body)
	}
	for _, want := range []string{
		"====== Der Blade Runner ======",
		"| Titel | Der Blade Runner |",
		"[[de:genre:science-fiction_001|Science-Fiction]]",
		"{{page>de:navigation:_022}}",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page lacks %q:\n%s", want, body)
		}
	}
	if !mr.Exists("e2e:page:movie:74:de") {
		t.Fatalf("preview should be cached")
	}

	if _, again := get(); again != body {
		t.Fatalf("cached preview differs")
	}
}

func TestGenerateAll_EndToEnd(t *testing.T) {
	db := startMySQL(t)
	seedBladeRunner(t, db)

	out := t.TempDir()
	svc := app.NewGenerateService(mysqlrepo.New(db), fswriter.New(), dokuwiki.New(), out,
		app.WithWorkers(2),
		app.WithPageOptions(content.WithAuthor("e2e")),
	)

	rep, err := svc.GenerateAll(context.Background(), domain.KindMovie, "en")
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	want := filepath.Join(out, "en", "movie", "blade_runner_022.txt")
	if len(rep.Written) != 1 || rep.Written[0] != want || len(rep.Failed) != 0 {
		t.Fatalf("only the published movie should be written: %+v", rep)
	}
	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(b), "author: e2e") || !strings.Contains(string(b), "[[en:person:ridley_scott_005|Ridley Scott]]") {
		t.Fatalf("unexpected page:\n%s", b)
	}
}
