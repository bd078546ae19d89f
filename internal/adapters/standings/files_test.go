package standings_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/elorun/internal/adapters/standings"
	"github.com/okian/elorun/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadStandings(t *testing.T) {
	Convey("Given standings documents on disk", t, func() {
		dir := t.TempDir()

		Convey("When loading a well-formed document", func() {
			path := writeFile(t, dir, "standings.json", `{"alpha": 1100.5, "beta": 950}`)
			ratings, err := standings.LoadStandings(path)

			So(err, ShouldBeNil)
			So(ratings, ShouldResemble, map[string]float64{"alpha": 1100.5, "beta": 950})
		})

		Convey("When loading an empty object", func() {
			path := writeFile(t, dir, "empty.json", `{}`)
			ratings, err := standings.LoadStandings(path)

			So(err, ShouldBeNil)
			So(ratings, ShouldBeEmpty)
		})

		Convey("When the file is missing", func() {
			_, err := standings.LoadStandings(filepath.Join(dir, "nope.json"))

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "nope.json")
		})

		Convey("When the document is not an object", func() {
			path := writeFile(t, dir, "bad.json", `[1, 2, 3]`)
			_, err := standings.LoadStandings(path)

			So(err, ShouldNotBeNil)
		})
	})
}

func TestLoadMatches(t *testing.T) {
	Convey("Given match documents on disk", t, func() {
		dir := t.TempDir()

		Convey("When loading a well-formed list", func() {
			path := writeFile(t, dir, "matches.json", `[
				{"winner": "alpha", "loser": "beta", "series": "Bo1"},
				{"winner": "beta", "loser": "gamma", "series": "Bo5"}
			]`)
			matches, err := standings.LoadMatches(path)

			So(err, ShouldBeNil)
			So(matches, ShouldHaveLength, 2)
			So(matches[0].Winner, ShouldEqual, "alpha")
			So(matches[1].Series, ShouldEqual, model.SeriesBo5)
		})

		Convey("When an entry has an unknown series kind", func() {
			path := writeFile(t, dir, "badseries.json", `[
				{"winner": "alpha", "loser": "beta", "series": "Bo1"},
				{"winner": "beta", "loser": "gamma", "series": "Bo7"}
			]`)
			_, err := standings.LoadMatches(path)

			Convey("Then the error names the offending index", func() {
				So(errors.Is(err, model.ErrUnknownSeries), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, "match 1")
			})
		})

		Convey("When an entry is missing a team name", func() {
			path := writeFile(t, dir, "noname.json", `[
				{"winner": "", "loser": "beta", "series": "Bo1"}
			]`)
			_, err := standings.LoadMatches(path)

			So(errors.Is(err, standings.ErrMissingTeamName), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "match 0")
		})

		Convey("When loading an empty list", func() {
			path := writeFile(t, dir, "none.json", `[]`)
			matches, err := standings.LoadMatches(path)

			So(err, ShouldBeNil)
			So(matches, ShouldBeEmpty)
		})
	})
}

func TestSaveStandings(t *testing.T) {
	Convey("Given updated ratings to persist", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.json")
		ratings := map[string]float64{"alpha": 1016, "beta": 984}

		Convey("When saving and reloading", func() {
			err := standings.SaveStandings(path, ratings)
			So(err, ShouldBeNil)

			reloaded, err := standings.LoadStandings(path)
			So(err, ShouldBeNil)
			So(reloaded, ShouldResemble, ratings)
		})

		Convey("When saving over an existing file", func() {
			So(standings.SaveStandings(path, map[string]float64{"old": 1}), ShouldBeNil)
			So(standings.SaveStandings(path, ratings), ShouldBeNil)

			reloaded, err := standings.LoadStandings(path)
			So(err, ShouldBeNil)
			So(reloaded, ShouldResemble, ratings)
		})

		Convey("When saving leaves no staging files behind", func() {
			So(standings.SaveStandings(path, ratings), ShouldBeNil)

			entries, err := os.ReadDir(dir)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
		})
	})
}
